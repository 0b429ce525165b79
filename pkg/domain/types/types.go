package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken     string
	SendGridAPIKey  string
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	BucketName      string
	RequestID       string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x BucketName) String() string      { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x SendGridAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SendGridAPIKey) String() string {
	return "***********"
}

// PermissionLevel is the coarse repository role returned for repositories
// discovered via pull request search. Levels are cumulative: a higher level
// implies every lower one.
type PermissionLevel string

const (
	PermissionAdmin    PermissionLevel = "ADMIN"
	PermissionMaintain PermissionLevel = "MAINTAIN"
	PermissionWrite    PermissionLevel = "WRITE"
	PermissionTriage   PermissionLevel = "TRIAGE"
	PermissionRead     PermissionLevel = "READ"
)
