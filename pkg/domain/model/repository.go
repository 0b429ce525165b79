package model

import "strings"

// RepoPermissions is the effective permission set of the requesting user on
// a repository.
type RepoPermissions struct {
	Admin    bool `json:"admin"`
	Maintain bool `json:"maintain"`
	Push     bool `json:"push"`
	Triage   bool `json:"triage"`
	Pull     bool `json:"pull"`
}

// HasWriteAccess reports whether the user can modify the repository contents.
func (x RepoPermissions) HasWriteAccess() bool {
	return x.Admin || x.Maintain || x.Push
}

type RepoOwner struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	URL       string `json:"url"`
}

// Repository is the canonical repository record. Every source adapter
// produces this shape, keyed by ExternalID across all sources.
type Repository struct {
	ExternalID  int64           `json:"externalId"`
	Name        string          `json:"name"`
	FullName    string          `json:"fullName"`
	Description *string         `json:"description"`
	URL         string          `json:"url"`
	Owner       RepoOwner       `json:"owner"`
	Permissions RepoPermissions `json:"permissions"`
	StarCount   int             `json:"starCount"`
	Fork        bool            `json:"fork"`
}

// ShortName returns the repository-name portion of FullName, the segment
// after the owner slash.
func (x *Repository) ShortName() string {
	if parts := strings.SplitN(x.FullName, "/", 2); len(parts) == 2 {
		return parts[1]
	}
	return x.FullName
}
