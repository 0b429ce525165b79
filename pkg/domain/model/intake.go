package model

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/usher/pkg/domain/types"
)

const (
	// MaxImageCount is the maximum number of image attachments per submission.
	MaxImageCount = 5
	// MaxImageBytes is the maximum size of a single attached image.
	MaxImageBytes = 10 << 20
)

var ptnGitHubHandle = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// IntakeSubmission is the persisted onboarding record. Identity is
// Email + GitHubHandle; SubmittedAt distinguishes resubmissions by the same
// identity. Repos is a snapshot captured at submission time and is never
// re-fetched. Images is empty at creation and set at most once afterward.
// IsComplete is flipped by a workflow outside this service.
type IntakeSubmission struct {
	Name                string       `json:"name"`
	Email               string       `json:"email"`
	GitHubHandle        string       `json:"githubHandle"`
	Notes               string       `json:"notes"`
	ShouldDesign        bool         `json:"shouldDesign"`
	IsOneProjectPerRepo bool         `json:"isOneProjectPerRepo"`
	Repos               []Repository `json:"repos"`
	Images              []string     `json:"images"`
	IsComplete          bool         `json:"isComplete"`
	SubmittedAt         time.Time    `json:"submittedAt"`
}

// SubmissionKey identifies one submission record.
type SubmissionKey struct {
	Email        string
	GitHubHandle string
	SubmittedAt  time.Time
}

// ID returns a document ID for the key. GitHub handles cannot contain
// underscores, so the ID splits unambiguously from the right even when the
// email address contains one.
func (x SubmissionKey) ID() string {
	return fmt.Sprintf("%s_%s_%d", x.Email, x.GitHubHandle, x.SubmittedAt.UnixMilli())
}

func (x *IntakeSubmission) Key() SubmissionKey {
	return SubmissionKey{
		Email:        x.Email,
		GitHubHandle: x.GitHubHandle,
		SubmittedAt:  x.SubmittedAt,
	}
}

// ImageAttachment is an image file read out of the multipart form.
type ImageAttachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// FieldIssue is one violated constraint found during validation.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitIntakeInput is the parsed intake form. RawRepos holds the
// client-supplied JSON array of selected repositories; Validate decodes it
// into Repos.
type SubmitIntakeInput struct {
	Name                string
	Email               string
	GitHubHandle        string
	Notes               string
	ShouldDesign        bool
	IsOneProjectPerRepo bool
	RawRepos            string
	Images              []ImageAttachment

	Repos []Repository
}

// Validate runs the three intake checks in order: form fields, the embedded
// repo-selection list, then image constraints. It short-circuits on the
// first failing check and returns the violated constraints. On success it
// leaves the decoded repository list in Repos.
func (x *SubmitIntakeInput) Validate() []FieldIssue {
	if issues := x.validateFields(); len(issues) > 0 {
		return issues
	}
	if issues := x.validateRepos(); len(issues) > 0 {
		return issues
	}
	return x.validateImages()
}

func (x *SubmitIntakeInput) validateFields() []FieldIssue {
	var issues []FieldIssue

	if strings.TrimSpace(x.Name) == "" {
		issues = append(issues, FieldIssue{Field: "name", Message: "name is required"})
	}
	if x.Email == "" {
		issues = append(issues, FieldIssue{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(x.Email); err != nil {
		issues = append(issues, FieldIssue{Field: "email", Message: "email is not a valid address"})
	}
	if x.GitHubHandle == "" {
		issues = append(issues, FieldIssue{Field: "github", Message: "github handle is required"})
	} else if !ptnGitHubHandle.MatchString(x.GitHubHandle) {
		issues = append(issues, FieldIssue{Field: "github", Message: "github handle contains invalid characters"})
	}

	return issues
}

func (x *SubmitIntakeInput) validateRepos() []FieldIssue {
	if x.RawRepos == "" {
		return []FieldIssue{{Field: "repos", Message: "repository selection is required"}}
	}

	var repos []Repository
	if err := json.Unmarshal([]byte(x.RawRepos), &repos); err != nil {
		return []FieldIssue{{Field: "repos", Message: "repository selection must be a JSON array"}}
	}

	var issues []FieldIssue
	for i, repo := range repos {
		if repo.ExternalID <= 0 {
			issues = append(issues, FieldIssue{
				Field:   fmt.Sprintf("repos[%d].externalId", i),
				Message: "externalId must be a positive integer",
			})
		}
		if repo.FullName == "" {
			issues = append(issues, FieldIssue{
				Field:   fmt.Sprintf("repos[%d].fullName", i),
				Message: "fullName is required",
			})
		}
	}
	if len(issues) > 0 {
		return issues
	}

	x.Repos = repos
	return nil
}

func (x *SubmitIntakeInput) validateImages() []FieldIssue {
	if len(x.Images) > MaxImageCount {
		return []FieldIssue{{
			Field:   "images",
			Message: fmt.Sprintf("at most %d images are allowed", MaxImageCount),
		}}
	}

	var issues []FieldIssue
	for i, img := range x.Images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			issues = append(issues, FieldIssue{
				Field:   fmt.Sprintf("images[%d]", i),
				Message: "attachment must be an image",
			})
		}
		if len(img.Data) == 0 {
			issues = append(issues, FieldIssue{
				Field:   fmt.Sprintf("images[%d]", i),
				Message: "attachment is empty",
			})
		} else if len(img.Data) > MaxImageBytes {
			issues = append(issues, FieldIssue{
				Field:   fmt.Sprintf("images[%d]", i),
				Message: fmt.Sprintf("attachment exceeds %d bytes", MaxImageBytes),
			})
		}
	}
	return issues
}

// NewIntakeSubmission builds the record persisted for a validated input.
func NewIntakeSubmission(input *SubmitIntakeInput, submittedAt time.Time) *IntakeSubmission {
	return &IntakeSubmission{
		Name:                input.Name,
		Email:               input.Email,
		GitHubHandle:        input.GitHubHandle,
		Notes:               input.Notes,
		ShouldDesign:        input.ShouldDesign,
		IsOneProjectPerRepo: input.IsOneProjectPerRepo,
		Repos:               input.Repos,
		Images:              []string{},
		IsComplete:          false,
		SubmittedAt:         submittedAt,
	}
}

// SubmitIntakeOutput is the success response of the submission pipeline.
// QueueNumber is nil when the count could not be computed.
type SubmitIntakeOutput struct {
	FormData    *IntakeSubmission `json:"formData"`
	QueueNumber *int              `json:"queueNumber,omitempty"`
	Message     string            `json:"msg"`
}

// ListGitHubReposInput carries the requesting user's token for one
// aggregation call.
type ListGitHubReposInput struct {
	Token types.GitHubToken
}
