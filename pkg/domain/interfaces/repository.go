package interfaces

import (
	"context"

	"github.com/m-mizutani/usher/pkg/domain/model"
)

//go:generate moq -out ../mock/intake_repository_mock.go -pkg mock . IntakeRepository

// IntakeRepository persists intake submissions. Writes are atomic per key;
// no multi-key transaction is assumed.
type IntakeRepository interface {
	// PutSubmission creates the record with an empty image list.
	PutSubmission(ctx context.Context, sub *model.IntakeSubmission) error

	// UpdateSubmissionImages sets the image URL list of an existing record.
	UpdateSubmissionImages(ctx context.Context, key model.SubmissionKey, images []string) error

	// GetSubmission returns the record for the key, or repository.ErrNotFound.
	GetSubmission(ctx context.Context, key model.SubmissionKey) (*model.IntakeSubmission, error)

	// CountIncomplete counts all records whose completion flag is unset.
	CountIncomplete(ctx context.Context) (int, error)
}
