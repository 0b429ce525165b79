package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/repository"
)

type submissionData struct {
	sub *model.IntakeSubmission
}

type intakeRepository struct {
	mu          sync.RWMutex
	submissions map[string]*submissionData
}

func (r *intakeRepository) PutSubmission(ctx context.Context, sub *model.IntakeSubmission) error {
	if sub.Email == "" || sub.GitHubHandle == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "email or github handle is empty",
			goerr.V("email", sub.Email),
			goerr.V("githubHandle", sub.GitHubHandle),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions[sub.Key().ID()] = &submissionData{sub: copySubmission(sub)}

	return nil
}

func (r *intakeRepository) UpdateSubmissionImages(ctx context.Context, key model.SubmissionKey, images []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.submissions[key.ID()]
	if !exists {
		return goerr.Wrap(repository.ErrNotFound, "submission not found",
			goerr.V("key", key.ID()),
		)
	}

	data.sub.Images = append([]string{}, images...)

	return nil
}

func (r *intakeRepository) GetSubmission(ctx context.Context, key model.SubmissionKey) (*model.IntakeSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.submissions[key.ID()]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "submission not found",
			goerr.V("key", key.ID()),
		)
	}

	return copySubmission(data.sub), nil
}

func (r *intakeRepository) CountIncomplete(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int
	for _, data := range r.submissions {
		if !data.sub.IsComplete {
			count++
		}
	}

	return count, nil
}

func copySubmission(sub *model.IntakeSubmission) *model.IntakeSubmission {
	copied := *sub
	copied.Repos = append([]model.Repository{}, sub.Repos...)
	copied.Images = append([]string{}, sub.Images...)
	return &copied
}
