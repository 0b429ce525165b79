package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/usher/pkg/domain/model"
)

type UseCase interface {
	ListGitHubRepos(ctx context.Context, input *model.ListGitHubReposInput) ([]*model.Repository, error)
	SubmitIntake(ctx context.Context, input *model.SubmitIntakeInput) (*model.SubmitIntakeOutput, error)
}
