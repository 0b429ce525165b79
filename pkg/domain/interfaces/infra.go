package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient ObjectStorage Notifier BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/usher/pkg/domain/model"
	"github.com/m-mizutani/usher/pkg/domain/types"
)

// GitHubClient covers the three repository discovery surfaces. The token is
// the requesting user's and is passed per call; implementations build an
// authenticated client for each request.
type GitHubClient interface {
	GetAuthenticatedUser(ctx context.Context, token types.GitHubToken) (*model.GitHubUser, error)
	ListUserRepos(ctx context.Context, token types.GitHubToken) ([]*model.SourceRepo, error)
	ListUserOrgs(ctx context.Context, token types.GitHubToken) ([]string, error)
	ListOrgRepos(ctx context.Context, token types.GitHubToken, org string) ([]*model.SourceRepo, error)
	SearchMergedPullRequestRepos(ctx context.Context, token types.GitHubToken, login string) ([]*model.PullRequestRepo, error)
}

// ObjectStorage stores an object and returns its public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type TemplatedMail struct {
	To         string
	TemplateID string
	Data       map[string]any
}

type PlainMail struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	SendTemplated(ctx context.Context, mail *TemplatedMail) error
	SendPlain(ctx context.Context, mail *PlainMail) error
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
