package infra

import (
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
)

type Clients struct {
	github     interfaces.GitHubClient
	storage    interfaces.ObjectStorage
	intakeRepo interfaces.IntakeRepository
	notifier   interfaces.Notifier
	bqClient   interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.github
}
func (x *Clients) Storage() interfaces.ObjectStorage {
	return x.storage
}
func (x *Clients) IntakeRepository() interfaces.IntakeRepository {
	return x.intakeRepo
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithStorage(client interfaces.ObjectStorage) Option {
	return func(x *Clients) {
		x.storage = client
	}
}

func WithIntakeRepository(repo interfaces.IntakeRepository) Option {
	return func(x *Clients) {
		x.intakeRepo = repo
	}
}

func WithNotifier(client interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
