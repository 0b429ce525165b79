package usecase

import (
	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/infra"
)

const defaultOpsAddress = "onboarding-ops@usher.dev"

type UseCase struct {
	clients *infra.Clients

	opsAddress       string
	intakeTemplateID string
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithOpsAddress sets the operations address that receives the internal
// copy of every intake notification.
func WithOpsAddress(addr string) Option {
	return func(x *UseCase) {
		x.opsAddress = addr
	}
}

// WithIntakeTemplateID sets the mail template used for the user-facing
// intake confirmation.
func WithIntakeTemplateID(id string) Option {
	return func(x *UseCase) {
		x.intakeTemplateID = id
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		opsAddress: defaultOpsAddress,
	}
	for _, opt := range options {
		opt(uc)
	}

	return uc
}
