package config

import (
	"log/slog"

	"github.com/m-mizutani/usher/pkg/domain/types"
	"github.com/m-mizutani/usher/pkg/infra/sendgrid"
	"github.com/urfave/cli/v3"
)

type SendGrid struct {
	apiKey      types.SendGridAPIKey `masq:"secret"`
	fromAddress string
	fromName    string
	opsAddress  string
	templateID  string
}

func (x *SendGrid) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sendgrid-api-key",
			Usage:       "SendGrid API key (optional)",
			Category:    "SendGrid",
			Sources:     cli.EnvVars("USHER_SENDGRID_API_KEY"),
			Destination: (*string)(&x.apiKey),
		},
		&cli.StringFlag{
			Name:        "sendgrid-from-address",
			Usage:       "Sender address of outgoing mail",
			Category:    "SendGrid",
			Sources:     cli.EnvVars("USHER_SENDGRID_FROM_ADDRESS"),
			Value:       "noreply@usher.dev",
			Destination: &x.fromAddress,
		},
		&cli.StringFlag{
			Name:        "sendgrid-from-name",
			Usage:       "Sender name of outgoing mail",
			Category:    "SendGrid",
			Sources:     cli.EnvVars("USHER_SENDGRID_FROM_NAME"),
			Value:       "Usher Onboarding",
			Destination: &x.fromName,
		},
		&cli.StringFlag{
			Name:        "sendgrid-ops-address",
			Usage:       "Operations address receiving internal intake notifications",
			Category:    "SendGrid",
			Sources:     cli.EnvVars("USHER_SENDGRID_OPS_ADDRESS"),
			Destination: &x.opsAddress,
		},
		&cli.StringFlag{
			Name:        "sendgrid-intake-template-id",
			Usage:       "Dynamic template ID of the intake confirmation mail",
			Category:    "SendGrid",
			Sources:     cli.EnvVars("USHER_SENDGRID_INTAKE_TEMPLATE_ID"),
			Destination: &x.templateID,
		},
	}
}

func (x *SendGrid) Enabled() bool {
	return x.apiKey != ""
}

func (x *SendGrid) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
		slog.Any("fromAddress", x.fromAddress),
		slog.Any("fromName", x.fromName),
		slog.Any("opsAddress", x.opsAddress),
		slog.Any("templateID", x.templateID),
	)
}

func (x *SendGrid) NewClient() (*sendgrid.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return sendgrid.New(x.apiKey, x.fromAddress, x.fromName)
}

func (x *SendGrid) OpsAddress() string {
	return x.opsAddress
}

func (x *SendGrid) TemplateID() string {
	return x.templateID
}
