package sendgrid

import (
	"context"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m-mizutani/usher/pkg/domain/interfaces"
	"github.com/m-mizutani/usher/pkg/domain/types"
)

// Client sends mail through the SendGrid v3 API.
type Client struct {
	client *sg.Client
	from   *mail.Email
}

var _ interfaces.Notifier = (*Client)(nil)

func New(apiKey types.SendGridAPIKey, fromAddress, fromName string) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "sendgrid API key is empty")
	}
	if fromAddress == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "sender address is empty")
	}

	return &Client{
		client: sg.NewSendClient(string(apiKey)),
		from:   mail.NewEmail(fromName, fromAddress),
	}, nil
}

func (x *Client) SendTemplated(ctx context.Context, tpl *interfaces.TemplatedMail) error {
	message := mail.NewV3Mail()
	message.SetFrom(x.from)
	message.SetTemplateID(tpl.TemplateID)

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", tpl.To))
	for key, value := range tpl.Data {
		p.SetDynamicTemplateData(key, value)
	}
	message.AddPersonalizations(p)

	return x.send(ctx, message)
}

func (x *Client) SendPlain(ctx context.Context, plain *interfaces.PlainMail) error {
	message := mail.NewSingleEmail(x.from, plain.Subject, mail.NewEmail("", plain.To), plain.Body, "")

	return x.send(ctx, message)
}

func (x *Client) send(ctx context.Context, message *mail.SGMailV3) error {
	resp, err := x.client.SendWithContext(ctx, message)
	if err != nil {
		return goerr.Wrap(err, "failed to send mail via sendgrid")
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return goerr.New("sendgrid rejected the message",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", resp.Body),
		)
	}

	return nil
}
