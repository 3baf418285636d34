package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
	"github.com/wneessen/go-mail"
)

// DeliveryError reports a welcome mail that could not be handed to the SMTP
// relay.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %s: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Sender is the slice of *mail.Client the mailer needs.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	// Sender identity and subject of the welcome mail
	FromName    string
	FromAddress string
	Subject     string
	// Applied to the SMTP session
	Timeout time.Duration
}

type Options struct {
	// Override for testing the SMTP client
	Sender Sender
	// Structured logger using slog package
	Logger *slog.Logger
}

// Mailer renders the welcome template and sends it as an HTML mail. The
// relay connection starts in plaintext and upgrades via STARTTLS when the
// server offers it.
type Mailer struct {
	cfg    Config
	render *Renderer
	sender Sender
	logger *slog.Logger
}

func NewMailer(cfg Config, renderer *Renderer, opts Options) (*Mailer, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "notify"),
		slog.String("smtp_host", cfg.Host),
	)

	sender := opts.Sender
	if sender == nil {
		client, err := mail.NewClient(
			cfg.Host,
			mail.WithPort(cfg.Port),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
			mail.WithTLSPolicy(mail.TLSOpportunistic),
			mail.WithTimeout(cfg.Timeout),
		)
		if err != nil {
			return nil, fmt.Errorf("smtp client: %w", err)
		}
		sender = client
	}

	return &Mailer{
		cfg:    cfg,
		render: renderer,
		sender: sender,
		logger: logger,
	}, nil
}

// SendWelcome delivers the issued credential to the member's private
// address. Delivery is attempted once; there is no retry.
func (m *Mailer) SendWelcome(ctx context.Context, req member.AccountRequest, account member.ProvisionedAccount) error {
	body, err := m.render.Render(WelcomeTemplate, map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     account.Email,
		"password":  account.Password,
	})
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromAddress); err != nil {
		return &DeliveryError{Recipient: req.PrivateEmail, Err: err}
	}
	if err := msg.AddToFormat(req.FirstName+" "+req.LastName, req.PrivateEmail); err != nil {
		return &DeliveryError{Recipient: req.PrivateEmail, Err: err}
	}
	msg.Subject(m.cfg.Subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	m.logger.Info("sending welcome mail", slog.String("to", req.PrivateEmail))

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return &DeliveryError{Recipient: req.PrivateEmail, Err: err}
	}

	return nil
}
