package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neuland-ingolstadt/membership-tools/pkg/identity"
	"go.opentelemetry.io/otel"
)

type Service interface {
	Create(ctx context.Context, req AccountRequest) (ProvisionedAccount, error)
}

// Provisioner creates the directory entry for a member.
type Provisioner interface {
	Provision(ctx context.Context, firstName, lastName string) (ProvisionedAccount, error)
}

// Notifier delivers the issued credential to the member.
type Notifier interface {
	SendWelcome(ctx context.Context, req AccountRequest, account ProvisionedAccount) error
}

type Options struct {
	// Structured logger using slog package
	Logger *slog.Logger
	// Context timeout
	Timeout time.Duration
}

type service struct {
	provisioner Provisioner
	notifier    Notifier
	logger      *slog.Logger
	opts        Options
}

func New(provisioner Provisioner, notifier Notifier, opts Options) Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "member"),
	)

	return &service{
		provisioner: provisioner,
		notifier:    notifier,
		logger:      logger,
		opts:        opts,
	}
}

// Create runs validate -> provision -> notify. The validation result gates
// provisioning. There is no rollback: a directory entry survives a failed
// mail delivery, and the returned error names the stage so the two cases are
// distinguishable in the log.
func (s *service) Create(ctx context.Context, req AccountRequest) (ProvisionedAccount, error) {
	if s.opts.Timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
			defer cancel()
		}
	}

	log := s.logger.With(
		slog.String("first_name", req.FirstName),
		slog.String("last_name", req.LastName),
	)

	if req.FirstName == "" || req.LastName == "" {
		log.Warn("account request rejected", slog.String("stage", "validate"))
		return ProvisionedAccount{}, fmt.Errorf("validate: first and last name are required")
	}

	if err := identity.ValidateEmail(req.PrivateEmail); err != nil {
		log.Warn("account request rejected",
			slog.String("stage", "validate"),
			slog.Any("error", err),
		)
		return ProvisionedAccount{}, fmt.Errorf("validate: %w", err)
	}

	tracer := otel.Tracer("membership-tools/member")

	ctx, span := tracer.Start(ctx, "member.provision")
	account, err := s.provisioner.Provision(ctx, req.FirstName, req.LastName)
	span.End()
	if err != nil {
		log.Error("directory provisioning failed",
			slog.String("stage", "provision"),
			slog.Any("error", err),
		)
		return ProvisionedAccount{}, fmt.Errorf("provision: %w", err)
	}

	log.Info("directory account created", slog.String("login", account.LoginToken))

	ctx, span = tracer.Start(ctx, "member.notify")
	err = s.notifier.SendWelcome(ctx, req, account)
	span.End()
	if err != nil {
		// the account exists at this point; report it anyway
		log.Error("welcome mail delivery failed",
			slog.String("stage", "notify"),
			slog.String("login", account.LoginToken),
			slog.Any("error", err),
		)
		return account, fmt.Errorf("notify: %w", err)
	}

	log.Info("welcome mail sent", slog.String("login", account.LoginToken))
	return account, nil
}
