package api

import (
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/neuland-ingolstadt/membership-tools/api/routes"
	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
	"github.com/neuland-ingolstadt/membership-tools/pkg/notify"
	slogfiber "github.com/samber/slog-fiber"
)

// AdminUser is the only account the basic-auth gate knows.
const AdminUser = "admin"

func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var e *fiber.Error
		if !errors.As(err, &e) {
			e = fiber.ErrInternalServerError
		}

		logger.Error(
			"Fiber Error",
			"Code",
			e.Code,
			"Message",
			e.Message,
		)

		return ctx.
			Status(e.Code).
			SendString(e.Message)
	}
}

func stackTraceHandler(logger *slog.Logger) func(*fiber.Ctx, any) {
	return func(c *fiber.Ctx, e any) {
		stack := debug.Stack()
		logger.ErrorContext(
			c.Context(),
			"panic!",
			"stack",
			stack,
			"err",
			e,
		)
	}
}

type Config struct {
	// Static credential for the basic-auth gate
	AdminPassword string
	Logger        *slog.Logger
	Service       member.Service
	Renderer      *notify.Renderer
}

// New assembles the guarded member-creation app. Every route sits behind the
// single admin basic-auth credential; unauthenticated requests get a 401
// challenge before any handler runs.
func New(cfg *Config) *fiber.App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(logger),
	})

	app.Use(recover.New(recover.Config{
		Next:              nil,
		EnableStackTrace:  true,
		StackTraceHandler: stackTraceHandler(logger),
	}))

	app.Use(otelfiber.Middleware())

	app.Use(slogfiber.NewWithConfig(
		logger,
		slogfiber.Config{
			WithRequestID: true,
			WithSpanID:    true,
			WithTraceID:   true,
		},
	))

	app.Use(basicauth.New(basicauth.Config{
		Users: map[string]string{
			AdminUser: cfg.AdminPassword,
		},
	}))

	routes.RegisterRoutes(app, cfg.Service, cfg.Renderer, logger)

	return app
}
