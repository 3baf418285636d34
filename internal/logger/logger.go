package logger

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/neuland-ingolstadt/membership-tools/internal/config"
	slogfiber "github.com/samber/slog-fiber"
	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/sdk/log"
)

var (
	Logger     *slog.Logger
	Middleware fiber.Handler
)

func Setup(out io.Writer) {
	provider := log.NewLoggerProvider()
	otelHandler := otelslog.NewHandler(
		"membership-tools",
		otelslog.WithLoggerProvider(provider),
	)

	var stdoutHandler slog.Handler
	if config.IsProd() {
		stdoutHandler = slog.NewTextHandler(out, &slog.HandlerOptions{})
	} else {
		stdoutHandler = slog.NewJSONHandler(out, &slog.HandlerOptions{})
	}

	Logger = slog.New(
		slogmulti.Fanout(
			stdoutHandler,
			otelHandler,
		),
	)

	cfg := slogfiber.Config{
		WithRequestID: true,
		WithSpanID:    true,
		WithTraceID:   true,
	}

	Middleware = slogfiber.NewWithConfig(Logger, cfg)
}
