package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neuland-ingolstadt/membership-tools/api"
	"github.com/neuland-ingolstadt/membership-tools/internal/config"
	"github.com/neuland-ingolstadt/membership-tools/internal/logger"
	"github.com/neuland-ingolstadt/membership-tools/internal/otel"
	"github.com/neuland-ingolstadt/membership-tools/pkg/directory"
	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
	"github.com/neuland-ingolstadt/membership-tools/pkg/notify"
)

func main() {
	cfg := config.AppConfig

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set; refusing to serve unguarded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOtel, err := otel.InitOtel(ctx)
	if err != nil {
		log.Println(err)
	}
	defer func() {
		if shutdownOtel == nil {
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr := shutdownOtel(shutdownCtx)
		if shutdownErr != nil {
			log.Printf("Error during shutdown: %v", shutdownErr)
		}
	}()

	logger.Setup(os.Stdout)
	slogger := logger.Logger

	provisioner := directory.New(directory.Config{
		Server:       cfg.LDAP.Server,
		BindCN:       cfg.LDAP.BindCN,
		BindPassword: cfg.LDAP.BindPassword,
		UserCN:       cfg.LDAP.UserCN,
		MailDomain:   cfg.Mail.Domain,
		Timeout:      cfg.LDAP.Timeout,
	}, directory.Options{Logger: slogger})

	renderer := notify.NewRenderer(cfg.TemplateDir)

	mailer, err := notify.NewMailer(notify.Config{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		User:        cfg.SMTP.User,
		Password:    cfg.SMTP.Pass,
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.FromAddress,
		Subject:     cfg.Mail.Subject,
		Timeout:     cfg.SMTP.Timeout,
	}, renderer, notify.Options{Logger: slogger})
	if err != nil {
		log.Fatalf("Failed to build mailer: %v", err)
	}

	svc := member.New(provisioner, mailer, member.Options{Logger: slogger})

	app := api.New(&api.Config{
		AdminPassword: cfg.AdminPassword,
		Logger:        slogger,
		Service:       svc,
		Renderer:      renderer,
	})

	if err := runServer(ctx, app, ":"+cfg.Port); err != nil {
		log.Printf("server error: %v", err)
	}
}

func runServer(ctx context.Context, app *fiber.App, addr string) error {
	srvErr := make(chan error, 1)

	go func() {
		srvErr <- app.Listen(addr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}
