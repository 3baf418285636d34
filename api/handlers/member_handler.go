package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
	"github.com/neuland-ingolstadt/membership-tools/pkg/notify"
)

// CreateMemberForm renders the confirmation form from the query parameters.
// No side effects; safe to repeat.
func CreateMemberForm(renderer *notify.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := renderer.Render(notify.FormTemplate, map[string]string{
			"firstName": c.Query("firstName"),
			"lastName":  c.Query("lastName"),
			"email":     c.Query("email"),
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}

		c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
		return c.SendString(body)
	}
}

// CreateMember runs the full onboarding sequence. The response body stays
// flat ("OK" or "Failed\n<message>"); the stage that failed is in the log.
func CreateMember(svc member.Service, logger *slog.Logger) fiber.Handler {
	const contextTimeout time.Duration = 30 * time.Second

	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), contextTimeout)
		defer cancel()

		req := member.AccountRequest{
			FirstName:    c.Query("firstName"),
			LastName:     c.Query("lastName"),
			PrivateEmail: c.Query("email"),
		}

		if _, err := svc.Create(ctx, req); err != nil {
			logger.Error("member creation failed", slog.Any("error", err))
			return c.Status(fiber.StatusInternalServerError).SendString("Failed\n" + err.Error())
		}

		return c.SendString("OK")
	}
}
