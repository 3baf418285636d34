package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/neuland-ingolstadt/membership-tools/api/handlers"
	"github.com/neuland-ingolstadt/membership-tools/pkg/member"
	"github.com/neuland-ingolstadt/membership-tools/pkg/notify"
)

func RegisterRoutes(app fiber.Router, svc member.Service, renderer *notify.Renderer, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	app.Get("/create-member", handlers.CreateMemberForm(renderer))
	app.Post("/create-member", handlers.CreateMember(svc, logger))
}
