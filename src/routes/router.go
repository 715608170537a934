package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	ReportRoutes(app)
	FormRoutes(app)
	OfficeRoutes(app)
	SubmissionRoutes(app)
	AdminRoutes(app)

	// Liveness check.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})
}
