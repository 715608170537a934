package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/controllers"
	"Backend-OfficeReports/src/middleware"
)

func SubmissionRoutes(app *fiber.App) {
	submissions := app.Group("/api/submissions", middleware.AuthJWT)

	submissions.Get("/", controllers.ListSubmissions)
}
