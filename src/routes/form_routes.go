package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/controllers"
	"Backend-OfficeReports/src/middleware"
)

func FormRoutes(app *fiber.App) {
	forms := app.Group("/api/forms", middleware.AuthJWT)

	forms.Get("/", controllers.ListForms)
	forms.Get("/:id/access", controllers.CheckFormAccess)
	forms.Post("/:id/submissions", controllers.CreateSubmission)
}
