package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/controllers"
	"Backend-OfficeReports/src/middleware"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.AuthJWT)

	admin.Post("/cache/clear", controllers.ClearCaches)
	admin.Post("/jobs/refresh-offices", controllers.RefreshOffices)
}
