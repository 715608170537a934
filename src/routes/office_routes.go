package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/controllers"
	"Backend-OfficeReports/src/middleware"
)

func OfficeRoutes(app *fiber.App) {
	offices := app.Group("/api/offices", middleware.AuthJWT)

	offices.Get("/", controllers.GetOffices)
	offices.Get("/me", controllers.GetMyOffices)
}
