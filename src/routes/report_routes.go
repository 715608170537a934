package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/controllers"
	"Backend-OfficeReports/src/middleware"
)

func ReportRoutes(app *fiber.App) {
	reports := app.Group("/api/reports", middleware.AuthJWT)

	reports.Get("/submissions", controllers.GetSubmissionReport)
	reports.Get("/submissions/export", controllers.ExportSubmissionsCSV)
	reports.Get("/coverage", controllers.GetCoverageReport)
}
