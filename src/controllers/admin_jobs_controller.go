package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/jobs"
	"Backend-OfficeReports/src/services/fieldschema"
	"Backend-OfficeReports/src/services/offices"
	"Backend-OfficeReports/src/utils"
)

// ClearCaches drops the field-mapping and office caches so the next read
// refetches. Form configurations change rarely but have no TTL, so this is
// the only way to pick up an edit immediately.
func ClearCaches(c *fiber.Ctx) error {
	fieldschema.ClearCache()
	offices.InvalidateCaches()
	return c.JSON(fiber.Map{"message": "caches cleared"})
}

// RefreshOffices re-runs the office roster arbitration, via the job queue
// when available, inline otherwise.
func RefreshOffices(c *fiber.Ctx) error {
	if DB.AsynqClient != nil {
		info, err := DB.AsynqClient.Enqueue(jobs.NewOfficeRefreshTask())
		if err != nil {
			return utils.HandleError(c, http.StatusInternalServerError, "Failed to enqueue refresh")
		}
		return c.JSON(fiber.Map{"message": "refresh enqueued", "taskId": info.ID})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := offices.RefreshDirectory(ctx)
	if err != nil {
		log.Println("inline office refresh failed:", err)
		return utils.HandleError(c, http.StatusServiceUnavailable, "Office roster refresh failed, please retry")
	}
	return c.JSON(fiber.Map{"message": "roster refreshed", "count": len(names)})
}
