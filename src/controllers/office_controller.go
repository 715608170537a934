package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/services/offices"
	"Backend-OfficeReports/src/utils"
)

// GetOffices returns the unique, sorted office roster.
func GetOffices(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	names, err := offices.FetchOfficeNames(ctx)
	if err != nil {
		if errors.Is(err, offices.ErrNoOfficeData) {
			return utils.HandleError(c, http.StatusServiceUnavailable, "Office roster is unavailable, please retry")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to load offices")
	}

	return c.JSON(fiber.Map{"offices": names, "count": len(names)})
}

// GetMyOffices returns the current user's own office and the offices
// reporting to it.
func GetMyOffices(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resolved := offices.ResolveUserOffices(ctx, currentUserID(c))
	return c.JSON(fiber.Map{
		"own":       resolved.Own,
		"reporting": resolved.Reporting,
		"all":       resolved.All(),
	})
}
