package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/services/access"
)

// ListForms returns the form configurations the current user's office may
// see. Store failure shows an empty list rather than leaking forms.
func ListForms(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	forms := access.ListAccessibleForms(ctx, currentUserID(c))
	return c.JSON(forms)
}

// CheckFormAccess is the just-in-time gate consumed by the navigation layer
// before entering a form's submission path.
func CheckFormAccess(c *fiber.Ctx) error {
	formID := c.Params("id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return c.JSON(fiber.Map{
		"formId":    formID,
		"canAccess": access.CanAccessForm(ctx, formID, currentUserID(c)),
	})
}
