package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-OfficeReports/src/models"
	"Backend-OfficeReports/src/services/access"
	"Backend-OfficeReports/src/services/submissions"
	"Backend-OfficeReports/src/utils"
)

// CreateSubmission appends a submission for a form, gated by the office
// access policy. The payload itself is stored as given, unvalidated.
func CreateSubmission(c *fiber.Ctx) error {
	formID := c.Params("id")

	var sub models.Submission
	if err := c.BodyParser(&sub); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}
	sub.FormIdentifier = formID
	sub.UserID = currentUserID(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if !access.CanAccessForm(ctx, formID, sub.UserID) {
		return utils.HandleError(c, http.StatusForbidden, "Your office does not have access to this form")
	}

	if err := submissions.Insert(ctx, &sub); err != nil {
		return handleSubmissionStoreError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(sub)
}

// ListSubmissions returns a raw page of submissions for inspection,
// optionally restricted to one form.
func ListSubmissions(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(&params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	formID := c.Query("formId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if formID != "" && !access.CanAccessForm(ctx, formID, currentUserID(c)) {
		return utils.HandleError(c, http.StatusForbidden, "Your office does not have access to this form")
	}

	batch, total, err := submissions.Fetch(ctx, formID, params)
	if err != nil {
		return handleSubmissionFetchError(c, err)
	}
	if formID == "" {
		batch = access.FilterSubmissionsByAccess(ctx, batch, currentUserID(c))
	}
	return c.JSON(models.NewPaginatedResponse(batch, total, params))
}

// handleSubmissionStoreError maps insert failures. The missing-table case is
// retryable like on the read side; anything else is a plain 500 with a
// write-side message.
func handleSubmissionStoreError(c *fiber.Ctx, err error) error {
	if errors.Is(err, submissions.ErrSourceNotFound) {
		return utils.HandleError(c, http.StatusServiceUnavailable, "Submissions data source is unavailable, please retry")
	}
	return utils.HandleError(c, http.StatusInternalServerError, "Failed to store submission")
}
