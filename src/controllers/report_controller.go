package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-OfficeReports/src/services/access"
	"Backend-OfficeReports/src/services/reports"
	"Backend-OfficeReports/src/services/submissions"
	"Backend-OfficeReports/src/utils"
)

var validate = validator.New()

// reportQuery binds the reporting filters. The batch size is capped: the
// report is schema-on-read and every loaded submission costs column work.
type reportQuery struct {
	FormID string `query:"formId"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=2000"`
}

const defaultReportBatch = 1000

func currentUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("userId").(string); ok {
		return userID
	}
	return ""
}

// GetSubmissionReport returns the reconciled {columns, rows} table for the
// loaded batch, optionally restricted to one form.
func GetSubmissionReport(c *fiber.Ctx) error {
	var query reportQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	if query.Limit == 0 {
		query.Limit = defaultReportBatch
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if query.FormID != "" && !access.CanAccessForm(ctx, query.FormID, currentUserID(c)) {
		return utils.HandleError(c, http.StatusForbidden, "Your office does not have access to this form")
	}

	batch, err := submissions.FetchBatch(ctx, query.FormID, query.Limit)
	if err != nil {
		return handleSubmissionFetchError(c, err)
	}
	if query.FormID == "" {
		batch = access.FilterSubmissionsByAccess(ctx, batch, currentUserID(c))
	}

	return c.JSON(reports.BuildSubmissionReport(ctx, batch))
}

// GetCoverageReport returns the completed/pending office partition for the
// selected form. Without a form it degrades to the offices seen.
func GetCoverageReport(c *fiber.Ctx) error {
	var query reportQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	if query.Limit == 0 {
		query.Limit = defaultReportBatch
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if query.FormID != "" && !access.CanAccessForm(ctx, query.FormID, currentUserID(c)) {
		return utils.HandleError(c, http.StatusForbidden, "Your office does not have access to this form")
	}

	batch, err := submissions.FetchBatch(ctx, query.FormID, query.Limit)
	if err != nil {
		return handleSubmissionFetchError(c, err)
	}
	if query.FormID == "" {
		batch = access.FilterSubmissionsByAccess(ctx, batch, currentUserID(c))
	}

	return c.JSON(reports.CoverageForForm(ctx, query.FormID, batch))
}

// ExportSubmissionsCSV streams the batch as a CSV attachment.
func ExportSubmissionsCSV(c *fiber.Ctx) error {
	var query reportQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	if query.Limit == 0 {
		query.Limit = defaultReportBatch
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if query.FormID != "" && !access.CanAccessForm(ctx, query.FormID, currentUserID(c)) {
		return utils.HandleError(c, http.StatusForbidden, "Your office does not have access to this form")
	}

	batch, err := submissions.FetchBatch(ctx, query.FormID, query.Limit)
	if err != nil {
		return handleSubmissionFetchError(c, err)
	}
	if query.FormID == "" {
		batch = access.FilterSubmissionsByAccess(ctx, batch, currentUserID(c))
	}

	var buf bytes.Buffer
	if err := reports.WriteSubmissionsCSV(ctx, &buf, batch); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Failed to serialize export")
	}

	filename := fmt.Sprintf("submissions-%s.csv", uuid.NewString()[:8])
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// handleSubmissionFetchError maps the one propagating failure (no live
// submissions table) to a retryable 503; everything else is a plain 500.
func handleSubmissionFetchError(c *fiber.Ctx, err error) error {
	if errors.Is(err, submissions.ErrSourceNotFound) {
		return utils.HandleError(c, http.StatusServiceUnavailable, "Submissions data source is unavailable, please retry")
	}
	return utils.HandleError(c, http.StatusInternalServerError, "Failed to load submissions")
}
