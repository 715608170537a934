package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"Backend-OfficeReports/src/services/submissions"
)

func TestReportQueryValidation(t *testing.T) {
	// These requests fail validation before any store is touched.
	handlers := map[string]fiber.Handler{
		"/report":   GetSubmissionReport,
		"/coverage": GetCoverageReport,
		"/export":   ExportSubmissionsCSV,
	}

	app := fiber.New()
	for path, handler := range handlers {
		app.Get(path, handler)
	}

	for path := range handlers {
		t.Run("TestLimitCapEnforcedOn"+path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path+"?limit=5000", nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})

		t.Run("TestNegativeLimitRejectedOn"+path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path+"?limit=-1", nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestSubmissionErrorMapping(t *testing.T) {
	app := fiber.New()
	app.Get("/fetch-missing", func(c *fiber.Ctx) error {
		return handleSubmissionFetchError(c, submissions.ErrSourceNotFound)
	})
	app.Get("/fetch-other", func(c *fiber.Ctx) error {
		return handleSubmissionFetchError(c, errors.New("connection reset"))
	})
	app.Get("/store-missing", func(c *fiber.Ctx) error {
		return handleSubmissionStoreError(c, submissions.ErrSourceNotFound)
	})
	app.Get("/store-other", func(c *fiber.Ctx) error {
		return handleSubmissionStoreError(c, errors.New("constraint violation"))
	})

	t.Run("TestMissingSourceIsRetryableEitherWay", func(t *testing.T) {
		for _, path := range []string{"/fetch-missing", "/store-missing"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			assert.NoError(t, err)
			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		}
	})

	t.Run("TestOtherFailuresAre500", func(t *testing.T) {
		for _, path := range []string{"/fetch-other", "/store-other"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		}
	})
}
