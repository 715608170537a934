package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"Backend-OfficeReports/src/models"
)

func coverageSubmission(formID, office string) models.Submission {
	return models.Submission{
		FormIdentifier: formID,
		SubmissionData: datatypes.JSONMap{"office": office},
		SubmittedAt:    time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeCoverage(t *testing.T) {
	noMappings := map[string]models.FieldMapping{}

	t.Run("TestCaseAndWhitespaceVariantsCountOnce", func(t *testing.T) {
		targets := []string{"Chennai RO", "Madurai BO"}
		batch := []models.Submission{
			coverageSubmission("leave-request", "Chennai RO"),
			coverageSubmission("leave-request", " chennai ro"),
		}

		coverage := ComputeCoverage("leave-request", targets, batch, noMappings)

		assert.Equal(t, []string{"Chennai RO"}, coverage.Completed)
		assert.Equal(t, []string{"Madurai BO"}, coverage.Pending)
		assert.NotContains(t, coverage.Pending, "Chennai RO")
		assert.Equal(t, 2, coverage.TotalTargets)
	})

	t.Run("TestCompletedAndPendingAreDisjoint", func(t *testing.T) {
		targets := []string{"Chennai RO", "Madurai BO", "Trichy SO"}
		batch := []models.Submission{
			coverageSubmission("leave-request", "Madurai BO"),
			coverageSubmission("leave-request", "Salem BO"), // outside the roster
		}

		coverage := ComputeCoverage("leave-request", targets, batch, noMappings)

		completedSet := make(map[string]bool)
		for _, name := range coverage.Completed {
			completedSet[models.NormalizeOfficeName(name)] = true
		}
		for _, name := range coverage.Pending {
			assert.False(t, completedSet[models.NormalizeOfficeName(name)])
		}

		// Every office extracted from the batch appears in the union.
		union := append(append([]string{}, coverage.Completed...), coverage.Pending...)
		assert.Contains(t, union, "Madurai BO")
		assert.Contains(t, union, "Salem BO")
	})

	t.Run("TestOtherFormsSubmissionsIgnored", func(t *testing.T) {
		targets := []string{"Chennai RO"}
		batch := []models.Submission{
			coverageSubmission("asset-audit", "Chennai RO"),
		}

		coverage := ComputeCoverage("leave-request", targets, batch, noMappings)
		assert.Empty(t, coverage.Completed)
		assert.Equal(t, []string{"Chennai RO"}, coverage.Pending)
	})

	t.Run("TestNoSelectedFormDegrades", func(t *testing.T) {
		// Without a target roster there is no authoritative pending notion.
		batch := []models.Submission{
			coverageSubmission("leave-request", "Chennai RO"),
			coverageSubmission("asset-audit", "Madurai BO"),
		}

		coverage := ComputeCoverage("", nil, batch, noMappings)
		assert.Equal(t, []string{"Chennai RO", "Madurai BO"}, coverage.Completed)
		assert.Empty(t, coverage.Pending)
		assert.Zero(t, coverage.TotalTargets)
	})

	t.Run("TestSubmissionWithoutOfficeContributesNothing", func(t *testing.T) {
		batch := []models.Submission{
			{
				FormIdentifier: "leave-request",
				SubmissionData: datatypes.JSONMap{"remarks": "no location here"},
			},
		}

		coverage := ComputeCoverage("leave-request", []string{"Chennai RO"}, batch, noMappings)
		assert.Empty(t, coverage.Completed)
		assert.Equal(t, 1, coverage.TotalTargets)
	})

	t.Run("TestDuplicateTargetsCountOnce", func(t *testing.T) {
		coverage := ComputeCoverage("leave-request", []string{"Chennai RO", "chennai ro "}, nil, noMappings)
		assert.Equal(t, 1, coverage.TotalTargets)
		assert.Len(t, coverage.Pending, 1)
	})
}
