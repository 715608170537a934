package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Backend-OfficeReports/src/models"
)

func TestCheckAccess(t *testing.T) {
	t.Run("TestNoOfficeDeniesEverything", func(t *testing.T) {
		// Rule 1 outranks everything, including unrestricted forms.
		assert.False(t, CheckAccess("", nil))
		assert.False(t, CheckAccess("", []string{}))
		assert.False(t, CheckAccess("   ", []string{"Chennai RO"}))
		assert.False(t, CheckAccess("", []string{"Chennai RO"}))
	})

	t.Run("TestUnrestrictedFormAllowsAnyOffice", func(t *testing.T) {
		assert.True(t, CheckAccess("Chennai RO", nil))
		assert.True(t, CheckAccess("Chennai RO", []string{}))
		assert.True(t, CheckAccess("Anything At All", []string{}))
	})

	t.Run("TestMembershipIsTrimmedAndCaseInsensitive", func(t *testing.T) {
		targets := []string{"Madurai BO", "Chennai RO"}

		assert.True(t, CheckAccess("Chennai RO", targets))
		assert.True(t, CheckAccess("chennai ro", targets))
		assert.True(t, CheckAccess("  CHENNAI RO  ", targets))
		assert.False(t, CheckAccess("Trichy SO", targets))
	})

	t.Run("TestVariantTargetsStillMatch", func(t *testing.T) {
		assert.True(t, CheckAccess("Chennai RO", []string{" chennai ro "}))
	})
}

func TestFilterByAccess(t *testing.T) {
	allForms := []models.FormConfiguration{
		{ID: "leave-request", SelectedOffices: []string{"Chennai RO"}},
		{ID: "daily-activity-report", SelectedOffices: nil},
		{ID: "asset-audit", SelectedOffices: []string{"Madurai BO"}},
	}

	t.Run("TestResultIsSubsetAndSatisfiesPolicy", func(t *testing.T) {
		filtered := FilterByAccess(allForms, "Chennai RO")

		assert.LessOrEqual(t, len(filtered), len(allForms))
		for _, form := range filtered {
			assert.True(t, CheckAccess("Chennai RO", form.SelectedOffices))
		}

		ids := make([]string, 0, len(filtered))
		for _, form := range filtered {
			ids = append(ids, form.ID)
		}
		assert.Equal(t, []string{"leave-request", "daily-activity-report"}, ids)
	})

	t.Run("TestNoOfficeFiltersToNothing", func(t *testing.T) {
		assert.Empty(t, FilterByAccess(allForms, ""))
	})

	t.Run("TestNilInputFailsClosed", func(t *testing.T) {
		filtered := FilterByAccess(nil, "Chennai RO")
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})
}

func TestFilterSubmissions(t *testing.T) {
	targetsByForm := map[string][]string{
		"leave-request": {"Chennai RO"},
		"asset-audit":   {"Madurai BO"},
		// mystery-form has no configuration: unrestricted.
	}
	batch := []models.Submission{
		{ID: 1, FormIdentifier: "leave-request"},
		{ID: 2, FormIdentifier: "asset-audit"},
		{ID: 3, FormIdentifier: "mystery-form"},
		{ID: 4, FormIdentifier: "leave-request"},
	}
	loadTargets := func(formID string) []string {
		return targetsByForm[formID]
	}

	submissionIDs := func(subs []models.Submission) []int64 {
		ids := make([]int64, 0, len(subs))
		for _, sub := range subs {
			ids = append(ids, sub.ID)
		}
		return ids
	}

	t.Run("TestNoOfficeKeepsNothing", func(t *testing.T) {
		filtered := FilterSubmissions(batch, models.UserOffices{}, loadTargets)
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
	})

	t.Run("TestOnlyAccessibleFormsSurvive", func(t *testing.T) {
		resolved := models.UserOffices{Own: "Chennai RO"}

		filtered := FilterSubmissions(batch, resolved, loadTargets)
		// leave-request matches, mystery-form is unrestricted,
		// asset-audit is someone else's.
		assert.Equal(t, []int64{1, 3, 4}, submissionIDs(filtered))
	})

	t.Run("TestReportingOfficeAlsoSatisfies", func(t *testing.T) {
		resolved := models.UserOffices{Own: "Chennai RO", Reporting: []string{"Madurai BO"}}

		filtered := FilterSubmissions(batch, resolved, loadTargets)
		assert.Equal(t, []int64{1, 2, 3, 4}, submissionIDs(filtered))
	})

	t.Run("TestOfficeOutsideEveryFormSeesOnlyUnrestricted", func(t *testing.T) {
		resolved := models.UserOffices{Own: "Trichy SO"}

		filtered := FilterSubmissions(batch, resolved, loadTargets)
		assert.Equal(t, []int64{3}, submissionIDs(filtered))
	})

	t.Run("TestTargetsLoadOncePerForm", func(t *testing.T) {
		loads := map[string]int{}
		counting := func(formID string) []string {
			loads[formID]++
			return targetsByForm[formID]
		}

		FilterSubmissions(batch, models.UserOffices{Own: "Chennai RO"}, counting)
		assert.Equal(t, 1, loads["leave-request"])
		assert.Equal(t, 1, loads["asset-audit"])
		assert.Equal(t, 1, loads["mystery-form"])
	})
}
