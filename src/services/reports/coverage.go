package reports

import (
	"context"
	"sort"
	"strings"

	"Backend-OfficeReports/src/models"
	"Backend-OfficeReports/src/services/access"
	"Backend-OfficeReports/src/services/fieldschema"
)

// CoverageForForm computes which of a form's target offices have submitted
// and which are pending, over the given batch.
func CoverageForForm(ctx context.Context, formID string, batch []models.Submission) models.CoverageReport {
	mappings := resolveMappings(ctx, distinctFormIDs(batch), fieldschema.GetFieldMapping)
	targets := access.LoadFormTargets(ctx, formID)
	return ComputeCoverage(formID, targets, batch, mappings)
}

// ComputeCoverage partitions targets into completed and pending using
// trimmed, case-insensitive office-name matching. Offices are extracted
// from submission payloads by heuristic, so completed may contain offices
// outside the target roster; pending never does. With no form selected
// there is no authoritative target roster: every office seen counts as
// completed, nothing is pending and TotalTargets is zero.
func ComputeCoverage(formID string, targets []string, batch []models.Submission, mappings map[string]models.FieldMapping) models.CoverageReport {
	completed := make([]string, 0)
	completedSet := make(map[string]bool)
	for _, sub := range batch {
		if formID != "" && sub.FormIdentifier != formID {
			continue
		}
		name := ExtractOfficeName(sub, mappings[sub.FormIdentifier])
		if name == "" {
			continue
		}
		key := models.NormalizeOfficeName(name)
		if completedSet[key] {
			continue
		}
		completedSet[key] = true
		completed = append(completed, strings.TrimSpace(name))
	}
	sortOfficeNames(completed)

	if formID == "" {
		return models.CoverageReport{
			Completed:    completed,
			Pending:      []string{},
			TotalTargets: 0,
		}
	}

	uniqueTargets := models.MergeOfficeNames("", targets)
	pending := make([]string, 0, len(uniqueTargets))
	for _, target := range uniqueTargets {
		if !completedSet[models.NormalizeOfficeName(target)] {
			pending = append(pending, target)
		}
	}

	return models.CoverageReport{
		FormID:       formID,
		Completed:    completed,
		Pending:      pending,
		TotalTargets: len(uniqueTargets),
	}
}

func sortOfficeNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a == b {
			return names[i] < names[j]
		}
		return a < b
	})
}
