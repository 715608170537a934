// Package reports turns raw submission batches into human-readable report
// tables, coverage partitions and CSV exports. Submissions from many
// independently-configured forms are reconciled into one column-stable
// table: the column set is the union of every field label (or raw field id)
// present in the loaded batch.
package reports

import (
	"context"
	"sort"
	"sync"

	"Backend-OfficeReports/src/models"
	"Backend-OfficeReports/src/services/fieldschema"
)

// MappingResolver resolves a form identifier to its field mapping.
// In production this is fieldschema.GetFieldMapping; tests stub it.
type MappingResolver func(ctx context.Context, formID string) models.FieldMapping

// BuildReport reconciles a submission batch into (columns, rows). Columns
// start with the two fixed entries, then the union of labels in first-seen
// order over the original batch order; mappings for distinct forms are
// resolved concurrently but joined deterministically. Labels in skipLabels
// are handled elsewhere by the caller (a dedicated office column, say) and
// excluded here to avoid duplicate display.
func BuildReport(ctx context.Context, batch []models.Submission, resolve MappingResolver, skipLabels map[string]bool) models.ReportTable {
	formIDs := distinctFormIDs(batch)
	mappings := resolveMappings(ctx, formIDs, resolve)

	columns := []models.ReportColumn{
		{Key: models.ColumnFormType, Label: "Form Type"},
		{Key: models.ColumnSubmittedAt, Label: "Submitted At"},
	}
	inColumns := map[string]bool{
		models.ColumnFormType:    true,
		models.ColumnSubmittedAt: true,
	}

	addColumn := func(key string) {
		if key == "" || inColumns[key] || skipLabels[key] {
			return
		}
		inColumns[key] = true
		columns = append(columns, models.ReportColumn{Key: key, Label: key})
	}

	// Labels of configured forms first, in authored order per form.
	for _, formID := range formIDs {
		for _, label := range mappings[formID].Order {
			addColumn(label)
		}
	}

	// Then any leftover raw field ids from forms without a configuration,
	// sorted per submission so the union stays deterministic.
	converted := make([]map[string]interface{}, len(batch))
	for i, sub := range batch {
		converted[i] = fieldschema.ConvertSubmissionData(mappings[sub.FormIdentifier], sub.SubmissionData)

		extra := make([]string, 0)
		for key := range converted[i] {
			if !inColumns[key] && !skipLabels[key] {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		for _, key := range extra {
			addColumn(key)
		}
	}

	rows := make([]models.ReportRow, 0, len(batch))
	for i, sub := range batch {
		row := models.ReportRow{
			models.ColumnFormType: FormTitle(sub.FormIdentifier),
		}
		if !sub.SubmittedAt.IsZero() {
			row[models.ColumnSubmittedAt] = sub.SubmittedAt.Format(localeDateLayout)
		}
		for key, value := range converted[i] {
			if skipLabels[key] {
				continue
			}
			row[key] = displayValue(value)
		}
		rows = append(rows, row)
	}

	return models.ReportTable{Columns: columns, Rows: rows}
}

// BuildSubmissionReport is the composition used by the reporting surface:
// the reconciled table plus a dedicated office column. Office-name field
// labels are skipped inside the table since the extracted office is already
// displayed, which would otherwise duplicate the value.
func BuildSubmissionReport(ctx context.Context, batch []models.Submission) models.ReportTable {
	mappings := resolveMappings(ctx, distinctFormIDs(batch), fieldschema.GetFieldMapping)

	skip := make(map[string]bool)
	for _, sub := range batch {
		mapping := mappings[sub.FormIdentifier]
		for fieldID := range sub.SubmissionData {
			key := fieldID
			if label, ok := mapping.Labels[fieldID]; ok {
				key = label
			}
			if IsOfficeFieldKey(key) {
				skip[key] = true
			}
		}
	}

	table := BuildReport(ctx, batch, fieldschema.GetFieldMapping, skip)

	officeColumn := models.ReportColumn{Key: "user_office", Label: "User Office"}
	table.Columns = append(table.Columns[:2], append([]models.ReportColumn{officeColumn}, table.Columns[2:]...)...)
	for i, sub := range batch {
		if name := ExtractOfficeName(sub, mappings[sub.FormIdentifier]); name != "" {
			table.Rows[i]["user_office"] = name
		}
	}
	return table
}

// distinctFormIDs preserves first-seen order over the original batch order,
// which pins the column order regardless of resolution completion order.
func distinctFormIDs(batch []models.Submission) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, sub := range batch {
		if sub.FormIdentifier == "" || seen[sub.FormIdentifier] {
			continue
		}
		seen[sub.FormIdentifier] = true
		ids = append(ids, sub.FormIdentifier)
	}
	return ids
}

// resolveMappings fans the independent lookups out and joins them. A lookup
// that yields nothing simply leaves an empty mapping for its form.
func resolveMappings(ctx context.Context, formIDs []string, resolve MappingResolver) map[string]models.FieldMapping {
	mappings := make(map[string]models.FieldMapping, len(formIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, formID := range formIDs {
		wg.Add(1)
		go func(formID string) {
			defer wg.Done()
			mapping := resolve(ctx, formID)
			mu.Lock()
			mappings[formID] = mapping
			mu.Unlock()
		}(formID)
	}
	wg.Wait()

	return mappings
}
