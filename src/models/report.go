package models

// Fixed leading report columns. Every other column is a field label (or a
// raw field id when a form has no configuration).
const (
	ColumnFormType    = "form_type"
	ColumnSubmittedAt = "submitted_at"
)

// ReportColumn is one column of the synthesized report table.
type ReportColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ReportRow maps column keys to display values. Columns absent for a row's
// form are simply missing and render blank.
type ReportRow map[string]string

// ReportTable is the reconciled report: the column set is the union of field
// labels seen across the loaded submission batch, so it is recomputed
// whenever the batch changes.
type ReportTable struct {
	Columns []ReportColumn `json:"columns"`
	Rows    []ReportRow    `json:"rows"`
}

// CoverageReport partitions a form's target offices into those that have
// submitted and those still pending. Without a selected form there is no
// authoritative target roster: every office seen counts as completed and
// TotalTargets is zero.
type CoverageReport struct {
	FormID       string   `json:"formId,omitempty"`
	Completed    []string `json:"completed"`
	Pending      []string `json:"pending"`
	TotalTargets int      `json:"totalTargets"`
}
