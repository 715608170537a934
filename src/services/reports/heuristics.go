package reports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"Backend-OfficeReports/src/models"
)

// Office names in this organization end in a branch-type abbreviation:
// regional, branch, sub, divisional and head offices.
var officeSuffixTokens = []string{" RO", " BO", " SO", " DO", " HO"}

// LooksLikeTimestamp reports whether a string value should render as a date.
// The heuristic is presence of both "T" and ":" (an ISO timestamp shape).
// Known fragility: any free text containing a colon and the letter T is
// misclassified. Replacing this with explicit field-role tags in the form
// schema is the upgrade path; current behavior is kept for compatibility.
func LooksLikeTimestamp(s string) bool {
	return strings.Contains(s, "T") && strings.Contains(s, ":")
}

// LooksLikeOfficeName reports whether a free-text value reads as an office
// name, by its branch-type suffix token or an explicit "office" mention.
func LooksLikeOfficeName(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	upper := strings.ToUpper(trimmed)
	for _, token := range officeSuffixTokens {
		if strings.HasSuffix(upper, token) {
			return true
		}
	}
	return strings.Contains(upper, "OFFICE")
}

// IsOfficeFieldKey reports whether a field id or label denotes the
// submitting office.
func IsOfficeFieldKey(key string) bool {
	return strings.Contains(strings.ToLower(key), "office")
}

// IsNameFieldKey reports whether a field id or label denotes the
// submitter's name (and not an office or form name).
func IsNameFieldKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "name") &&
		!strings.Contains(lower, "office") &&
		!strings.Contains(lower, "form")
}

// ExtractOfficeName pulls the submitting office out of a submission's
// payload: first from a field whose id or label mentions "office", then
// from any value that looks like an office name. Returns "" when nothing
// plausible is found.
func ExtractOfficeName(sub models.Submission, mapping models.FieldMapping) string {
	keys := sortedKeys(sub.SubmissionData)

	for _, key := range keys {
		if !IsOfficeFieldKey(key) && !IsOfficeFieldKey(mapping.Labels[key]) {
			continue
		}
		if value, ok := stringValue(sub.SubmissionData[key]); ok {
			return strings.TrimSpace(value)
		}
	}
	for _, key := range keys {
		if value, ok := stringValue(sub.SubmissionData[key]); ok && LooksLikeOfficeName(value) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// ExtractUserName pulls the submitter's display name from the payload via
// the name-field heuristic. Display convenience only.
func ExtractUserName(sub models.Submission, mapping models.FieldMapping) string {
	for _, key := range sortedKeys(sub.SubmissionData) {
		if !IsNameFieldKey(key) && !IsNameFieldKey(mapping.Labels[key]) {
			continue
		}
		if value, ok := stringValue(sub.SubmissionData[key]); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func sortedKeys(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func stringValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// displayValue renders a submitted value for the report table. Strings that
// look like ISO timestamps render as a locale date; the stored value is
// never touched. Lists join with commas.
func displayValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		if LooksLikeTimestamp(value) {
			return formatLocaleDate(value)
		}
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			parts = append(parts, displayValue(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(value, ", ")
	default:
		return fmt.Sprintf("%v", value)
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

const localeDateLayout = "2 Jan 2006"

func formatLocaleDate(s string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(localeDateLayout)
		}
	}
	// Matched the heuristic but is not parseable; show it untouched.
	return s
}
