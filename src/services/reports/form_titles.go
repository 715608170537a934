package reports

import "strings"

// Display titles for well-known form identifiers. Anything not listed falls
// back to title-casing the identifier itself.
var formTitles = map[string]string{
	"leave-request":         "Leave Request",
	"daily-activity-report": "Daily Activity Report",
	"office-inspection":     "Office Inspection",
	"asset-audit":           "Asset Audit",
	"grievance-redressal":   "Grievance Redressal",
	"staff-attendance":      "Staff Attendance",
}

// FormTitle resolves a form identifier to its display title.
func FormTitle(formID string) string {
	if title, ok := formTitles[formID]; ok {
		return title
	}
	return titleCase(formID)
}

func titleCase(identifier string) string {
	words := strings.FieldsFunc(identifier, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
