// Package access decides which offices may see or submit which forms.
// The policy is deliberately small and its precedence is absolute: a user
// without an office is denied everything, an unrestricted form admits
// everyone, and otherwise membership of the form's target-office list is
// checked with trimmed, case-insensitive comparison.
package access

import (
	"context"
	"log"
	"strings"

	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/models"
	"Backend-OfficeReports/src/services/fieldschema"
	"Backend-OfficeReports/src/services/offices"
)

// CheckAccess applies the office access policy, in this precedence order:
// no user office denies regardless of the form; an empty target list allows
// (unrestricted form); otherwise the user's office must match some target.
func CheckAccess(userOffice string, targetOffices []string) bool {
	if strings.TrimSpace(userOffice) == "" {
		return false
	}
	if len(targetOffices) == 0 {
		return true
	}

	key := models.NormalizeOfficeName(userOffice)
	for _, target := range targetOffices {
		if models.NormalizeOfficeName(target) == key {
			return true
		}
	}
	return false
}

// FilterByAccess returns only the forms the office may access. Fails closed:
// a nil or empty input produces an empty collection, never everything.
func FilterByAccess(forms []models.FormConfiguration, userOffice string) []models.FormConfiguration {
	accessible := make([]models.FormConfiguration, 0, len(forms))
	for _, form := range forms {
		if CheckAccess(userOffice, form.SelectedOffices) {
			accessible = append(accessible, form)
		}
	}
	return accessible
}

// CanAccessForm is the just-in-time gate before navigating into a form's
// submission path. It resolves the user's offices and admits the user if
// their own office, or any office reporting to it, satisfies the policy.
// Any failure along the way denies.
func CanAccessForm(ctx context.Context, formID, userID string) bool {
	resolved := offices.ResolveUserOffices(ctx, userID)
	if resolved.Own == "" {
		return false
	}
	return officesSatisfy(resolved, loadTargetOffices(ctx, formID))
}

// FilterSubmissionsByAccess restricts a cross-form submission batch to the
// forms the user's offices may access. Used by the reporting surfaces when
// no single form is selected, so the same policy that gates a form also
// gates what its submissions leak into aggregate views.
func FilterSubmissionsByAccess(ctx context.Context, batch []models.Submission, userID string) []models.Submission {
	resolved := offices.ResolveUserOffices(ctx, userID)
	return FilterSubmissions(batch, resolved, func(formID string) []string {
		return loadTargetOffices(ctx, formID)
	})
}

// FilterSubmissions is the policy core behind FilterSubmissionsByAccess.
// Target lists load once per distinct form identifier. Fails closed: a user
// with no office keeps nothing.
func FilterSubmissions(batch []models.Submission, resolved models.UserOffices, targets func(formID string) []string) []models.Submission {
	filtered := make([]models.Submission, 0, len(batch))
	if resolved.Own == "" {
		return filtered
	}

	allowed := make(map[string]bool)
	for _, sub := range batch {
		verdict, ok := allowed[sub.FormIdentifier]
		if !ok {
			verdict = officesSatisfy(resolved, targets(sub.FormIdentifier))
			allowed[sub.FormIdentifier] = verdict
		}
		if verdict {
			filtered = append(filtered, sub)
		}
	}
	return filtered
}

func officesSatisfy(resolved models.UserOffices, targets []string) bool {
	if CheckAccess(resolved.Own, targets) {
		return true
	}
	for _, reporting := range resolved.Reporting {
		if CheckAccess(reporting, targets) {
			return true
		}
	}
	return false
}

// ListAccessibleForms loads every form configuration and filters it down to
// what the user's own office may see. Store failure yields an empty list.
func ListAccessibleForms(ctx context.Context, userID string) []models.FormConfiguration {
	resolved := offices.ResolveUserOffices(ctx, userID)

	db := DB.PG()
	if db == nil {
		return []models.FormConfiguration{}
	}
	var forms []models.FormConfiguration
	if err := db.WithContext(ctx).Order("title").Find(&forms).Error; err != nil {
		log.Println("form configuration listing failed:", err)
		return []models.FormConfiguration{}
	}
	return FilterByAccess(forms, resolved.Own)
}

// LoadFormTargets returns the form's target-office list, preferring the
// relational row and falling back to the document-store configuration. An
// unknown form has no restrictions.
func LoadFormTargets(ctx context.Context, formID string) []string {
	return loadTargetOffices(ctx, formID)
}

func loadTargetOffices(ctx context.Context, formID string) []string {
	if formID == "" {
		return nil
	}

	db := DB.PG()
	if db != nil {
		var form models.FormConfiguration
		err := db.WithContext(ctx).First(&form, "id = ?", formID).Error
		if err == nil {
			return form.SelectedOffices
		}
	}

	if doc, ok := fieldschema.GetFormConfig(ctx, formID); ok {
		return doc.SelectedOffices
	}
	return nil
}
