// Package fieldschema resolves form identifiers to their authored field
// lists and derives field-id to label mappings from them. A missing schema
// is never an error: submissions of an unconfigured form degrade to raw
// field ids instead of disappearing.
package fieldschema

import (
	"context"

	"Backend-OfficeReports/src/cache"
	DB "Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Authoring tools have stored configurations under several key namespaces
// over the years; a lookup tries each until one yields a non-empty field
// list. The bare identifier is the current convention.
var keyPrefixes = []string{"", "page_config:", "form_config:", "pageConfig_"}

// Configurations change rarely, so neither cache expires; ClearCache is the
// only invalidation.
var (
	configCache  = cache.New[string, models.FormConfigDocument](0)
	mappingCache = cache.New[string, models.FieldMapping](0)
)

// GetFormConfig looks up a form's configuration in the document store,
// trying each key prefix in order. Absence (or a document without fields)
// reports ok=false, never an error.
func GetFormConfig(ctx context.Context, formID string) (models.FormConfigDocument, bool) {
	if formID == "" {
		return models.FormConfigDocument{}, false
	}
	if cfg, ok := configCache.Get(formID); ok {
		return cfg, true
	}
	if DB.PageConfigCollection == nil {
		return models.FormConfigDocument{}, false
	}

	for _, prefix := range keyPrefixes {
		var doc models.FormConfigDocument
		err := DB.PageConfigCollection.FindOne(ctx, bson.M{"key": prefix + formID}).Decode(&doc)
		if err != nil {
			// Not found under this prefix, or the store is unhappy;
			// either way the next candidate may still work.
			continue
		}
		if len(doc.Fields) == 0 {
			continue
		}
		configCache.Set(formID, doc)
		return doc, true
	}
	return models.FormConfigDocument{}, false
}

// GetFieldMapping resolves a form identifier to its field-id to label
// mapping. Unknown forms yield an empty mapping, which is cached like any
// other until ClearCache.
func GetFieldMapping(ctx context.Context, formID string) models.FieldMapping {
	if m, ok := mappingCache.Get(formID); ok {
		return m
	}

	mapping := models.FieldMapping{Labels: map[string]string{}}
	if cfg, ok := GetFormConfig(ctx, formID); ok {
		mapping = BuildFieldMapping(cfg.Fields)
	}
	mappingCache.Set(formID, mapping)
	return mapping
}

// BuildFieldMapping derives the id-to-label mapping from an authored field
// list. Structural fields (sections, buttons) and unlabeled fields are
// excluded; label order follows the authored field order.
func BuildFieldMapping(fields []models.FormField) models.FieldMapping {
	mapping := models.FieldMapping{Labels: map[string]string{}}
	seen := make(map[string]bool)
	for _, field := range fields {
		if field.IsStructural() || field.ID == "" || field.Label == "" {
			continue
		}
		mapping.Labels[field.ID] = field.Label
		if !seen[field.Label] {
			seen[field.Label] = true
			mapping.Order = append(mapping.Order, field.Label)
		}
	}
	return mapping
}

// ConvertSubmissionData remaps a raw submission payload from field ids to
// labels. A field with no label keeps its raw id as the key, so unconfigured
// fields are unlabeled rather than dropped. Values pass through unchanged.
func ConvertSubmissionData(mapping models.FieldMapping, raw map[string]interface{}) map[string]interface{} {
	converted := make(map[string]interface{}, len(raw))
	for fieldID, value := range raw {
		key := fieldID
		if label, ok := mapping.Labels[fieldID]; ok {
			key = label
		}
		converted[key] = value
	}
	return converted
}

// ClearCache drops both the raw configurations and the derived mappings.
func ClearCache() {
	configCache.Clear()
	mappingCache.Clear()
}
