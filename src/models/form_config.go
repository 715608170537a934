package models

import (
	"time"

	"gorm.io/datatypes"
)

// Form field types understood by the renderer. Section and button are
// structural: they never carry submitted data and are excluded from
// field-id to label mappings.
const (
	FieldTypeText          = "text"
	FieldTypeTextarea      = "textarea"
	FieldTypeDropdown      = "dropdown"
	FieldTypeRadio         = "radio"
	FieldTypeButton        = "button"
	FieldTypeCheckbox      = "checkbox"
	FieldTypeNumber        = "number"
	FieldTypeDate          = "date"
	FieldTypeFile          = "file"
	FieldTypeSection       = "section"
	FieldTypeSwitch        = "switch"
	FieldTypeCheckboxGroup = "checkbox-group"
)

// FormField is one authored field of a form. The id is opaque and form-local;
// the label is human-readable but not unique across forms.
type FormField struct {
	ID    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Type  string `bson:"type" json:"type"`
}

// IsStructural reports whether the field is layout-only and carries no data.
func (f FormField) IsStructural() bool {
	return f.Type == FieldTypeSection || f.Type == FieldTypeButton
}

// FormConfiguration is one row of the relational page_configurations table.
// An empty SelectedOffices list means the form is unrestricted.
type FormConfiguration struct {
	ID              string                          `gorm:"column:id;primaryKey" json:"id"`
	Title           string                          `gorm:"column:title" json:"title"`
	SelectedOffices datatypes.JSONSlice[string]     `gorm:"column:selected_offices" json:"selectedOffices"`
	Fields          datatypes.JSONSlice[FormField]  `gorm:"column:fields" json:"fields"`
	LastUpdated     time.Time                       `gorm:"column:last_updated" json:"lastUpdated"`
}

func (FormConfiguration) TableName() string {
	return "page_configurations"
}

// FormConfigDocument is the document-store copy of a form configuration.
// Authoring tools stored these under several key namespaces over time, so a
// lookup tries each plausible prefix; a document counts as a configuration
// only once it carries a non-empty field list.
type FormConfigDocument struct {
	Key             string      `bson:"key" json:"key"`
	Title           string      `bson:"title" json:"title"`
	SelectedOffices []string    `bson:"selectedOffices" json:"selectedOffices"`
	Fields          []FormField `bson:"fields" json:"fields"`
}

// FieldMapping resolves a form's opaque field ids to labels. Order lists the
// labels in authored field order so derived column sets stay deterministic.
type FieldMapping struct {
	Labels map[string]string
	Order  []string
}

// IsEmpty reports whether no labels were resolved for the form.
func (m FieldMapping) IsEmpty() bool {
	return len(m.Labels) == 0
}
