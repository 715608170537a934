package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is one submitted form instance. SubmissionData maps opaque
// field ids to the submitted value (a scalar or a list of strings).
// Submissions are immutable once read; which relational table holds them is
// discovered at runtime (see services/submissions).
type Submission struct {
	ID             int64             `gorm:"column:id;primaryKey" json:"id"`
	FormIdentifier string            `gorm:"column:form_identifier" json:"formIdentifier"`
	UserID         string            `gorm:"column:user_id" json:"userId,omitempty"`
	EmployeeID     string            `gorm:"column:employee_id" json:"employeeId,omitempty"`
	SubmissionData datatypes.JSONMap `gorm:"column:submission_data" json:"submissionData"`
	SubmittedAt    time.Time         `gorm:"column:submitted_at" json:"submittedAt"`
}
