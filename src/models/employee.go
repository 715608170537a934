package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is the document-store record for a user. Only the office
// assignment matters to this system; it drives every access decision.
type Employee struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID              string             `bson:"userId" json:"userId"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email,omitempty"`
	EmployeeID          string             `bson:"employeeId" json:"employeeId,omitempty"`
	OfficeName          string             `bson:"officeName" json:"officeName,omitempty"`
	ReportingOfficeName string             `bson:"reportingOfficeName" json:"reportingOfficeName,omitempty"`
}
