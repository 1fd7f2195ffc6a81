package models

import "time"

// PatientProfile holds patient-specific data keyed by the user's ID.
type PatientProfile struct {
	UserID           string    `bson:"userId" json:"userId"`
	Gender           string    `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth      string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	HealthConditions []string  `bson:"healthConditions,omitempty" json:"healthConditions,omitempty"`
	EmergencyContact string    `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
