package models

import "time"

// Role identifies what kind of account a user holds.
type Role string

const (
	RolePatient   Role = "patient"
	RoleTherapist Role = "therapist"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one the platform accepts at signup.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleTherapist || r == RoleAdmin
}

// User is the account record shared by patients, therapists and admins.
// Role-specific data lives in PatientProfile / TherapistProfile.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	PhotoURL     string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
