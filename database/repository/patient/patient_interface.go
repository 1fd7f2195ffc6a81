package patientRepo

import "mindwell/models"

// PatientRepository defines methods for patient profile data access.
type PatientRepository interface {
	// GetByUserID retrieves a patient profile by user ID; nil when absent.
	GetByUserID(userID string) (*models.PatientProfile, error)
	// Upsert creates or replaces a patient profile.
	Upsert(profile *models.PatientProfile) error
	// ListAll returns every patient profile.
	ListAll() ([]models.PatientProfile, error)
	// Delete removes a patient profile by user ID.
	Delete(userID string) error
}
