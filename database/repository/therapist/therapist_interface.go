package therapistRepo

import (
	"time"

	"mindwell/models"
)

// TherapistRepository defines methods for therapist profile data access.
type TherapistRepository interface {
	// GetByUserID retrieves a therapist profile by user ID; nil when absent.
	GetByUserID(userID string) (*models.TherapistProfile, error)
	// Upsert creates or replaces a therapist profile.
	Upsert(profile *models.TherapistProfile) error
	// UpdateAvailability replaces the weekly working hours and day-off list.
	UpdateAvailability(userID string, workingHours map[string]models.WorkingHours, daysOff []time.Time) error
	// ListAll returns every therapist profile.
	ListAll() ([]models.TherapistProfile, error)
	// Delete removes a therapist profile by user ID.
	Delete(userID string) error
}
