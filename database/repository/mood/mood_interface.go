package moodRepo

import (
	"time"

	"mindwell/models"
)

// MoodRepository defines methods for mood entry data access.
type MoodRepository interface {
	// Create inserts a new mood entry.
	Create(entry *models.MoodEntry) error
	// GetByID retrieves a mood entry by its ID; nil when absent.
	GetByID(id string) (*models.MoodEntry, error)
	// ListByPatient returns all mood entries for a patient, oldest first.
	ListByPatient(patientID string) ([]models.MoodEntry, error)
	// ListByPatientSince returns the patient's entries created at or after
	// the cutoff, oldest first.
	ListByPatientSince(patientID string, cutoff time.Time) ([]models.MoodEntry, error)
	// Delete removes a mood entry by its ID; the bool reports whether a
	// record was deleted.
	Delete(id string) (bool, error)
	// DeleteForPatient removes all mood entries for a patient.
	DeleteForPatient(patientID string) error
}
