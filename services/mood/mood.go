package mood

import (
	"fmt"
	"time"

	moodRepo "mindwell/database/repository/mood"
	sessionRepo "mindwell/database/repository/session"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"

	"github.com/google/uuid"
)

// ValidationError reports a rejected mood submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an unknown patient or mood entry.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ForbiddenError reports an access the caller is not entitled to.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// AddMoodRequest is the payload for logging a mood.
type AddMoodRequest struct {
	MoodLevel int      `json:"moodLevel" binding:"required"`
	Tags      []string `json:"tags"`
	Note      string   `json:"note"`
}

// MoodService manages patient mood entries and who may read them.
type MoodService interface {
	// AddMood records a mood for a patient. Levels outside 1-10 are rejected.
	AddMood(patientID string, req AddMoodRequest) (*models.MoodEntry, error)
	// GetMoods lists a patient's entries for a requester. Therapists may
	// read only patients they share at least one session with.
	GetMoods(requesterID string, patientID string) ([]models.MoodEntry, error)
	// GetMood fetches a single entry, applying the same access rule.
	GetMood(requesterID, moodID string) (*models.MoodEntry, error)
	// DeleteMood removes a patient's own entry.
	DeleteMood(patientID, moodID string) error
}

// DefaultMoodService is the production implementation.
type DefaultMoodService struct {
	Users    userRepo.UserRepository
	Moods    moodRepo.MoodRepository
	Sessions sessionRepo.SessionRepository
}

func (s *DefaultMoodService) AddMood(patientID string, req AddMoodRequest) (*models.MoodEntry, error) {
	patient, err := s.Users.GetByID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}
	if patient == nil || patient.Role != models.RolePatient {
		return nil, &ValidationError{Message: "Only patients can log moods"}
	}
	if req.MoodLevel < 1 || req.MoodLevel > 10 {
		return nil, &ValidationError{Message: "Mood level should be between 1-10"}
	}

	entry := &models.MoodEntry{
		ID:        uuid.NewString(),
		PatientID: patientID,
		MoodLevel: req.MoodLevel,
		Tags:      req.Tags,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}
	if err := s.Moods.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to store mood entry: %w", err)
	}
	return entry, nil
}

func (s *DefaultMoodService) GetMoods(requesterID, patientID string) ([]models.MoodEntry, error) {
	if err := s.authorize(requesterID, patientID); err != nil {
		return nil, err
	}

	moods, err := s.Moods.ListByPatient(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return moods, nil
}

func (s *DefaultMoodService) GetMood(requesterID, moodID string) (*models.MoodEntry, error) {
	entry, err := s.Moods.GetByID(moodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood entry: %w", err)
	}
	if entry == nil {
		return nil, &NotFoundError{Message: "Mood entry not found"}
	}
	if err := s.authorize(requesterID, entry.PatientID); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DefaultMoodService) DeleteMood(patientID, moodID string) error {
	entry, err := s.Moods.GetByID(moodID)
	if err != nil {
		return fmt.Errorf("failed to load mood entry: %w", err)
	}
	if entry == nil {
		return &NotFoundError{Message: "Mood entry not found"}
	}
	if entry.PatientID != patientID {
		return &ForbiddenError{Message: "Cannot delete another patient's mood entry"}
	}

	deleted, err := s.Moods.Delete(moodID)
	if err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	if !deleted {
		return &NotFoundError{Message: "Mood entry not found"}
	}
	return nil
}

// authorize allows patients to read their own entries and therapists to
// read entries of patients they have at least one session with.
func (s *DefaultMoodService) authorize(requesterID, patientID string) error {
	if requesterID == patientID {
		return nil
	}

	requester, err := s.Users.GetByID(requesterID)
	if err != nil {
		return fmt.Errorf("failed to resolve requester: %w", err)
	}
	if requester == nil {
		return &NotFoundError{Message: "User not found"}
	}
	if requester.Role == models.RoleAdmin {
		return nil
	}
	if requester.Role != models.RoleTherapist {
		return &ForbiddenError{Message: "Not authorized to view these mood entries"}
	}

	sessions, err := s.Sessions.ListForUser(requesterID)
	if err != nil {
		return fmt.Errorf("failed to check therapist access: %w", err)
	}
	for i := range sessions {
		if sessions[i].PatientID == patientID {
			return nil
		}
	}
	return &ForbiddenError{Message: "Not authorized to view these mood entries"}
}
