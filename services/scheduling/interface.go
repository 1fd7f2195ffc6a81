package scheduling

import (
	"time"

	sessionRepo "mindwell/database/repository/session"
	therapistRepo "mindwell/database/repository/therapist"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"
)

// BookSessionRequest is the payload for booking a new session.
type BookSessionRequest struct {
	TherapistID string    `json:"therapistId" binding:"required"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
	Duration    int       `json:"duration"`
	Notes       string    `json:"notes"`
}

// SchedulingService derives bookable slots and manages session bookings.
type SchedulingService interface {
	// GetAvailableSlots computes the free 60-minute slots for a therapist
	// on the given date.
	GetAvailableSlots(therapistID string, date time.Time) ([]models.Slot, error)
	// BookSession validates the requested slot against current availability
	// and persists the booking; conflicts surface as ConflictError.
	BookSession(patientID string, req BookSessionRequest) (*models.Session, error)
	// CancelSession moves a pending session to cancelled with a reason.
	CancelSession(sessionID, reason string) (*models.Session, error)
	// UpdateSessionStatus moves a pending session to a terminal state.
	UpdateSessionStatus(sessionID string, status models.SessionStatus) (*models.Session, error)
	// GetSessions lists sessions for a user (either role), newest first.
	GetSessions(userID string) ([]models.Session, error)
	// GetSession fetches a single session by ID.
	GetSession(sessionID string) (*models.Session, error)
	// UpdateSessionNotes replaces the session notes.
	UpdateSessionNotes(sessionID, notes string) (*models.Session, error)
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Users      userRepo.UserRepository
	Therapists therapistRepo.TherapistRepository
	Sessions   sessionRepo.SessionRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
