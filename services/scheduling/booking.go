package scheduling

import (
	"errors"
	"fmt"

	sessionRepo "mindwell/database/repository/session"
	"mindwell/models"

	"github.com/google/uuid"
)

// BookSession books a slot for a patient. The requested start must match a
// currently available slot exactly; the unique (therapistId, dateTime)
// index catches the race where two patients pass the check concurrently.
func (s *DefaultSchedulingService) BookSession(patientID string, req BookSessionRequest) (*models.Session, error) {
	patient, err := s.Users.GetByID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}
	if patient == nil || patient.Role != models.RolePatient {
		return nil, &ValidationError{Message: "Only patients can book sessions"}
	}
	if req.TherapistID == "" || req.DateTime.IsZero() {
		return nil, &ValidationError{Message: "Therapist ID and date/time are required"}
	}
	if req.DateTime.Before(s.now()) {
		return nil, &ValidationError{Message: "Cannot book a session in the past"}
	}

	slots, err := s.GetAvailableSlots(req.TherapistID, req.DateTime)
	if err != nil {
		return nil, err
	}
	available := false
	for _, slot := range slots {
		if slot.Start.Equal(req.DateTime) {
			available = true
			break
		}
	}
	if !available {
		return nil, &ConflictError{Message: "Selected time slot is not available"}
	}

	duration := req.Duration
	if duration <= 0 {
		duration = models.DefaultSessionDuration
	}

	session := &models.Session{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		TherapistID: req.TherapistID,
		DateTime:    req.DateTime,
		Duration:    duration,
		Status:      models.SessionPending,
		Notes:       req.Notes,
		BookingTime: s.now(),
	}
	if err := s.Sessions.Insert(session); err != nil {
		if errors.Is(err, sessionRepo.ErrDuplicateSlot) {
			return nil, &ConflictError{Message: "Time slot already booked"}
		}
		return nil, fmt.Errorf("failed to book session: %w", err)
	}
	return session, nil
}

// CancelSession cancels a pending session, recording the reason.
func (s *DefaultSchedulingService) CancelSession(sessionID, reason string) (*models.Session, error) {
	return s.transition(sessionID, models.SessionCancelled, reason)
}

// UpdateSessionStatus moves a pending session to the given terminal state.
func (s *DefaultSchedulingService) UpdateSessionStatus(sessionID string, status models.SessionStatus) (*models.Session, error) {
	if !status.Valid() || status == models.SessionPending {
		return nil, &ValidationError{Message: "Invalid session status"}
	}
	return s.transition(sessionID, status, "")
}

// transition enforces the lifecycle: only pending sessions move, and only
// to terminal states.
func (s *DefaultSchedulingService) transition(sessionID string, status models.SessionStatus, reason string) (*models.Session, error) {
	current, err := s.Sessions.GetByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if current == nil {
		return nil, &NotFoundError{Message: "Session not found"}
	}
	if current.Status.Terminal() {
		return nil, &ValidationError{Message: fmt.Sprintf("Session is already %s", current.Status)}
	}

	updated, err := s.Sessions.UpdateStatus(sessionID, status, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to update session status: %w", err)
	}
	if updated == nil {
		return nil, &NotFoundError{Message: "Session not found"}
	}
	return updated, nil
}

// GetSessions lists the user's sessions in either role, most recent first.
func (s *DefaultSchedulingService) GetSessions(userID string) ([]models.Session, error) {
	sessions, err := s.Sessions.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// GetSession fetches one session by ID.
func (s *DefaultSchedulingService) GetSession(sessionID string) (*models.Session, error) {
	session, err := s.Sessions.GetByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, &NotFoundError{Message: "Session not found"}
	}
	return session, nil
}

// UpdateSessionNotes replaces the notes on an existing session.
func (s *DefaultSchedulingService) UpdateSessionNotes(sessionID, notes string) (*models.Session, error) {
	updated, err := s.Sessions.UpdateNotes(sessionID, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to update session notes: %w", err)
	}
	if updated == nil {
		return nil, &NotFoundError{Message: "Session not found"}
	}
	return updated, nil
}
