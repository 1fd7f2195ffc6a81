package sessionRepo

import (
	"errors"
	"time"

	"mindwell/models"
)

// ErrDuplicateSlot is returned by Insert when the unique
// (therapistId, dateTime) index rejects a booking. It is the storage-level
// safety net against concurrent double-booking.
var ErrDuplicateSlot = errors.New("session slot already booked")

// SessionRepository defines methods for session (booking) data access.
type SessionRepository interface {
	// Insert stores a new booking; returns ErrDuplicateSlot when another
	// booking already holds the same (therapistId, dateTime).
	Insert(session *models.Session) error
	// GetByID retrieves a session by its ID; nil when absent.
	GetByID(id string) (*models.Session, error)
	// ListForUser returns sessions where the user is patient or therapist,
	// most recent dateTime first.
	ListForUser(userID string) ([]models.Session, error)
	// ListAll returns every session, most recent dateTime first.
	ListAll() ([]models.Session, error)
	// ListByTherapistBetween returns the therapist's non-cancelled sessions
	// with dateTime in [from, to).
	ListByTherapistBetween(therapistID string, from, to time.Time) ([]models.Session, error)
	// ListUpcomingForUser returns sessions for the user (either role) with
	// dateTime at or after the given instant.
	ListUpcomingForUser(userID string, after time.Time) ([]models.Session, error)
	// LastPastForUser returns the user's most recent session before the
	// given instant; nil when there is none.
	LastPastForUser(userID string, before time.Time) (*models.Session, error)
	// CountForUser counts all sessions where the user is patient or therapist.
	CountForUser(userID string) (int64, error)
	// UpdateStatus sets the session status (and cancellation reason when
	// provided) and returns the updated record; nil when absent.
	UpdateStatus(id string, status models.SessionStatus, reason string) (*models.Session, error)
	// UpdateNotes replaces the session notes.
	UpdateNotes(id string, notes string) (*models.Session, error)
}
