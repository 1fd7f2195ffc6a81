package models

import "time"

// SessionStatus is the booking lifecycle state.
type SessionStatus string

const (
	SessionPending         SessionStatus = "pending"
	SessionCompleted       SessionStatus = "completed"
	SessionPatientNoShow   SessionStatus = "patientNoShow"
	SessionTherapistNoShow SessionStatus = "therapistNoShow"
	SessionCancelled       SessionStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionPending, SessionCompleted, SessionPatientNoShow, SessionTherapistNoShow, SessionCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s SessionStatus) Terminal() bool {
	return s != SessionPending
}

// DefaultSessionDuration is the slot length in minutes.
const DefaultSessionDuration = 60

// Session is a booked appointment between a patient and a therapist.
// The (TherapistID, DateTime) pair is unique among non-deleted sessions,
// enforced by a compound index.
type Session struct {
	ID                 string        `bson:"id" json:"id"`
	PatientID          string        `bson:"patientId" json:"patientId"`
	TherapistID        string        `bson:"therapistId" json:"therapistId"`
	DateTime           time.Time     `bson:"dateTime" json:"dateTime"`
	Duration           int           `bson:"duration" json:"duration"`
	Status             SessionStatus `bson:"status" json:"status"`
	Notes              string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CancellationReason string        `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	BookingTime        time.Time     `bson:"bookingTime" json:"bookingTime"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// End returns the session's end instant, treating a zero duration as the
// default slot length.
func (s *Session) End() time.Time {
	d := s.Duration
	if d <= 0 {
		d = DefaultSessionDuration
	}
	return s.DateTime.Add(time.Duration(d) * time.Minute)
}

// Slot is a bookable interval. Start is inclusive, End exclusive.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
