package scheduling

import (
	"errors"
	"testing"
	"time"

	sessionRepo "mindwell/database/repository/session"
	"mindwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error)    { return f.users[id], nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)    { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) Create(*models.User) error      { return nil }
func (f *fakeUserRepo) Update(*models.User) error      { return nil }
func (f *fakeUserRepo) Delete(string) error            { return nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

type fakeTherapistRepo struct {
	profile *models.TherapistProfile
}

func (f *fakeTherapistRepo) GetByUserID(string) (*models.TherapistProfile, error) {
	return f.profile, nil
}
func (f *fakeTherapistRepo) Upsert(*models.TherapistProfile) error { return nil }
func (f *fakeTherapistRepo) UpdateAvailability(string, map[string]models.WorkingHours, []time.Time) error {
	return nil
}
func (f *fakeTherapistRepo) ListAll() ([]models.TherapistProfile, error) { return nil, nil }
func (f *fakeTherapistRepo) Delete(string) error                         { return nil }

type fakeSessionRepo struct {
	sessions  []models.Session
	insertErr error
	inserted  *models.Session
}

func (f *fakeSessionRepo) Insert(s *models.Session) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = s
	f.sessions = append(f.sessions, *s)
	return nil
}
func (f *fakeSessionRepo) GetByID(id string) (*models.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			return &f.sessions[i], nil
		}
	}
	return nil, nil
}
func (f *fakeSessionRepo) ListForUser(string) ([]models.Session, error) { return f.sessions, nil }
func (f *fakeSessionRepo) ListAll() ([]models.Session, error)           { return f.sessions, nil }
func (f *fakeSessionRepo) ListByTherapistBetween(_ string, from, to time.Time) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.Status != models.SessionCancelled && !s.DateTime.Before(from) && s.DateTime.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSessionRepo) ListUpcomingForUser(string, time.Time) ([]models.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) LastPastForUser(string, time.Time) (*models.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) CountForUser(string) (int64, error) { return 0, nil }
func (f *fakeSessionRepo) UpdateStatus(id string, status models.SessionStatus, reason string) (*models.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].Status = status
			f.sessions[i].CancellationReason = reason
			return &f.sessions[i], nil
		}
	}
	return nil, nil
}
func (f *fakeSessionRepo) UpdateNotes(id string, notes string) (*models.Session, error) {
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].Notes = notes
			return &f.sessions[i], nil
		}
	}
	return nil, nil
}

// Monday.
var testDay = time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

func weekdayProfile() *models.TherapistProfile {
	return &models.TherapistProfile{
		UserID: "t1",
		WorkingHours: map[string]models.WorkingHours{
			"monday": {Start: "09:00", End: "17:00"},
		},
	}
}

func newTestService(users *fakeUserRepo, therapists *fakeTherapistRepo, sessions *fakeSessionRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Users:      users,
		Therapists: therapists,
		Sessions:   sessions,
		Now:        func() time.Time { return testDay },
	}
}

func TestGetAvailableSlotsFullDay(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: weekdayProfile()}, &fakeSessionRepo{})

	slots, err := svc.GetAvailableSlots("t1", testDay)

	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.Equal(t, testDay.Add(9*time.Hour), slots[0].Start)
	assert.Equal(t, testDay.Add(10*time.Hour), slots[0].End)
	assert.Equal(t, testDay.Add(16*time.Hour), slots[7].Start)
}

func TestGetAvailableSlotsExcludesBooked(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{ID: "s1", TherapistID: "t1", DateTime: testDay.Add(10 * time.Hour), Duration: 60, Status: models.SessionPending},
	}}
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: weekdayProfile()}, sessions)

	slots, err := svc.GetAvailableSlots("t1", testDay)

	require.NoError(t, err)
	require.Len(t, slots, 7)
	for _, slot := range slots {
		assert.False(t, slot.Start.Equal(testDay.Add(10*time.Hour)))
	}
	// Adjacent slots survive: a session ending at 11:00 does not block 11:00.
	assert.True(t, slots[1].Start.Equal(testDay.Add(11*time.Hour)))
}

func TestGetAvailableSlotsExcludesSessionStartingBeforeWindow(t *testing.T) {
	// Booked at 08:00 for 120 minutes under an older template; the current
	// hours start at 09:00. The session still occupies 09:00-10:00, so the
	// 09:00 slot must not be offered.
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{ID: "s1", TherapistID: "t1", DateTime: testDay.Add(8 * time.Hour), Duration: 120, Status: models.SessionPending},
	}}
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: weekdayProfile()}, sessions)

	slots, err := svc.GetAvailableSlots("t1", testDay)

	require.NoError(t, err)
	require.Len(t, slots, 7)
	for _, slot := range slots {
		assert.False(t, slot.Start.Equal(testDay.Add(9*time.Hour)))
	}
	assert.True(t, slots[0].Start.Equal(testDay.Add(10*time.Hour)))
}

func TestGetAvailableSlotsIgnoresCancelledBookings(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{ID: "s1", TherapistID: "t1", DateTime: testDay.Add(10 * time.Hour), Duration: 60, Status: models.SessionCancelled},
	}}
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: weekdayProfile()}, sessions)

	slots, err := svc.GetAvailableSlots("t1", testDay)

	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestGetAvailableSlotsDayOff(t *testing.T) {
	profile := weekdayProfile()
	profile.DaysOff = []time.Time{testDay.Add(3 * time.Hour)}
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: profile}, &fakeSessionRepo{})

	slots, err := svc.GetAvailableSlots("t1", testDay)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsNonWorkingDay(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: weekdayProfile()}, &fakeSessionRepo{})

	// Tuesday has no working-hours entry.
	slots, err := svc.GetAvailableSlots("t1", testDay.AddDate(0, 0, 1))

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailableSlotsUnknownTherapist(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{}, &fakeSessionRepo{})

	_, err := svc.GetAvailableSlots("missing", testDay)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetAvailableSlotsPartialSlotDropped(t *testing.T) {
	profile := &models.TherapistProfile{
		UserID: "t1",
		WorkingHours: map[string]models.WorkingHours{
			"monday": {Start: "09:00", End: "10:30"},
		},
	}
	svc := newTestService(&fakeUserRepo{}, &fakeTherapistRepo{profile: profile}, &fakeSessionRepo{})

	slots, err := svc.GetAvailableSlots("t1", testDay)

	require.NoError(t, err)
	// 09:00-10:00 fits; 10:00-11:00 would overrun 10:30.
	require.Len(t, slots, 1)
	assert.Equal(t, testDay.Add(9*time.Hour), slots[0].Start)
}

func patientUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{
		"p1": {ID: "p1", Role: models.RolePatient},
		"t1": {ID: "t1", Role: models.RoleTherapist},
	}}
}

func TestBookSessionHappyPath(t *testing.T) {
	sessions := &fakeSessionRepo{}
	svc := newTestService(patientUsers(), &fakeTherapistRepo{profile: weekdayProfile()}, sessions)

	start := testDay.Add(9 * time.Hour)
	session, err := svc.BookSession("p1", BookSessionRequest{TherapistID: "t1", DateTime: start})

	require.NoError(t, err)
	assert.Equal(t, "p1", session.PatientID)
	assert.Equal(t, "t1", session.TherapistID)
	assert.True(t, session.DateTime.Equal(start))
	assert.Equal(t, models.DefaultSessionDuration, session.Duration)
	assert.Equal(t, models.SessionPending, session.Status)
	assert.NotEmpty(t, session.ID)
	require.NotNil(t, sessions.inserted)
}

func TestBookSessionUnavailableSlot(t *testing.T) {
	svc := newTestService(patientUsers(), &fakeTherapistRepo{profile: weekdayProfile()}, &fakeSessionRepo{})

	// 09:30 is inside the window but not a generated slot boundary.
	_, err := svc.BookSession("p1", BookSessionRequest{TherapistID: "t1", DateTime: testDay.Add(9*time.Hour + 30*time.Minute)})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Selected time slot is not available", conflict.Message)
}

func TestBookSessionDuplicateKeyMapsToConflict(t *testing.T) {
	sessions := &fakeSessionRepo{insertErr: sessionRepo.ErrDuplicateSlot}
	svc := newTestService(patientUsers(), &fakeTherapistRepo{profile: weekdayProfile()}, sessions)

	_, err := svc.BookSession("p1", BookSessionRequest{TherapistID: "t1", DateTime: testDay.Add(9 * time.Hour)})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Time slot already booked", conflict.Message)
}

func TestBookSessionRejectsNonPatient(t *testing.T) {
	svc := newTestService(patientUsers(), &fakeTherapistRepo{profile: weekdayProfile()}, &fakeSessionRepo{})

	_, err := svc.BookSession("t1", BookSessionRequest{TherapistID: "t1", DateTime: testDay.Add(9 * time.Hour)})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBookSessionRejectsPast(t *testing.T) {
	svc := newTestService(patientUsers(), &fakeTherapistRepo{profile: weekdayProfile()}, &fakeSessionRepo{})

	_, err := svc.BookSession("p1", BookSessionRequest{TherapistID: "t1", DateTime: testDay.Add(-24 * time.Hour)})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCancelSessionLifecycle(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{ID: "s1", Status: models.SessionPending},
	}}
	svc := newTestService(patientUsers(), &fakeTherapistRepo{}, sessions)

	updated, err := svc.CancelSession("s1", "feeling better")

	require.NoError(t, err)
	assert.Equal(t, models.SessionCancelled, updated.Status)
	assert.Equal(t, "feeling better", updated.CancellationReason)

	// A cancelled session cannot transition again.
	_, err = svc.CancelSession("s1", "again")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUpdateSessionStatusRejectsPendingTarget(t *testing.T) {
	sessions := &fakeSessionRepo{sessions: []models.Session{
		{ID: "s1", Status: models.SessionPending},
	}}
	svc := newTestService(patientUsers(), &fakeTherapistRepo{}, sessions)

	_, err := svc.UpdateSessionStatus("s1", models.SessionPending)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	updated, err := svc.UpdateSessionStatus("s1", models.SessionCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, updated.Status)
}

func TestUpdateSessionStatusUnknownSession(t *testing.T) {
	svc := newTestService(patientUsers(), &fakeTherapistRepo{}, &fakeSessionRepo{})

	_, err := svc.UpdateSessionStatus("missing", models.SessionCompleted)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.False(t, errors.Is(err, sessionRepo.ErrDuplicateSlot))
}
