package mood

import (
	"testing"
	"time"

	"mindwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) { return f.users[id], nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) Create(*models.User) error      { return nil }
func (f *fakeUserRepo) Update(*models.User) error      { return nil }
func (f *fakeUserRepo) Delete(string) error            { return nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

type fakeMoodRepo struct {
	entries map[string]*models.MoodEntry
	created *models.MoodEntry
}

func (f *fakeMoodRepo) Create(e *models.MoodEntry) error {
	f.created = e
	return nil
}
func (f *fakeMoodRepo) GetByID(id string) (*models.MoodEntry, error) { return f.entries[id], nil }
func (f *fakeMoodRepo) ListByPatient(patientID string) ([]models.MoodEntry, error) {
	var out []models.MoodEntry
	for _, e := range f.entries {
		if e.PatientID == patientID {
			out = append(out, *e)
		}
	}
	return out, nil
}
func (f *fakeMoodRepo) ListByPatientSince(patientID string, _ time.Time) ([]models.MoodEntry, error) {
	return f.ListByPatient(patientID)
}
func (f *fakeMoodRepo) Delete(id string) (bool, error) {
	if _, ok := f.entries[id]; !ok {
		return false, nil
	}
	delete(f.entries, id)
	return true, nil
}
func (f *fakeMoodRepo) DeleteForPatient(string) error { return nil }

type fakeSessionRepo struct {
	sessions []models.Session
}

func (f *fakeSessionRepo) Insert(*models.Session) error                 { return nil }
func (f *fakeSessionRepo) GetByID(string) (*models.Session, error)      { return nil, nil }
func (f *fakeSessionRepo) ListForUser(string) ([]models.Session, error) { return f.sessions, nil }
func (f *fakeSessionRepo) ListAll() ([]models.Session, error)           { return f.sessions, nil }
func (f *fakeSessionRepo) ListByTherapistBetween(string, time.Time, time.Time) ([]models.Session, error) {
	return f.sessions, nil
}
func (f *fakeSessionRepo) ListUpcomingForUser(string, time.Time) ([]models.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) LastPastForUser(string, time.Time) (*models.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) CountForUser(string) (int64, error) { return 0, nil }
func (f *fakeSessionRepo) UpdateStatus(string, models.SessionStatus, string) (*models.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) UpdateNotes(string, string) (*models.Session, error) { return nil, nil }

func newTestService(sessions []models.Session) (*DefaultMoodService, *fakeMoodRepo) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"p1": {ID: "p1", Role: models.RolePatient},
		"p2": {ID: "p2", Role: models.RolePatient},
		"t1": {ID: "t1", Role: models.RoleTherapist},
	}}
	moods := &fakeMoodRepo{entries: map[string]*models.MoodEntry{}}
	return &DefaultMoodService{
		Users:    users,
		Moods:    moods,
		Sessions: &fakeSessionRepo{sessions: sessions},
	}, moods
}

func TestAddMood(t *testing.T) {
	svc, moods := newTestService(nil)

	entry, err := svc.AddMood("p1", AddMoodRequest{MoodLevel: 7, Tags: []string{"calm"}})

	require.NoError(t, err)
	assert.Equal(t, 7, entry.MoodLevel)
	assert.Equal(t, "p1", entry.PatientID)
	assert.NotEmpty(t, entry.ID)
	require.NotNil(t, moods.created)
}

func TestAddMoodLevelBounds(t *testing.T) {
	svc, _ := newTestService(nil)

	for _, level := range []int{0, 11, -3} {
		_, err := svc.AddMood("p1", AddMoodRequest{MoodLevel: level})
		var validation *ValidationError
		require.ErrorAs(t, err, &validation, "level %d", level)
		assert.Equal(t, "Mood level should be between 1-10", validation.Message)
	}

	for _, level := range []int{1, 10} {
		_, err := svc.AddMood("p1", AddMoodRequest{MoodLevel: level})
		assert.NoError(t, err, "level %d", level)
	}
}

func TestAddMoodRejectsNonPatient(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.AddMood("t1", AddMoodRequest{MoodLevel: 5})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestGetMoodsTherapistAccess(t *testing.T) {
	// Therapist shares a session with p1 but not with p2.
	svc, moods := newTestService([]models.Session{
		{ID: "s1", PatientID: "p1", TherapistID: "t1"},
	})
	moods.entries["m1"] = &models.MoodEntry{ID: "m1", PatientID: "p1", MoodLevel: 4}
	moods.entries["m2"] = &models.MoodEntry{ID: "m2", PatientID: "p2", MoodLevel: 6}

	got, err := svc.GetMoods("t1", "p1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.GetMoods("t1", "p2")
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

func TestGetMoodsPatientOwnOnly(t *testing.T) {
	svc, moods := newTestService(nil)
	moods.entries["m1"] = &models.MoodEntry{ID: "m1", PatientID: "p2", MoodLevel: 6}

	_, err := svc.GetMoods("p1", "p2")

	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}

func TestDeleteMood(t *testing.T) {
	svc, moods := newTestService(nil)
	moods.entries["m1"] = &models.MoodEntry{ID: "m1", PatientID: "p1", MoodLevel: 4}

	require.NoError(t, svc.DeleteMood("p1", "m1"))

	err := svc.DeleteMood("p1", "m1")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteMoodForeignEntry(t *testing.T) {
	svc, moods := newTestService(nil)
	moods.entries["m1"] = &models.MoodEntry{ID: "m1", PatientID: "p2", MoodLevel: 4}

	err := svc.DeleteMood("p1", "m1")

	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)
}
