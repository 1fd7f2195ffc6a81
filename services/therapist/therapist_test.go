package therapist

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

type fakeTherapistRepo struct {
	profiles map[string]*models.TherapistProfile
	stored   struct {
		workingHours map[string]models.WorkingHours
		daysOff      []time.Time
	}
}

func (f *fakeTherapistRepo) GetByUserID(userID string) (*models.TherapistProfile, error) {
	return f.profiles[userID], nil
}
func (f *fakeTherapistRepo) Upsert(p *models.TherapistProfile) error {
	f.profiles[p.UserID] = p
	return nil
}
func (f *fakeTherapistRepo) UpdateAvailability(_ string, wh map[string]models.WorkingHours, daysOff []time.Time) error {
	f.stored.workingHours = wh
	f.stored.daysOff = daysOff
	return nil
}
func (f *fakeTherapistRepo) ListAll() ([]models.TherapistProfile, error) {
	var out []models.TherapistProfile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}
func (f *fakeTherapistRepo) Delete(string) error { return nil }

func newTestService() (*DefaultTherapistService, *fakeTherapistRepo) {
	therapists := &fakeTherapistRepo{profiles: map[string]*models.TherapistProfile{
		"t1": {UserID: "t1", Bio: "bio"},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		"t1": {ID: "t1", Name: "Dr. Lee", Role: models.RoleTherapist, PhotoURL: "http://x/p.jpg"},
	}}
	return &DefaultTherapistService{Users: users, Therapists: therapists}, therapists
}

func TestSetupAvailability(t *testing.T) {
	svc, therapists := newTestService()

	req := AvailabilityRequest{
		WorkingHours: map[string]models.WorkingHours{
			"monday":  {Start: "09:00", End: "17:00"},
			"tuesday": {Start: "10:00", End: "14:00"},
		},
		DaysOff: []time.Time{time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, svc.SetupAvailability("t1", req))
	assert.Len(t, therapists.stored.workingHours, 2)
	assert.Len(t, therapists.stored.daysOff, 1)
}

func TestSetupAvailabilityValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []map[string]models.WorkingHours{
		{"funday": {Start: "09:00", End: "17:00"}},
		{"monday": {Start: "9am", End: "17:00"}},
		{"monday": {Start: "09:00", End: "25:00"}},
		{"monday": {Start: "17:00", End: "09:00"}},
		{"monday": {Start: "09:00", End: "09:00"}},
	}
	for _, wh := range cases {
		err := svc.SetupAvailability("t1", AvailabilityRequest{WorkingHours: wh})
		var validation *ValidationError
		require.ErrorAs(t, err, &validation, "%v", wh)
	}
}

func TestSetupAvailabilityUnknownTherapist(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SetupAvailability("missing", AvailabilityRequest{})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListTherapistsJoinsAccountFields(t *testing.T) {
	svc, _ := newTestService()

	listings, err := svc.ListTherapists()

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Dr. Lee", listings[0].Name)
	assert.Equal(t, "http://x/p.jpg", listings[0].PhotoURL)
	assert.Equal(t, "bio", listings[0].Bio)
}
