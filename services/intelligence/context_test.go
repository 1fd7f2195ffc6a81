package intelligence

import (
	"errors"
	"testing"
	"time"

	"mindwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) Create(*models.User) error      { return nil }
func (f *fakeUserRepo) Update(*models.User) error      { return nil }
func (f *fakeUserRepo) Delete(string) error            { return nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

type fakeMoodRepo struct {
	entries []models.MoodEntry
	err     error
}

func (f *fakeMoodRepo) Create(*models.MoodEntry) error             { return nil }
func (f *fakeMoodRepo) GetByID(string) (*models.MoodEntry, error)  { return nil, nil }
func (f *fakeMoodRepo) ListByPatient(string) ([]models.MoodEntry, error) {
	return f.entries, f.err
}
func (f *fakeMoodRepo) ListByPatientSince(_ string, cutoff time.Time) ([]models.MoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.MoodEntry
	for _, e := range f.entries {
		if !e.CreatedAt.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeMoodRepo) Delete(string) (bool, error)   { return false, nil }
func (f *fakeMoodRepo) DeleteForPatient(string) error { return nil }

type fakeSessionRepo struct {
	sessions []models.Session
	err      error
}

func (f *fakeSessionRepo) Insert(*models.Session) error            { return nil }
func (f *fakeSessionRepo) GetByID(string) (*models.Session, error) { return nil, nil }
func (f *fakeSessionRepo) ListForUser(string) ([]models.Session, error) {
	return f.sessions, f.err
}
func (f *fakeSessionRepo) ListAll() ([]models.Session, error) { return f.sessions, f.err }
func (f *fakeSessionRepo) ListByTherapistBetween(string, time.Time, time.Time) ([]models.Session, error) {
	return f.sessions, f.err
}
func (f *fakeSessionRepo) ListUpcomingForUser(_ string, after time.Time) ([]models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Session
	for _, s := range f.sessions {
		if !s.DateTime.Before(after) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSessionRepo) LastPastForUser(_ string, before time.Time) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	var last *models.Session
	for i := range f.sessions {
		s := f.sessions[i]
		if s.DateTime.Before(before) && (last == nil || s.DateTime.After(last.DateTime)) {
			last = &s
		}
	}
	return last, nil
}
func (f *fakeSessionRepo) CountForUser(string) (int64, error) {
	return int64(len(f.sessions)), f.err
}
func (f *fakeSessionRepo) UpdateStatus(string, models.SessionStatus, string) (*models.Session, error) {
	return nil, nil
}
func (f *fakeSessionRepo) UpdateNotes(string, string) (*models.Session, error) { return nil, nil }

type fakeChatRepo struct {
	recent []models.ChatMessage
	err    error
}

func (f *fakeChatRepo) Insert(*models.ChatMessage) error { return nil }
func (f *fakeChatRepo) FindPeerConversation(string, string) ([]models.ChatMessage, error) {
	return f.recent, f.err
}
func (f *fakeChatRepo) FindBotConversation(string, models.ChatType) ([]models.ChatMessage, error) {
	return f.recent, f.err
}
func (f *fakeChatRepo) RecentPeerMessages(string, string, int64) ([]models.ChatMessage, error) {
	return f.recent, f.err
}
func (f *fakeChatRepo) RecentBotMessages(string, models.ChatType, int64) ([]models.ChatMessage, error) {
	return f.recent, f.err
}
func (f *fakeChatRepo) MarkRead(string, string, models.ChatType) (int64, error) { return 0, nil }
func (f *fakeChatRepo) CountUnread(string) (int64, error)                       { return 0, nil }
func (f *fakeChatRepo) DeleteForUser(string) error                              { return nil }

// A Tuesday at 14:30 local time.
var testNow = time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

func newTestBuilder(users *fakeUserRepo, chats *fakeChatRepo, moods *fakeMoodRepo, sessions *fakeSessionRepo) *DefaultContextBuilder {
	return &DefaultContextBuilder{
		Users:    users,
		Chats:    chats,
		Moods:    moods,
		Sessions: sessions,
		Now:      func() time.Time { return testNow },
	}
}

func TestBuildUserProfileMoodTrendAndRisk(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"p1": {ID: "p1", Name: "Asha", Role: models.RolePatient},
	}}
	moods := &fakeMoodRepo{entries: []models.MoodEntry{
		{MoodLevel: 2, CreatedAt: testNow.AddDate(0, 0, -1)},
		{MoodLevel: 3, CreatedAt: testNow.AddDate(0, 0, -2)},
		{MoodLevel: 2, CreatedAt: testNow.AddDate(0, 0, -3)},
		// Outside the trailing week, must be excluded.
		{MoodLevel: 10, CreatedAt: testNow.AddDate(0, 0, -9)},
	}}
	b := newTestBuilder(users, &fakeChatRepo{}, moods, &fakeSessionRepo{})

	profile := b.buildUserProfile("p1")

	assert.Equal(t, "Asha", profile.Name)
	require.NotNil(t, profile.RecentMoodTrend)
	assert.InDelta(t, 2.3, *profile.RecentMoodTrend, 0.001)
	assert.Equal(t, "high", profile.CurrentRiskLevel)
}

func TestBuildUserProfileRiskBoundaries(t *testing.T) {
	cases := []struct {
		levels []int
		risk   string
	}{
		{[]int{3, 3}, "high"},
		{[]int{5, 5}, "medium"},
		{[]int{6, 6}, "low"},
	}
	for _, tc := range cases {
		users := &fakeUserRepo{users: map[string]*models.User{
			"p1": {ID: "p1", Name: "Asha", Role: models.RolePatient},
		}}
		moods := &fakeMoodRepo{}
		for _, l := range tc.levels {
			moods.entries = append(moods.entries, models.MoodEntry{MoodLevel: l, CreatedAt: testNow.AddDate(0, 0, -1)})
		}
		b := newTestBuilder(users, &fakeChatRepo{}, moods, &fakeSessionRepo{})

		profile := b.buildUserProfile("p1")
		assert.Equal(t, tc.risk, profile.CurrentRiskLevel, "levels %v", tc.levels)
	}
}

func TestBuildUserProfileNoMoodsLeavesTrendUnset(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"p1": {ID: "p1", Name: "Asha", Role: models.RolePatient},
	}}
	b := newTestBuilder(users, &fakeChatRepo{}, &fakeMoodRepo{}, &fakeSessionRepo{})

	profile := b.buildUserProfile("p1")

	assert.Nil(t, profile.RecentMoodTrend)
	assert.Empty(t, profile.CurrentRiskLevel)
}

func TestBuildDegradesWhenUserLookupFails(t *testing.T) {
	users := &fakeUserRepo{err: errors.New("db down")}
	b := newTestBuilder(users, &fakeChatRepo{err: errors.New("db down")}, &fakeMoodRepo{err: errors.New("db down")}, &fakeSessionRepo{err: errors.New("db down")})

	aiCtx := b.Build("p1", models.ChatPatientBot, "")

	assert.Equal(t, "Unknown User", aiCtx.UserProfile.Name)
	assert.Empty(t, aiCtx.ConversationHistory)
	assert.NotEmpty(t, aiCtx.SystemPrompt)
}

func TestConversationHistoryIsChronological(t *testing.T) {
	// Store returns newest first; the context must read oldest first.
	chats := &fakeChatRepo{recent: []models.ChatMessage{
		{Message: "third", Timestamp: testNow},
		{Message: "second", Timestamp: testNow.Add(-time.Minute)},
		{Message: "first", Timestamp: testNow.Add(-2 * time.Minute)},
	}}
	b := newTestBuilder(&fakeUserRepo{}, chats, &fakeMoodRepo{}, &fakeSessionRepo{})

	history := b.conversationHistory("p1", models.ChatPatientBot, "")

	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Message)
	assert.Equal(t, "third", history[2].Message)
}

func TestTherapeuticContextTreatmentPhase(t *testing.T) {
	cases := []struct {
		sessions int
		phase    string
	}{
		{0, "initial"},
		{4, "active"},
		{5, "maintenance"},
	}
	for _, tc := range cases {
		repo := &fakeSessionRepo{}
		for i := 0; i < tc.sessions; i++ {
			repo.sessions = append(repo.sessions, models.Session{DateTime: testNow.AddDate(0, 0, -i-1)})
		}
		b := newTestBuilder(&fakeUserRepo{}, &fakeChatRepo{}, &fakeMoodRepo{}, repo)

		tc2 := b.therapeuticContext("p1")
		assert.Equal(t, tc.phase, tc2.TreatmentPhase, "%d sessions", tc.sessions)
	}
}

func TestTherapeuticContextLastAndUpcoming(t *testing.T) {
	past := testNow.AddDate(0, 0, -3)
	future := testNow.AddDate(0, 0, 2)
	repo := &fakeSessionRepo{sessions: []models.Session{
		{DateTime: past},
		{DateTime: future},
	}}
	b := newTestBuilder(&fakeUserRepo{}, &fakeChatRepo{}, &fakeMoodRepo{}, repo)

	tc := b.therapeuticContext("p1")

	require.NotNil(t, tc.LastTherapySession)
	assert.True(t, tc.LastTherapySession.Equal(past))
	require.Len(t, tc.UpcomingAppointments, 1)
	assert.True(t, tc.UpcomingAppointments[0].Equal(future))
}

func TestSessionMetadataTimeBuckets(t *testing.T) {
	cases := []struct {
		hour      int
		timeOfDay string
	}{
		{5, "night"},
		{6, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{21, "evening"},
		{22, "night"},
	}
	for _, tc := range cases {
		b := &DefaultContextBuilder{Now: func() time.Time {
			return time.Date(2025, time.June, 10, tc.hour, 0, 0, 0, time.UTC)
		}}
		meta := b.sessionMetadata()
		assert.Equal(t, tc.timeOfDay, meta.TimeOfDay, "hour %d", tc.hour)
	}
}

func TestSessionMetadataEmergencyHours(t *testing.T) {
	// Tuesday afternoon: not emergency.
	b := &DefaultContextBuilder{Now: func() time.Time { return testNow }}
	assert.False(t, b.sessionMetadata().IsEmergencyHours)

	// Tuesday night: emergency.
	b = &DefaultContextBuilder{Now: func() time.Time {
		return time.Date(2025, time.June, 10, 23, 0, 0, 0, time.UTC)
	}}
	assert.True(t, b.sessionMetadata().IsEmergencyHours)

	// Saturday midday: emergency.
	b = &DefaultContextBuilder{Now: func() time.Time {
		return time.Date(2025, time.June, 14, 12, 0, 0, 0, time.UTC)
	}}
	meta := b.sessionMetadata()
	assert.Equal(t, "Saturday", meta.DayOfWeek)
	assert.True(t, meta.IsEmergencyHours)
}
