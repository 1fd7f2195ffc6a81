package intelligence

import (
	"math"
	"strings"
	"time"

	chatRepo "mindwell/database/repository/chat"
	moodRepo "mindwell/database/repository/mood"
	sessionRepo "mindwell/database/repository/session"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"
	"mindwell/utils"

	"go.uber.org/zap"
)

// Context assembly limits.
const (
	recentMessageLimit = 10
	moodWindowDays     = 7
)

// ContextBuilder assembles the per-request AIContext from the stores.
type ContextBuilder interface {
	Build(senderID string, chatType models.ChatType, peerID string) models.AIContext
}

// DefaultContextBuilder reads profile, conversation, mood and session data
// scoped to the chatting user. Every lookup is best-effort: a failed query
// degrades that part of the context instead of failing the bot turn.
type DefaultContextBuilder struct {
	Users    userRepo.UserRepository
	Chats    chatRepo.ChatRepository
	Moods    moodRepo.MoodRepository
	Sessions sessionRepo.SessionRepository

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (b *DefaultContextBuilder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Build assembles the full context for one bot request.
func (b *DefaultContextBuilder) Build(senderID string, chatType models.ChatType, peerID string) models.AIContext {
	return models.AIContext{
		UserProfile:         b.buildUserProfile(senderID),
		ConversationHistory: b.conversationHistory(senderID, chatType, peerID),
		TherapeuticContext:  b.therapeuticContext(senderID),
		SessionMetadata:     b.sessionMetadata(),
		SystemPrompt:        SystemPromptFor(chatType),
	}
}

// buildUserProfile resolves name/role and derives the trailing-week mood
// trend and risk level.
func (b *DefaultContextBuilder) buildUserProfile(userID string) models.AIUserProfile {
	logger := utils.GetLogger()

	profile := models.AIUserProfile{UserID: userID, Name: "Unknown User"}

	user, err := b.Users.GetByID(userID)
	if err != nil {
		logger.Warn("context builder: user lookup failed", zap.String("userId", userID), zap.Error(err))
		return profile
	}
	if user == nil {
		return profile
	}
	profile.Name = user.Name
	profile.Role = user.Role

	cutoff := b.now().AddDate(0, 0, -moodWindowDays)
	moods, err := b.Moods.ListByPatientSince(userID, cutoff)
	if err != nil {
		logger.Warn("context builder: mood lookup failed", zap.String("userId", userID), zap.Error(err))
		return profile
	}
	if len(moods) == 0 {
		return profile
	}

	sum := 0
	for _, m := range moods {
		sum += m.MoodLevel
	}
	trend := math.Round(float64(sum)/float64(len(moods))*10) / 10
	profile.RecentMoodTrend = &trend

	switch {
	case trend <= 3:
		profile.CurrentRiskLevel = "high"
	case trend <= 5:
		profile.CurrentRiskLevel = "medium"
	default:
		profile.CurrentRiskLevel = "low"
	}
	return profile
}

// conversationHistory fetches the most recent messages in the chat's scope,
// newest first from the store, reversed to chronological order.
func (b *DefaultContextBuilder) conversationHistory(senderID string, chatType models.ChatType, peerID string) []models.ConversationMessage {
	logger := utils.GetLogger()

	var (
		recent []models.ChatMessage
		err    error
	)
	switch {
	case chatType == models.ChatPatientTherapist && peerID != "":
		recent, err = b.Chats.RecentPeerMessages(senderID, peerID, recentMessageLimit)
	case chatType.IsBot():
		recent, err = b.Chats.RecentBotMessages(senderID, chatType, recentMessageLimit)
	default:
		return nil
	}
	if err != nil {
		logger.Warn("context builder: history lookup failed", zap.String("userId", senderID), zap.Error(err))
		return nil
	}

	history := make([]models.ConversationMessage, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		history = append(history, models.ConversationMessage{
			SenderID:   msg.SenderID,
			SenderRole: msg.SenderRole,
			Message:    msg.Message,
			Timestamp:  msg.Timestamp,
			IsFromBot:  msg.BotResponse != "",
		})
	}
	return history
}

// therapeuticContext gathers mood entries, appointments and the treatment
// phase derived from total session count.
func (b *DefaultContextBuilder) therapeuticContext(userID string) models.TherapeuticContext {
	logger := utils.GetLogger()
	now := b.now()

	var tc models.TherapeuticContext

	cutoff := now.AddDate(0, 0, -moodWindowDays)
	if moods, err := b.Moods.ListByPatientSince(userID, cutoff); err != nil {
		logger.Warn("context builder: mood entries lookup failed", zap.String("userId", userID), zap.Error(err))
	} else {
		for _, m := range moods {
			tc.RecentMoodEntries = append(tc.RecentMoodEntries, models.MoodSnapshot{
				MoodLevel: m.MoodLevel,
				Tags:      m.Tags,
				Timestamp: m.CreatedAt,
			})
		}
	}

	if upcoming, err := b.Sessions.ListUpcomingForUser(userID, now); err != nil {
		logger.Warn("context builder: upcoming sessions lookup failed", zap.String("userId", userID), zap.Error(err))
	} else {
		for _, s := range upcoming {
			tc.UpcomingAppointments = append(tc.UpcomingAppointments, s.DateTime)
		}
	}

	if last, err := b.Sessions.LastPastForUser(userID, now); err != nil {
		logger.Warn("context builder: last session lookup failed", zap.String("userId", userID), zap.Error(err))
	} else if last != nil {
		t := last.DateTime
		tc.LastTherapySession = &t
	}

	count, err := b.Sessions.CountForUser(userID)
	if err != nil {
		logger.Warn("context builder: session count failed", zap.String("userId", userID), zap.Error(err))
		return tc
	}
	switch {
	case count == 0:
		tc.TreatmentPhase = "initial"
	case count < 5:
		tc.TreatmentPhase = "active"
	default:
		tc.TreatmentPhase = "maintenance"
	}
	return tc
}

// sessionMetadata buckets the current instant. Night hours and weekends
// count as emergency hours.
func (b *DefaultContextBuilder) sessionMetadata() models.SessionMetadata {
	now := b.now()
	hour := now.Hour()

	var timeOfDay string
	switch {
	case hour < 6 || hour >= 22:
		timeOfDay = "night"
	case hour < 12:
		timeOfDay = "morning"
	case hour < 18:
		timeOfDay = "afternoon"
	default:
		timeOfDay = "evening"
	}

	dayOfWeek := now.Weekday().String()
	isEmergency := timeOfDay == "night" ||
		strings.EqualFold(dayOfWeek, "saturday") ||
		strings.EqualFold(dayOfWeek, "sunday")

	return models.SessionMetadata{
		TimeOfDay:        timeOfDay,
		DayOfWeek:        dayOfWeek,
		IsEmergencyHours: isEmergency,
	}
}
