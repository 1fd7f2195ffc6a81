package models

import "time"

// AIUserProfile summarises the chatting user for the assistant.
// RecentMoodTrend is nil when the user logged no moods in the trailing
// week; CurrentRiskLevel is set only when the trend is defined.
type AIUserProfile struct {
	UserID           string   `json:"userId"`
	Role             Role     `json:"role,omitempty"`
	Name             string   `json:"name"`
	RecentMoodTrend  *float64 `json:"recentMoodTrend,omitempty"`
	CurrentRiskLevel string   `json:"currentRiskLevel,omitempty"`
}

// ConversationMessage is one prior turn included in the assistant context.
type ConversationMessage struct {
	SenderID   string    `json:"senderId"`
	SenderRole Role      `json:"senderRole"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	IsFromBot  bool      `json:"isFromBot"`
}

// MoodSnapshot is a mood entry reduced to what the assistant needs.
type MoodSnapshot struct {
	MoodLevel int       `json:"moodLevel"`
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

// TherapeuticContext carries treatment signals for the assistant.
type TherapeuticContext struct {
	RecentMoodEntries    []MoodSnapshot `json:"recentMoodEntries,omitempty"`
	UpcomingAppointments []time.Time    `json:"upcomingAppointments,omitempty"`
	LastTherapySession   *time.Time     `json:"lastTherapySession,omitempty"`
	TreatmentPhase       string         `json:"treatmentPhase,omitempty"`
}

// SessionMetadata describes the moment the message arrived.
type SessionMetadata struct {
	TimeOfDay            string `json:"timeOfDay"`
	DayOfWeek            string `json:"dayOfWeek"`
	IsEmergencyHours     bool   `json:"isEmergencyHours"`
	ConversationDuration int    `json:"conversationDuration"`
	MessageCount         int    `json:"messageCount"`
}

// AIContext is the full prompt context assembled per bot request.
// It is ephemeral; nothing here is persisted.
type AIContext struct {
	UserProfile         AIUserProfile         `json:"userProfile"`
	ConversationHistory []ConversationMessage `json:"conversationHistory"`
	TherapeuticContext  TherapeuticContext    `json:"therapeuticContext"`
	SessionMetadata     SessionMetadata       `json:"sessionMetadata"`
	SystemPrompt        string                `json:"-"`
}

// AIResponse is the structured assistant reply. Response is always a
// non-empty string by the time it reaches callers; the parser pipeline
// guarantees that even for malformed model output.
type AIResponse struct {
	Response           string   `json:"response"`
	ResponseType       string   `json:"responseType,omitempty"`
	EmotionalTone      string   `json:"emotionalTone,omitempty"`
	ConfidenceScore    float64  `json:"confidenceScore"`
	EscalationRequired bool     `json:"escalationRequired"`
	FlagsForTherapist  []string `json:"flagsForTherapist,omitempty"`
	SuggestedFollowUp  string   `json:"suggestedFollowUp,omitempty"`
}
