package intelligence

import (
	"fmt"
	"strings"
	"time"

	"mindwell/models"
)

// Prompt assembly limits.
const (
	historyPromptLimit = 10
	moodPromptLimit    = 5
)

const patientBotSystemPrompt = `You are a supportive mental-health companion embedded in a therapy platform. You talk with patients between their therapy sessions.

Guidelines:
- Be warm, non-judgmental and concise. Never diagnose, prescribe, or replace the patient's therapist.
- Use the provided mood trend, risk level and conversation history to tailor your tone.
- If the message suggests crisis, self-harm or harm to others, set "escalationRequired" to true and gently encourage the patient to contact their therapist or emergency services.

Respond ONLY with a JSON object of this exact shape:
{"response": string, "responseType": "supportive"|"informational"|"crisis"|"redirect", "emotionalTone": string, "confidenceScore": number between 0 and 1, "escalationRequired": boolean, "flagsForTherapist": [string], "suggestedFollowUp": string}`

const therapistBotSystemPrompt = `You are a clinical assistant for licensed therapists on a therapy platform. You help therapists reflect on caseload questions, session planning and documentation.

Guidelines:
- Be precise and professional; cite established therapeutic frameworks (CBT, DBT, ACT) where relevant.
- You support the therapist's judgment, you never override it, and you do not give medical or legal advice.
- Flag anything in the question that suggests an at-risk patient by setting "escalationRequired" to true.

Respond ONLY with a JSON object of this exact shape:
{"response": string, "responseType": "clinical"|"informational"|"administrative", "emotionalTone": string, "confidenceScore": number between 0 and 1, "escalationRequired": boolean, "suggestedFollowUp": string}`

// SystemPromptFor selects the system instruction for a bot chat type.
func SystemPromptFor(chatType models.ChatType) string {
	if chatType == models.ChatTherapistBot {
		return therapistBotSystemPrompt
	}
	return patientBotSystemPrompt
}

// BuildContextualPrompt renders the assembled context plus the literal user
// message into the user-turn prompt.
func BuildContextualPrompt(aiCtx models.AIContext, userMessage string) string {
	var sb strings.Builder

	profile := aiCtx.UserProfile
	sb.WriteString("USER CONTEXT:\n")
	fmt.Fprintf(&sb, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&sb, "- Role: %s\n", orUnknown(string(profile.Role)))
	if profile.RecentMoodTrend != nil {
		fmt.Fprintf(&sb, "- Recent Mood Trend: %.1f/10\n", *profile.RecentMoodTrend)
	} else {
		sb.WriteString("- Recent Mood Trend: Unknown\n")
	}
	fmt.Fprintf(&sb, "- Risk Level: %s\n", orUnknown(profile.CurrentRiskLevel))

	sb.WriteString("\nRECENT CONVERSATION HISTORY:\n")
	history := aiCtx.ConversationHistory
	if len(history) > historyPromptLimit {
		history = history[len(history)-historyPromptLimit:]
	}
	if len(history) == 0 {
		sb.WriteString("No previous conversation\n")
	}
	for _, msg := range history {
		fmt.Fprintf(&sb, "[%s] %s: %s\n", msg.Timestamp.Format(time.RFC3339), msg.SenderRole, msg.Message)
	}

	sb.WriteString("\nMOOD CONTEXT (last 7 days):\n")
	moods := aiCtx.TherapeuticContext.RecentMoodEntries
	if len(moods) > moodPromptLimit {
		moods = moods[len(moods)-moodPromptLimit:]
	}
	if len(moods) == 0 {
		sb.WriteString("No recent mood data available\n")
	}
	for _, mood := range moods {
		fmt.Fprintf(&sb, "Mood: %d/10 (%s) - Tags: %s\n", mood.MoodLevel, mood.Timestamp.Format(time.RFC3339), strings.Join(mood.Tags, ", "))
	}

	tc := aiCtx.TherapeuticContext
	sb.WriteString("\nTHERAPEUTIC CONTEXT:\n")
	fmt.Fprintf(&sb, "- Treatment Phase: %s\n", orUnknown(tc.TreatmentPhase))
	if tc.LastTherapySession != nil {
		fmt.Fprintf(&sb, "- Last Therapy Session: %s\n", tc.LastTherapySession.Format(time.RFC3339))
	} else {
		sb.WriteString("- Last Therapy Session: Unknown\n")
	}
	fmt.Fprintf(&sb, "- Upcoming Appointments: %d scheduled\n", len(tc.UpcomingAppointments))

	meta := aiCtx.SessionMetadata
	sb.WriteString("\nSESSION METADATA:\n")
	fmt.Fprintf(&sb, "- Time of Day: %s\n", meta.TimeOfDay)
	fmt.Fprintf(&sb, "- Day of Week: %s\n", meta.DayOfWeek)
	fmt.Fprintf(&sb, "- Emergency Hours: %s\n", yesNo(meta.IsEmergencyHours))

	sb.WriteString("\nCURRENT MESSAGE FROM USER:\n")
	fmt.Fprintf(&sb, "%q\n", userMessage)

	sb.WriteString("\nAnalyze this context and reply following the guidelines in your system prompt.")
	return sb.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
