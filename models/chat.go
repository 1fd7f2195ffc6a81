package models

import "time"

// ChatType distinguishes the three conversation kinds the platform supports.
type ChatType string

const (
	ChatPatientTherapist ChatType = "patient-therapist"
	ChatPatientBot       ChatType = "patient-bot"
	ChatTherapistBot     ChatType = "therapist-bot"
)

// Valid reports whether the chat type is one the platform accepts.
func (c ChatType) Valid() bool {
	return c == ChatPatientTherapist || c == ChatPatientBot || c == ChatTherapistBot
}

// IsBot reports whether the conversation involves the assistant.
func (c ChatType) IsBot() bool {
	return c == ChatPatientBot || c == ChatTherapistBot
}

// ChatMessage is a single stored turn in any conversation. For bot chats
// BotResponse holds the serialized AIResponse and ReceiverID is empty.
type ChatMessage struct {
	ID          string    `bson:"id" json:"id"`
	ChatType    ChatType  `bson:"chatType" json:"chatType"`
	SenderID    string    `bson:"senderId" json:"senderId"`
	ReceiverID  string    `bson:"receiverId,omitempty" json:"receiverId,omitempty"`
	SenderRole  Role      `bson:"senderRole" json:"senderRole"`
	Message     string    `bson:"message" json:"message"`
	BotResponse string    `bson:"botResponse,omitempty" json:"botResponse,omitempty"`
	IsRead      bool      `bson:"isRead" json:"isRead"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
