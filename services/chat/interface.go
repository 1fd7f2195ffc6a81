package chat

import (
	"context"

	chatRepo "mindwell/database/repository/chat"
	userRepo "mindwell/database/repository/user"
	"mindwell/models"
	"mindwell/services/intelligence"
)

// Participant is the slim user view attached to chat histories.
type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// SendMessageResult is the outcome of a successful send. ParsedBotResponse
// is set only for bot chats.
type SendMessageResult struct {
	Chat              models.ChatMessage `json:"chat"`
	ParsedBotResponse *models.AIResponse `json:"parsedBotResponse,omitempty"`
}

// BotChatMessage is a stored bot-chat turn with the deserialized reply.
type BotChatMessage struct {
	models.ChatMessage
	ParsedBotResponse *models.AIResponse `json:"parsedBotResponse,omitempty"`
}

// PeerChatHistory is a patient-therapist conversation plus participants.
type PeerChatHistory struct {
	Chats     []models.ChatMessage `json:"chats"`
	Patient   Participant          `json:"patient"`
	Therapist Participant          `json:"therapist"`
}

// BotChatHistory is a user's bot conversation with parsed replies.
type BotChatHistory struct {
	Chats []BotChatMessage `json:"chats"`
	User  Participant      `json:"user"`
}

// ChatService routes messages between peers and the assistant and manages
// read state.
type ChatService interface {
	SendMessage(ctx context.Context, senderID, message string, chatType models.ChatType, receiverID string) (*SendMessageResult, error)
	GetPeerChats(patientID, therapistID string) (*PeerChatHistory, error)
	GetBotChats(userID string, chatType models.ChatType) (*BotChatHistory, error)
	MarkMessagesAsRead(userID string, chatType models.ChatType, partnerID string) (int64, error)
	GetUnreadCount(userID string) (int64, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Users userRepo.UserRepository
	Chats chatRepo.ChatRepository
	AI    intelligence.AIService
}
