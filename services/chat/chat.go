package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mindwell/models"
	"mindwell/services/intelligence"
	"mindwell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SendMessage validates the sender and routes the message to peer-chat
// persistence or the assistant pipeline.
func (s *DefaultChatService) SendMessage(ctx context.Context, senderID, message string, chatType models.ChatType, receiverID string) (*SendMessageResult, error) {
	if message == "" {
		return nil, &ValidationError{Message: "Message is required"}
	}
	if !chatType.Valid() {
		return nil, &ValidationError{Message: "Invalid chat type"}
	}

	sender, err := s.Users.GetByID(senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender: %w", err)
	}
	if sender == nil {
		return nil, &NotFoundError{Message: "Sender not found"}
	}

	if chatType == models.ChatPatientTherapist {
		return s.sendPeerMessage(sender, message, receiverID)
	}
	return s.sendBotMessage(ctx, sender, message, chatType)
}

// sendPeerMessage persists a patient-therapist message after checking the
// role pairing. The check is order-independent: either side may initiate.
func (s *DefaultChatService) sendPeerMessage(sender *models.User, message, receiverID string) (*SendMessageResult, error) {
	if receiverID == "" {
		return nil, &ValidationError{Message: "Receiver ID required for patient-therapist chat"}
	}

	receiver, err := s.Users.GetByID(receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}
	if receiver == nil {
		return nil, &NotFoundError{Message: "Receiver not found"}
	}

	pair := map[models.Role]bool{sender.Role: true, receiver.Role: true}
	if !pair[models.RolePatient] || !pair[models.RoleTherapist] {
		return nil, &ValidationError{Message: "Invalid roles for patient-therapist chat"}
	}

	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		ChatType:   models.ChatPatientTherapist,
		SenderID:   sender.ID,
		ReceiverID: receiverID,
		SenderRole: sender.Role,
		Message:    message,
		Timestamp:  time.Now(),
	}
	if err := s.Chats.Insert(&msg); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}
	return &SendMessageResult{Chat: msg}, nil
}

// sendBotMessage runs the assistant pipeline: context assembly, model call,
// parse, persist. The pipeline is degradation-tolerant, so a bot turn only
// fails on a role mismatch or a store write error.
func (s *DefaultChatService) sendBotMessage(ctx context.Context, sender *models.User, message string, chatType models.ChatType) (*SendMessageResult, error) {
	expectedRole := models.RolePatient
	if chatType == models.ChatTherapistBot {
		expectedRole = models.RoleTherapist
	}
	if sender.Role != expectedRole {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid sender role for %s chat", chatType)}
	}

	aiCtx := s.AI.BuildContext(sender.ID, chatType, "")
	response := s.AI.Respond(ctx, aiCtx, message)

	serialized, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize bot response: %w", err)
	}

	msg := models.ChatMessage{
		ID:          uuid.NewString(),
		ChatType:    chatType,
		SenderID:    sender.ID,
		SenderRole:  sender.Role,
		Message:     message,
		BotResponse: string(serialized),
		Timestamp:   time.Now(),
	}
	if err := s.Chats.Insert(&msg); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	return &SendMessageResult{Chat: msg, ParsedBotResponse: &response}, nil
}

// GetPeerChats returns the full patient-therapist conversation in
// chronological order, with both participants resolved.
func (s *DefaultChatService) GetPeerChats(patientID, therapistID string) (*PeerChatHistory, error) {
	patient, err := s.Users.GetByID(patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve patient: %w", err)
	}
	therapist, err := s.Users.GetByID(therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve therapist: %w", err)
	}
	if patient == nil || patient.Role != models.RolePatient || therapist == nil || therapist.Role != models.RoleTherapist {
		return nil, &NotFoundError{Message: "Patient or therapist not found"}
	}

	chats, err := s.Chats.FindPeerConversation(patientID, therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	return &PeerChatHistory{
		Chats:     chats,
		Patient:   Participant{ID: patient.ID, Name: patient.Name, PhotoURL: patient.PhotoURL},
		Therapist: Participant{ID: therapist.ID, Name: therapist.Name, PhotoURL: therapist.PhotoURL},
	}, nil
}

// GetBotChats returns a user's bot conversation in chronological order,
// each turn carrying the deserialized assistant reply.
func (s *DefaultChatService) GetBotChats(userID string, chatType models.ChatType) (*BotChatHistory, error) {
	if !chatType.IsBot() {
		return nil, &ValidationError{Message: "Invalid chat type"}
	}

	expectedRole := models.RolePatient
	if chatType == models.ChatTherapistBot {
		expectedRole = models.RoleTherapist
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil || user.Role != expectedRole {
		return nil, &NotFoundError{Message: fmt.Sprintf("%s not found", expectedRole)}
	}

	chats, err := s.Chats.FindBotConversation(userID, chatType)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	logger := utils.GetLogger()
	out := make([]BotChatMessage, 0, len(chats))
	for _, c := range chats {
		entry := BotChatMessage{ChatMessage: c}
		if c.BotResponse != "" {
			var parsed models.AIResponse
			if err := json.Unmarshal([]byte(c.BotResponse), &parsed); err != nil {
				// Should not happen: stored responses are normalized at
				// write time. Re-run the parser rather than drop the turn.
				logger.Warn("stored bot response is not valid JSON", zap.String("chatId", c.ID), zap.Error(err))
				parsed = intelligence.ParseResponse(c.BotResponse)
			}
			entry.ParsedBotResponse = &parsed
		}
		out = append(out, entry)
	}

	return &BotChatHistory{
		Chats: out,
		User:  Participant{ID: user.ID, Name: user.Name, PhotoURL: user.PhotoURL},
	}, nil
}

// MarkMessagesAsRead bulk-sets isRead on messages addressed to the user.
// For peer chats a partner ID narrows the update to that conversation.
// Calling it again with no new messages updates zero rows.
func (s *DefaultChatService) MarkMessagesAsRead(userID string, chatType models.ChatType, partnerID string) (int64, error) {
	if !chatType.Valid() {
		return 0, &ValidationError{Message: "Invalid chat type"}
	}

	senderID := ""
	filterType := models.ChatType("")
	if chatType == models.ChatPatientTherapist && partnerID != "" {
		senderID = partnerID
		filterType = models.ChatPatientTherapist
	}

	count, err := s.Chats.MarkRead(userID, senderID, filterType)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages as read: %w", err)
	}
	return count, nil
}

// GetUnreadCount counts unread messages addressed to the user.
func (s *DefaultChatService) GetUnreadCount(userID string) (int64, error) {
	count, err := s.Chats.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
