package chatRepo

import "mindwell/models"

// ChatRepository defines methods for chat message data access.
type ChatRepository interface {
	// Insert stores a new chat message.
	Insert(msg *models.ChatMessage) error
	// FindPeerConversation returns all patient-therapist messages exchanged
	// between the two users, in chronological order.
	FindPeerConversation(userA, userB string) ([]models.ChatMessage, error)
	// FindBotConversation returns all messages of the given bot chat type
	// sent by the user, in chronological order.
	FindBotConversation(senderID string, chatType models.ChatType) ([]models.ChatMessage, error)
	// RecentPeerMessages returns up to limit patient-therapist messages
	// between the two users, newest first.
	RecentPeerMessages(userA, userB string, limit int64) ([]models.ChatMessage, error)
	// RecentBotMessages returns up to limit bot-chat messages sent by the
	// user, newest first.
	RecentBotMessages(senderID string, chatType models.ChatType, limit int64) ([]models.ChatMessage, error)
	// MarkRead sets isRead on unread messages addressed to receiverID and
	// returns how many were updated. senderID and chatType narrow the filter
	// when non-empty.
	MarkRead(receiverID, senderID string, chatType models.ChatType) (int64, error)
	// CountUnread counts unread messages addressed to the user.
	CountUnread(receiverID string) (int64, error)
	// DeleteForUser removes all messages sent or received by the user.
	DeleteForUser(userID string) error
}
