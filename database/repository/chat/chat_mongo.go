package chatRepo

import (
	"context"
	"fmt"
	"time"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	coll := database.Collection("chats")
	repo := &MongoChatRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "chatType", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "isRead", Value: 1}, {Key: "receiverId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoChatRepo) Insert(msg *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func peerFilter(userA, userB string) bson.M {
	return bson.M{
		"chatType": models.ChatPatientTherapist,
		"$or": bson.A{
			bson.M{"senderId": userA, "receiverId": userB},
			bson.M{"senderId": userB, "receiverId": userA},
		},
	}
}

func (r *MongoChatRepo) FindPeerConversation(userA, userB string) ([]models.ChatMessage, error) {
	return r.find(peerFilter(userA, userB), options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
}

func (r *MongoChatRepo) FindBotConversation(senderID string, chatType models.ChatType) ([]models.ChatMessage, error) {
	filter := bson.M{"chatType": chatType, "senderId": senderID}
	return r.find(filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
}

func (r *MongoChatRepo) RecentPeerMessages(userA, userB string, limit int64) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	return r.find(peerFilter(userA, userB), opts)
}

func (r *MongoChatRepo) RecentBotMessages(senderID string, chatType models.ChatType, limit int64) ([]models.ChatMessage, error) {
	filter := bson.M{"chatType": chatType, "senderId": senderID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	return r.find(filter, opts)
}

func (r *MongoChatRepo) find(filter bson.M, opts *options.FindOptions) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return msgs, nil
}

func (r *MongoChatRepo) MarkRead(receiverID, senderID string, chatType models.ChatType) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"receiverId": receiverID, "isRead": false}
	if senderID != "" {
		filter["senderId"] = senderID
	}
	if chatType != "" {
		filter["chatType"] = chatType
	}

	result, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages as read: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *MongoChatRepo) CountUnread(receiverID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"receiverId": receiverID, "isRead": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (r *MongoChatRepo) DeleteForUser(userID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": userID},
		bson.M{"receiverId": userID},
	}}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete chat messages for user %s: %w", userID, err)
	}
	return nil
}
