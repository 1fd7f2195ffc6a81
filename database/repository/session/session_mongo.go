package sessionRepo

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

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates query indexes plus the compound unique index that
// prevents two bookings for the same therapist at the same start time.
func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "therapistId", Value: 1}, {Key: "dateTime", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "dateTime", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) Insert(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) GetByID(id string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session with id %s: %w", id, err)
	}
	return &session, nil
}

func userFilter(userID string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"patientId": userID},
		bson.M{"therapistId": userID},
	}}
}

func (r *MongoSessionRepo) ListForUser(userID string) ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: -1}})
	return r.find(userFilter(userID), opts)
}

func (r *MongoSessionRepo) ListAll() ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: -1}})
	return r.find(bson.M{}, opts)
}

func (r *MongoSessionRepo) ListByTherapistBetween(therapistID string, from, to time.Time) ([]models.Session, error) {
	filter := bson.M{
		"therapistId": therapistID,
		"dateTime":    bson.M{"$gte": from, "$lt": to},
		"status":      bson.M{"$ne": models.SessionCancelled},
	}
	return r.find(filter, options.Find().SetSort(bson.D{{Key: "dateTime", Value: 1}}))
}

func (r *MongoSessionRepo) ListUpcomingForUser(userID string, after time.Time) ([]models.Session, error) {
	filter := userFilter(userID)
	filter["dateTime"] = bson.M{"$gte": after}
	return r.find(filter, options.Find().SetSort(bson.D{{Key: "dateTime", Value: 1}}))
}

func (r *MongoSessionRepo) LastPastForUser(userID string, before time.Time) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := userFilter(userID)
	filter["dateTime"] = bson.M{"$lt": before}
	opts := options.FindOne().SetSort(bson.D{{Key: "dateTime", Value: -1}})

	var session models.Session
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch last session for user %s: %w", userID, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) CountForUser(userID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, userFilter(userID))
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions for user %s: %w", userID, err)
	}
	return count, nil
}

func (r *MongoSessionRepo) UpdateStatus(id string, status models.SessionStatus, reason string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if reason != "" {
		set["cancellationReason"] = reason
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session models.Session
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update session %s status: %w", id, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) UpdateNotes(id string, notes string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"notes": notes, "updatedAt": time.Now()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var session models.Session
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update session %s notes: %w", id, err)
	}
	return &session, nil
}

func (r *MongoSessionRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Session, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}
