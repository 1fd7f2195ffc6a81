package moodRepo

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

// MongoMoodRepo implements MoodRepository using MongoDB.
type MongoMoodRepo struct {
	coll *mongo.Collection
}

// NewMongoMoodRepo creates a new instance of MoodRepository using MongoDB.
func NewMongoMoodRepo() MoodRepository {
	coll := database.Collection("moods")
	repo := &MongoMoodRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMoodRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoMoodRepo) Create(entry *models.MoodEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}
	return nil
}

func (r *MongoMoodRepo) GetByID(id string) (*models.MoodEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var entry models.MoodEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mood entry with id %s: %w", id, err)
	}
	return &entry, nil
}

func (r *MongoMoodRepo) ListByPatient(patientID string) ([]models.MoodEntry, error) {
	return r.find(bson.M{"patientId": patientID})
}

func (r *MongoMoodRepo) ListByPatientSince(patientID string, cutoff time.Time) ([]models.MoodEntry, error) {
	return r.find(bson.M{"patientId": patientID, "createdAt": bson.M{"$gte": cutoff}})
}

func (r *MongoMoodRepo) find(filter bson.M) ([]models.MoodEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mood entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode mood entries: %w", err)
	}
	return entries, nil
}

func (r *MongoMoodRepo) Delete(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete mood entry with id %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoMoodRepo) DeleteForPatient(patientID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"patientId": patientID}); err != nil {
		return fmt.Errorf("failed to delete mood entries for patient %s: %w", patientID, err)
	}
	return nil
}
