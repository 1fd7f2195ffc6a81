package therapistRepo

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

// MongoTherapistRepo implements TherapistRepository using MongoDB.
type MongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo creates a new instance of TherapistRepository using MongoDB.
func NewMongoTherapistRepo() TherapistRepository {
	coll := database.Collection("therapists")
	repo := &MongoTherapistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTherapistRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTherapistRepo) GetByUserID(userID string) (*models.TherapistProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.TherapistProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch therapist profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *MongoTherapistRepo) Upsert(profile *models.TherapistProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"userId": profile.UserID}, profile, opts); err != nil {
		return fmt.Errorf("failed to upsert therapist profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

func (r *MongoTherapistRepo) UpdateAvailability(userID string, workingHours map[string]models.WorkingHours, daysOff []time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"workingHours": workingHours,
		"daysOff":      daysOff,
		"updatedAt":    time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for therapist %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapist profile for user %s not found", userID)
	}
	return nil
}

func (r *MongoTherapistRepo) ListAll() ([]models.TherapistProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve therapist profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.TherapistProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode therapist profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoTherapistRepo) Delete(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("failed to delete therapist profile for user %s: %w", userID, err)
	}
	return nil
}
