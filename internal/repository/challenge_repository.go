package repository

import (
	"context"
	"errors"

	"literacy-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChallengeRepository struct {
	Col *mongo.Collection
}

func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{Col: db.Collection("daily_challenges")}
}

// FindByDate returns the stored set for the date key, or (nil, nil) when no
// set exists yet.
func (r *ChallengeRepository) FindByDate(ctx context.Context, date string) (*models.DailyChallengeSet, error) {
	var set models.DailyChallengeSet
	err := r.Col.FindOne(ctx, bson.M{"_id": date}).Decode(&set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &set, nil
}

// Upsert replaces the whole tier map for the date. Writes are a plain $set
// merge: concurrent regenerations race and the last writer wins, which is
// tolerated because the tiers are interchangeable content.
func (r *ChallengeRepository) Upsert(ctx context.Context, set *models.DailyChallengeSet) error {
	update := bson.M{"$set": bson.M{
		"schema_version": set.SchemaVersion,
		"challenges":     set.Challenges,
		"created_at":     set.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": set.Date}, update, opts)
	return err
}
