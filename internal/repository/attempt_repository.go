package repository

import (
	"context"

	"literacy-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) CreateMany(ctx context.Context, attempts []models.Attempt) error {
	if len(attempts) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(attempts))
	for i := range attempts {
		if attempts[i].ID == "" {
			attempts[i].ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, attempts[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *AttemptRepository) FindByUser(ctx context.Context, userID string) ([]models.Attempt, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
