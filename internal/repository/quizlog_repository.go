package repository

import (
	"context"

	"literacy-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuizLogRepository struct {
	Col *mongo.Collection
}

func NewQuizLogRepository(db *mongo.Database) *QuizLogRepository {
	return &QuizLogRepository{Col: db.Collection("quiz_logs")}
}

func (r *QuizLogRepository) Create(ctx context.Context, log *models.QuizLog) error {
	if log.ID == "" {
		log.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, log)
	return err
}

func (r *QuizLogRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizLog, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	return r.find(ctx, bson.M{"user_id": userID}, opts)
}

func (r *QuizLogRepository) FindByUserAndDate(ctx context.Context, userID, date string) ([]models.QuizLog, error) {
	return r.find(ctx, bson.M{"user_id": userID, "date": date}, nil)
}

func (r *QuizLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.QuizLog, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.Col.Find(ctx, filter, opts)
	} else {
		cur, err = r.Col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var logs []models.QuizLog
	for cur.Next(ctx) {
		var l models.QuizLog
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}
