package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"literacy-service/internal/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	leaderboardCacheKey = "literacy:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardRepository keeps the denormalized points projection in Mongo and
// serves reads through a short-lived Redis cache when one is configured.
type LeaderboardRepository struct {
	Col   *mongo.Collection
	Cache *redis.Client
}

func NewLeaderboardRepository(db *mongo.Database, cache *redis.Client) *LeaderboardRepository {
	return &LeaderboardRepository{Col: db.Collection("leaderboard"), Cache: cache}
}

func (r *LeaderboardRepository) Upsert(ctx context.Context, entry *models.LeaderboardEntry) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": entry.ID}, entry, opts)
	if err != nil {
		return err
	}
	if r.Cache != nil {
		if err := r.Cache.Del(ctx, leaderboardCacheKey).Err(); err != nil {
			log.Printf("Failed to invalidate leaderboard cache: %v", err)
		}
	}
	return nil
}

func (r *LeaderboardRepository) FindAll(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if r.Cache != nil {
		raw, err := r.Cache.Get(ctx, leaderboardCacheKey).Bytes()
		if err == nil {
			var cached []models.LeaderboardEntry
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	opts := options.Find().SetSort(bson.M{"points": -1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var entries []models.LeaderboardEntry
	for cur.Next(ctx) {
		var e models.LeaderboardEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if r.Cache != nil {
		if raw, err := json.Marshal(entries); err == nil {
			if err := r.Cache.Set(ctx, leaderboardCacheKey, raw, leaderboardCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache leaderboard: %v", err)
			}
		}
	}
	return entries, nil
}
