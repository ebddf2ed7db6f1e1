package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"literacy-service/internal/event"
	"literacy-service/internal/models"
	"literacy-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrTreasureAlreadyClaimed = errors.New("treasure already claimed today")

// treasurePool are the point values the daily draw picks from.
var treasurePool = []int{10, 20, 30, 50, 100}

type UserService struct {
	Repo        *repository.UserRepository
	Leaderboard *repository.LeaderboardRepository
	Publisher   *event.Publisher
	Location    *time.Location
}

func NewUserService(repo *repository.UserRepository, leaderboard *repository.LeaderboardRepository, publisher *event.Publisher, loc *time.Location) *UserService {
	return &UserService{Repo: repo, Leaderboard: leaderboard, Publisher: publisher, Location: loc}
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.FindByID(ctx, id)
}

// AwardPoints adds points, re-resolves the badge and refreshes the
// leaderboard projection. Returns the updated user and whether a new badge
// rank was unlocked.
func (s *UserService) AwardPoints(ctx context.Context, userID string, points int) (*models.User, bool, error) {
	user, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	previousBadge := user.Badge
	user.Points += points
	user.SyncBadge()
	user.UpdatedAt = time.Now()

	err = s.Repo.Update(ctx, userID, bson.M{
		"points":     user.Points,
		"badge":      user.Badge,
		"emoji":      user.Emoji,
		"updated_at": user.UpdatedAt,
	})
	if err != nil {
		return nil, false, err
	}

	s.refreshLeaderboard(ctx, user)

	badgeUnlocked := user.Badge != previousBadge
	s.Publisher.Publish(event.PointsAwarded, map[string]interface{}{
		"user_id": userID,
		"points":  points,
		"total":   user.Points,
	})
	if badgeUnlocked {
		s.Publisher.Publish(event.BadgeUnlocked, map[string]interface{}{
			"user_id": userID,
			"badge":   user.Badge,
		})
	}
	return user, badgeUnlocked, nil
}

// ClaimTreasure performs the once-per-day random point draw.
func (s *UserService) ClaimTreasure(ctx context.Context, userID string) (int, *models.User, error) {
	user, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return 0, nil, err
	}

	today := time.Now().In(s.Location).Format(dateFormat)
	if user.LastTreasureDraw == today {
		return 0, nil, ErrTreasureAlreadyClaimed
	}

	won := treasurePool[rand.Intn(len(treasurePool))]
	user.Points += won
	user.SyncBadge()
	user.LastTreasureDraw = today
	user.UpdatedAt = time.Now()

	err = s.Repo.Update(ctx, userID, bson.M{
		"points":             user.Points,
		"badge":              user.Badge,
		"emoji":              user.Emoji,
		"last_treasure_draw": today,
		"updated_at":         user.UpdatedAt,
	})
	if err != nil {
		return 0, nil, err
	}

	s.refreshLeaderboard(ctx, user)
	s.Publisher.Publish(event.TreasureClaimed, map[string]interface{}{
		"user_id": userID,
		"points":  won,
	})
	return won, user, nil
}

// refreshLeaderboard rewrites the denormalized projection. Failures only cost
// freshness, never block the caller.
func (s *UserService) refreshLeaderboard(ctx context.Context, user *models.User) {
	if user.Role != models.RoleStudent {
		return
	}
	entry := &models.LeaderboardEntry{
		ID:     user.ID,
		Name:   user.Name,
		Points: user.Points,
		Emoji:  user.Emoji,
	}
	if err := s.Leaderboard.Upsert(ctx, entry); err != nil {
		log.Printf("Failed to update leaderboard for user %s: %v", user.ID, err)
	}
}

// RankedLeaderboard returns all entries sorted by points with the caller's
// rank resolved (0 when absent).
func (s *UserService) RankedLeaderboard(ctx context.Context, callerID string) ([]models.LeaderboardEntry, int, error) {
	entries, err := s.Leaderboard.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	rank := 0
	for i, e := range entries {
		if e.ID == callerID {
			rank = i + 1
			break
		}
	}
	return entries, rank, nil
}

// ClassStudents lists the roster for a teacher's class.
func (s *UserService) ClassStudents(ctx context.Context, classID string) ([]models.User, error) {
	return s.Repo.FindStudentsByClass(ctx, classID)
}
