package service

import (
	"context"
	"math"
	"time"

	"literacy-service/internal/models"
	"literacy-service/internal/repository"
)

type CategoryStats struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"`
}

type RecordStats struct {
	ByCategory      map[string]CategoryStats `json:"byCategory"`
	TotalAttempted  int                      `json:"totalAttempted"`
	TotalCorrect    int                      `json:"totalCorrect"`
	OverallAccuracy int                      `json:"overallAccuracy"`
}

type DailyStatus struct {
	Date             string   `json:"date"`
	Points           int      `json:"points"`
	Completed        []string `json:"completed"`
	IsCompletedToday bool     `json:"isCompletedToday"`
}

// AggregateAttempts reduces the full attempt history into per-category
// counts and integer-rounded accuracy. Zero attempts means accuracy 0.
func AggregateAttempts(attempts []models.Attempt) RecordStats {
	stats := RecordStats{ByCategory: make(map[string]CategoryStats, len(models.ChallengeCategories))}
	for _, category := range models.ChallengeCategories {
		stats.ByCategory[category] = CategoryStats{}
	}

	for _, a := range attempts {
		cs, ok := stats.ByCategory[a.Category]
		if !ok {
			continue
		}
		cs.Total++
		if a.IsCorrect {
			cs.Correct++
		}
		stats.ByCategory[a.Category] = cs

		stats.TotalAttempted++
		if a.IsCorrect {
			stats.TotalCorrect++
		}
	}

	for category, cs := range stats.ByCategory {
		cs.Accuracy = accuracy(cs.Correct, cs.Total)
		stats.ByCategory[category] = cs
	}
	stats.OverallAccuracy = accuracy(stats.TotalCorrect, stats.TotalAttempted)
	return stats
}

// AggregateDailyLogs reduces one day's quiz logs into awarded points, the set
// of completed categories and the daily-complete flag, which is true iff all
// three categories appear at least once.
func AggregateDailyLogs(logs []models.QuizLog) DailyStatus {
	status := DailyStatus{Completed: []string{}}
	seen := make(map[string]bool, len(models.ChallengeCategories))
	for _, l := range logs {
		status.Points += l.Score
		if !seen[l.Category] && models.ValidCategory(l.Category) {
			seen[l.Category] = true
			status.Completed = append(status.Completed, l.Category)
		}
	}
	status.IsCompletedToday = true
	for _, category := range models.ChallengeCategories {
		if !seen[category] {
			status.IsCompletedToday = false
			break
		}
	}
	return status
}

func accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

type StatsService struct {
	AttemptRepo *repository.AttemptRepository
	QuizLogRepo *repository.QuizLogRepository
	Location    *time.Location
}

func NewStatsService(attemptRepo *repository.AttemptRepository, quizLogRepo *repository.QuizLogRepository, loc *time.Location) *StatsService {
	return &StatsService{AttemptRepo: attemptRepo, QuizLogRepo: quizLogRepo, Location: loc}
}

func (s *StatsService) Records(ctx context.Context, userID string) (*RecordStats, error) {
	attempts, err := s.AttemptRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := AggregateAttempts(attempts)
	return &stats, nil
}

func (s *StatsService) Daily(ctx context.Context, userID string) (*DailyStatus, error) {
	date := time.Now().In(s.Location).Format(dateFormat)
	logs, err := s.QuizLogRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	status := AggregateDailyLogs(logs)
	status.Date = date
	return &status, nil
}

func (s *StatsService) QuizLogs(ctx context.Context, userID string) ([]models.QuizLog, error) {
	return s.QuizLogRepo.FindByUser(ctx, userID)
}
