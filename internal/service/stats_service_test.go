package service

import (
	"testing"

	"literacy-service/internal/models"
)

func TestAggregateAttemptsEmpty(t *testing.T) {
	stats := AggregateAttempts(nil)
	for _, category := range models.ChallengeCategories {
		cs, ok := stats.ByCategory[category]
		if !ok {
			t.Fatalf("category %s missing from stats", category)
		}
		if cs.Accuracy != 0 || cs.Total != 0 || cs.Correct != 0 {
			t.Errorf("empty history produced non-zero stats for %s: %+v", category, cs)
		}
	}
	if stats.OverallAccuracy != 0 {
		t.Errorf("overall accuracy = %d, want 0", stats.OverallAccuracy)
	}
}

func TestAggregateAttempts(t *testing.T) {
	attempts := []models.Attempt{
		{Category: models.CategoryReading, IsCorrect: true},
		{Category: models.CategoryReading, IsCorrect: true},
		{Category: models.CategoryReading, IsCorrect: false},
		{Category: models.CategorySpelling, IsCorrect: false},
		{Category: "unknown", IsCorrect: true}, // ignored
	}

	stats := AggregateAttempts(attempts)

	reading := stats.ByCategory[models.CategoryReading]
	if reading.Correct != 2 || reading.Total != 3 {
		t.Errorf("reading = %+v, want 2/3", reading)
	}
	if reading.Accuracy != 67 {
		t.Errorf("reading accuracy = %d, want 67", reading.Accuracy)
	}

	vocabulary := stats.ByCategory[models.CategoryVocabulary]
	if vocabulary.Total != 0 || vocabulary.Accuracy != 0 {
		t.Errorf("vocabulary without attempts = %+v, want zeros", vocabulary)
	}

	spelling := stats.ByCategory[models.CategorySpelling]
	if spelling.Accuracy != 0 {
		t.Errorf("spelling accuracy = %d, want 0", spelling.Accuracy)
	}

	if stats.TotalAttempted != 4 || stats.TotalCorrect != 2 {
		t.Errorf("totals = %d attempted, %d correct, want 4 and 2", stats.TotalAttempted, stats.TotalCorrect)
	}
	if stats.OverallAccuracy != 50 {
		t.Errorf("overall accuracy = %d, want 50", stats.OverallAccuracy)
	}
}

func TestAggregateDailyLogs(t *testing.T) {
	logs := []models.QuizLog{
		{Category: models.CategoryReading, Score: 20},
		{Category: models.CategoryVocabulary, Score: 40},
	}

	status := AggregateDailyLogs(logs)
	if status.Points != 60 {
		t.Errorf("points = %d, want 60", status.Points)
	}
	if status.IsCompletedToday {
		t.Error("two categories should not complete the day")
	}
	if len(status.Completed) != 2 {
		t.Errorf("completed = %v, want reading and vocabulary", status.Completed)
	}

	// A spelling log flips the flag.
	logs = append(logs, models.QuizLog{Category: models.CategorySpelling, Score: 0})
	status = AggregateDailyLogs(logs)
	if !status.IsCompletedToday {
		t.Error("all three categories logged but day not complete")
	}
	if status.Points != 60 {
		t.Errorf("points = %d, want 60", status.Points)
	}
}

func TestAggregateDailyLogsEmpty(t *testing.T) {
	status := AggregateDailyLogs(nil)
	if status.Points != 0 || status.IsCompletedToday || len(status.Completed) != 0 {
		t.Errorf("empty logs produced %+v", status)
	}
}

func TestAggregateDailyLogsDuplicateCategory(t *testing.T) {
	logs := []models.QuizLog{
		{Category: models.CategoryReading, Score: 20},
		{Category: models.CategoryReading, Score: 40},
	}
	status := AggregateDailyLogs(logs)
	if status.Points != 60 {
		t.Errorf("points = %d, want 60", status.Points)
	}
	if len(status.Completed) != 1 {
		t.Errorf("completed = %v, want reading once", status.Completed)
	}
}
