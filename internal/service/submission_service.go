package service

import (
	"context"
	"errors"
	"log"
	"time"

	"literacy-service/internal/models"
	"literacy-service/internal/repository"
)

var ErrEmptySubmission = errors.New("submission has no answers")

// SubmitRequest is a completed challenge submission for one category.
type SubmitRequest struct {
	SessionID string             `json:"sessionId" binding:"required"`
	Answers   []AnswerSubmission `json:"answers" binding:"required"`
}

type SubmitResult struct {
	Score         int                  `json:"score"`
	CorrectCount  int                  `json:"correctCount"`
	TotalCount    int                  `json:"totalCount"`
	Graded        []GradedAnswer       `json:"graded"`
	WrongAnswers  []models.WrongAnswer `json:"wrongAnswers"`
	PointsAwarded bool                 `json:"pointsAwarded"`
	ProgressSaved bool                 `json:"progressSaved"`
	TotalPoints   int                  `json:"totalPoints"`
	Badge         string               `json:"badge"`
	BadgeUnlocked bool                 `json:"badgeUnlocked"`
}

// SubmissionService turns graded submissions into attempts, quiz logs and
// point awards.
type SubmissionService struct {
	Challenges  *ChallengeService
	Users       *UserService
	AttemptRepo *repository.AttemptRepository
	QuizLogRepo *repository.QuizLogRepository
	Location    *time.Location
}

func NewSubmissionService(challenges *ChallengeService, users *UserService, attemptRepo *repository.AttemptRepository, quizLogRepo *repository.QuizLogRepository, loc *time.Location) *SubmissionService {
	return &SubmissionService{
		Challenges:  challenges,
		Users:       users,
		AttemptRepo: attemptRepo,
		QuizLogRepo: quizLogRepo,
		Location:    loc,
	}
}

// Submit grades the answers and, when this session has not been scored yet,
// persists attempts and the quiz log and awards points. Re-submitting the
// same session returns the grading again without any side effect.
func (s *SubmissionService) Submit(ctx context.Context, userID, category string, req SubmitRequest) (*SubmitResult, error) {
	if len(req.Answers) == 0 {
		return nil, ErrEmptySubmission
	}

	score, graded, wrong := ScoreSubmission(req.Answers)
	result := &SubmitResult{
		Score:        score,
		CorrectCount: len(req.Answers) - len(wrong),
		TotalCount:   len(req.Answers),
		Graded:       graded,
		WrongAnswers: wrong,
	}
	if result.WrongAnswers == nil {
		result.WrongAnswers = []models.WrongAnswer{}
	}

	if !s.Challenges.ClaimScoring(req.SessionID, userID) {
		// Already scored in this session; report the grade only.
		if user, err := s.Users.GetUser(ctx, userID); err == nil {
			result.TotalPoints = user.Points
			result.Badge = user.Badge
		}
		return result, nil
	}

	date := time.Now().In(s.Location).Format(dateFormat)
	now := time.Now()
	result.ProgressSaved = true

	attempts := make([]models.Attempt, 0, len(graded))
	for _, g := range graded {
		attempts = append(attempts, models.Attempt{
			UserID:    userID,
			Category:  category,
			Date:      date,
			Question:  g.Question,
			IsCorrect: g.IsCorrect,
			CreatedAt: now,
		})
	}
	if err := s.AttemptRepo.CreateMany(ctx, attempts); err != nil {
		log.Printf("Failed to save attempts for user %s: %v", userID, err)
		result.ProgressSaved = false
	}

	quizLog := &models.QuizLog{
		UserID:       userID,
		Date:         date,
		Category:     category,
		Score:        score,
		WrongAnswers: result.WrongAnswers,
		CreatedAt:    now,
	}
	if err := s.QuizLogRepo.Create(ctx, quizLog); err != nil {
		log.Printf("Failed to save quiz log for user %s: %v", userID, err)
		result.ProgressSaved = false
	}

	user, badgeUnlocked, err := s.Users.AwardPoints(ctx, userID, score)
	if err != nil {
		log.Printf("Failed to award points to user %s: %v", userID, err)
		result.ProgressSaved = false
		return result, nil
	}

	result.PointsAwarded = true
	result.TotalPoints = user.Points
	result.Badge = user.Badge
	result.BadgeUnlocked = badgeUnlocked
	return result, nil
}
