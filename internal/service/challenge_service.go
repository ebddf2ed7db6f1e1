package service

import (
	"context"
	"log"
	"sync"
	"time"

	"literacy-service/internal/models"

	"github.com/google/uuid"
)

const dateFormat = "2006-01-02"

// ChallengeStore is the persistence surface the cache needs. Implemented by
// repository.ChallengeRepository.
type ChallengeStore interface {
	FindByDate(ctx context.Context, date string) (*models.DailyChallengeSet, error)
	Upsert(ctx context.Context, set *models.DailyChallengeSet) error
}

// ChallengeGenerator produces one payload for a student level. Implemented by
// llm.Client.
type ChallengeGenerator interface {
	GenerateChallenge(ctx context.Context, studentLevel int, topic string) (*models.ChallengePayload, error)
}

// challengeSession tracks one rendered challenge so the scoring guard can
// ensure points are awarded at most once per session. In-memory only: a
// client reload starts a fresh attempt.
type challengeSession struct {
	UserID   string
	Category string
	Scored   bool
	IssuedAt time.Time
}

type ChallengeService struct {
	Store     ChallengeStore
	Generator ChallengeGenerator
	Location  *time.Location

	mu       sync.Mutex
	sessions map[string]*challengeSession
}

func NewChallengeService(store ChallengeStore, generator ChallengeGenerator, loc *time.Location) *ChallengeService {
	return &ChallengeService{
		Store:     store,
		Generator: generator,
		Location:  loc,
		sessions:  make(map[string]*challengeSession),
	}
}

// ChallengeResponse couples the served payload with the session id the client
// must echo back on submission.
type ChallengeResponse struct {
	SessionID   string                   `json:"sessionId"`
	Date        string                   `json:"date"`
	Level       models.Level             `json:"level"`
	Category    string                   `json:"category"`
	Payload     *models.ChallengePayload `json:"payload"`
	Regenerated bool                     `json:"regenerated"`
}

// GetChallenge serves today's payload for the tier derived from the student's
// points. A topic selector (reading only) bypasses the daily cache and
// generates on every request.
func (s *ChallengeService) GetChallenge(ctx context.Context, userID, category string, points int, topic string) (*ChallengeResponse, error) {
	level := models.ResolveLevel(points)
	date := s.today()

	var payload *models.ChallengePayload
	var regenerated bool
	var err error

	if topic != "" && category == models.CategoryReading {
		payload, err = s.Generator.GenerateChallenge(ctx, models.StudentLevel(points), topic)
		if err != nil {
			return nil, err
		}
	} else {
		payload, regenerated, err = s.cachedPayload(ctx, date, level)
		if err != nil {
			return nil, err
		}
	}

	return &ChallengeResponse{
		SessionID:   s.issueSession(userID, category),
		Date:        date,
		Level:       level,
		Category:    category,
		Payload:     payload,
		Regenerated: regenerated,
	}, nil
}

// cachedPayload returns the stored payload for the tier, regenerating the
// whole set when the date has no entry or the requested tier fails the
// structural check. Concurrent cache misses may each regenerate; the upsert
// is a last-writer-wins merge and the duplicate work is accepted.
func (s *ChallengeService) cachedPayload(ctx context.Context, date string, level models.Level) (*models.ChallengePayload, bool, error) {
	set, err := s.Store.FindByDate(ctx, date)
	if err != nil {
		log.Printf("Challenge cache lookup failed for %s: %v", date, err)
		set = nil
	}
	if set.TierValid(level) {
		return set.Challenges[level], false, nil
	}

	fresh, err := s.regenerateSet(ctx, date)
	if err != nil {
		return nil, false, err
	}
	return fresh.Challenges[level], true, nil
}

// regenerateSet generates payloads for all three tiers together. Any tier
// failing means nothing is persisted and the caller gets a retryable error.
func (s *ChallengeService) regenerateSet(ctx context.Context, date string) (*models.DailyChallengeSet, error) {
	set := &models.DailyChallengeSet{
		Date:          date,
		SchemaVersion: models.ChallengeSchemaVersion,
		Challenges:    make(map[models.Level]*models.ChallengePayload, 3),
		CreatedAt:     time.Now(),
	}
	for _, level := range []models.Level{models.LevelEasy, models.LevelMedium, models.LevelHard} {
		payload, err := s.Generator.GenerateChallenge(ctx, models.StudentLevelMapping[level], "")
		if err != nil {
			return nil, err
		}
		set.Challenges[level] = payload
	}

	if err := s.Store.Upsert(ctx, set); err != nil {
		// Serving the generated content still works; only reuse is lost.
		log.Printf("Failed to persist daily challenge set for %s: %v", date, err)
	}
	return set, nil
}

func (s *ChallengeService) issueSession(userID, category string) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	s.sessions[id] = &challengeSession{
		UserID:   userID,
		Category: category,
		IssuedAt: time.Now(),
	}
	return id
}

// ClaimScoring marks the session as scored and reports whether this call won
// the claim. Unknown session ids (e.g. issued before a restart) are claimable
// exactly once.
func (s *ChallengeService) ClaimScoring(sessionID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.sessions[sessionID] = &challengeSession{
			UserID:   userID,
			Scored:   true,
			IssuedAt: time.Now(),
		}
		return true
	}
	if sess.Scored {
		return false
	}
	sess.Scored = true
	return true
}

// pruneLocked drops sessions older than a day. Caller holds mu.
func (s *ChallengeService) pruneLocked() {
	cutoff := time.Now().Add(-24 * time.Hour)
	for id, sess := range s.sessions {
		if sess.IssuedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *ChallengeService) today() string {
	return time.Now().In(s.Location).Format(dateFormat)
}
