package models

import (
	"fmt"
	"time"
)

// ChallengeSchemaVersion tags every generated payload. Stored sets carrying a
// different version are stale and regenerated wholesale.
const ChallengeSchemaVersion = 2

const (
	CategoryReading    = "reading"
	CategoryVocabulary = "vocabulary"
	CategorySpelling   = "spelling"
)

var ChallengeCategories = []string{CategoryReading, CategoryVocabulary, CategorySpelling}

// Question counts and option counts fixed by the active schema version.
const (
	ReadingQuestionCount  = 2
	ReadingOptionCount    = 4
	SpellingQuestionCount = 2
	SpellingOptionCount   = 2
	VocabularyOptionCount = 2
)

type ChallengeQuestion struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Answer   string   `bson:"answer" json:"answer"`
}

type ReadingBlock struct {
	Text      string              `bson:"text" json:"text"`
	Questions []ChallengeQuestion `bson:"questions" json:"questions"`
}

type VocabularyBlock struct {
	Idiom      string   `bson:"idiom" json:"idiom"`
	Definition string   `bson:"definition" json:"definition"`
	Example    string   `bson:"example" json:"example"`
	Question   string   `bson:"question" json:"question"`
	Options    []string `bson:"options" json:"options"`
	Answer     string   `bson:"answer" json:"answer"`
}

type SpellingBlock struct {
	Questions []ChallengeQuestion `bson:"questions" json:"questions"`
}

// ChallengePayload is one generated challenge bundle for a single tier.
type ChallengePayload struct {
	SchemaVersion int             `bson:"schema_version" json:"schemaVersion"`
	Reading       ReadingBlock    `bson:"reading" json:"reading"`
	Vocabulary    VocabularyBlock `bson:"vocabulary" json:"vocabulary"`
	Spelling      SpellingBlock   `bson:"spelling" json:"spelling"`
}

// DailyChallengeSet is the per-date document holding one payload per tier.
type DailyChallengeSet struct {
	Date          string                      `bson:"_id" json:"date"`
	SchemaVersion int                         `bson:"schema_version" json:"schemaVersion"`
	Challenges    map[Level]*ChallengePayload `bson:"challenges" json:"challenges"`
	CreatedAt     time.Time                   `bson:"created_at" json:"createdAt"`
}

func (q *ChallengeQuestion) validate(wantOptions int) error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != wantOptions {
		return fmt.Errorf("expected %d options, got %d", wantOptions, len(q.Options))
	}
	return validateOptions(q.Options, q.Answer)
}

func validateOptions(options []string, answer string) error {
	seen := make(map[string]bool, len(options))
	answerFound := false
	for _, opt := range options {
		if opt == "" {
			return fmt.Errorf("empty option")
		}
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == answer {
			answerFound = true
		}
	}
	if !answerFound {
		return fmt.Errorf("answer %q not among options", answer)
	}
	return nil
}

// Validate performs the structural staleness check: shape only, never
// pedagogical correctness.
func (p *ChallengePayload) Validate() error {
	if p == nil {
		return fmt.Errorf("payload is nil")
	}
	if p.SchemaVersion != ChallengeSchemaVersion {
		return fmt.Errorf("schema version %d, want %d", p.SchemaVersion, ChallengeSchemaVersion)
	}
	if p.Reading.Text == "" {
		return fmt.Errorf("reading text is empty")
	}
	if len(p.Reading.Questions) != ReadingQuestionCount {
		return fmt.Errorf("expected %d reading questions, got %d", ReadingQuestionCount, len(p.Reading.Questions))
	}
	for i := range p.Reading.Questions {
		if err := p.Reading.Questions[i].validate(ReadingOptionCount); err != nil {
			return fmt.Errorf("reading question %d: %w", i, err)
		}
	}
	if p.Vocabulary.Idiom == "" || p.Vocabulary.Definition == "" {
		return fmt.Errorf("vocabulary idiom/definition missing")
	}
	if p.Vocabulary.Question == "" {
		return fmt.Errorf("vocabulary question is empty")
	}
	if len(p.Vocabulary.Options) != VocabularyOptionCount {
		return fmt.Errorf("expected %d vocabulary options, got %d", VocabularyOptionCount, len(p.Vocabulary.Options))
	}
	if err := validateOptions(p.Vocabulary.Options, p.Vocabulary.Answer); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}
	if len(p.Spelling.Questions) != SpellingQuestionCount {
		return fmt.Errorf("expected %d spelling questions, got %d", SpellingQuestionCount, len(p.Spelling.Questions))
	}
	for i := range p.Spelling.Questions {
		if err := p.Spelling.Questions[i].validate(SpellingOptionCount); err != nil {
			return fmt.Errorf("spelling question %d: %w", i, err)
		}
	}
	return nil
}

// TierValid reports whether the stored set can serve the given tier without
// regeneration.
func (s *DailyChallengeSet) TierValid(level Level) bool {
	if s == nil || s.SchemaVersion != ChallengeSchemaVersion {
		return false
	}
	payload, ok := s.Challenges[level]
	if !ok {
		return false
	}
	return payload.Validate() == nil
}

func ValidCategory(category string) bool {
	switch category {
	case CategoryReading, CategoryVocabulary, CategorySpelling:
		return true
	}
	return false
}
