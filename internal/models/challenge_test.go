package models

import (
	"testing"
	"time"
)

func validPayload() *ChallengePayload {
	return &ChallengePayload{
		SchemaVersion: ChallengeSchemaVersion,
		Reading: ReadingBlock{
			Text: "옛날 어느 마을에 부지런한 농부가 살았습니다. 농부는 매일 아침 일찍 일어나 밭을 갈았습니다.",
			Questions: []ChallengeQuestion{
				{Question: "농부는 언제 일어났나요?", Options: []string{"아침 일찍", "점심", "저녁", "밤"}, Answer: "아침 일찍"},
				{Question: "농부는 무엇을 갈았나요?", Options: []string{"밭", "논", "산", "강"}, Answer: "밭"},
			},
		},
		Vocabulary: VocabularyBlock{
			Idiom:      "티끌 모아 태산",
			Definition: "아무리 작은 것이라도 모이면 큰 것이 된다.",
			Example:    "티끌 모아 태산이라고, 매일 조금씩 저금했더니 큰돈이 되었어.",
			Question:   "'티끌 모아 태산'의 뜻은 무엇일까요?",
			Options:    []string{"작은 것이 모여 큰 것이 된다", "산이 무너진다"},
			Answer:     "작은 것이 모여 큰 것이 된다",
		},
		Spelling: SpellingBlock{
			Questions: []ChallengeQuestion{
				{Question: "다음 중 맞는 표기는?", Options: []string{"왠지", "웬지"}, Answer: "왠지"},
				{Question: "다음 중 맞는 표기는?", Options: []string{"곰곰이", "곰곰히"}, Answer: "곰곰이"},
			},
		},
	}
}

func TestChallengePayloadValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(p *ChallengePayload)
		wantErr bool
	}{
		{"valid payload", func(p *ChallengePayload) {}, false},
		{"schema version mismatch", func(p *ChallengePayload) { p.SchemaVersion = 1 }, true},
		{"empty reading text", func(p *ChallengePayload) { p.Reading.Text = "" }, true},
		{"one reading question", func(p *ChallengePayload) { p.Reading.Questions = p.Reading.Questions[:1] }, true},
		{"reading question missing options", func(p *ChallengePayload) { p.Reading.Questions[0].Options = nil }, true},
		{"duplicate reading options", func(p *ChallengePayload) {
			p.Reading.Questions[0].Options = []string{"밭", "밭", "산", "강"}
		}, true},
		{"reading answer not among options", func(p *ChallengePayload) { p.Reading.Questions[1].Answer = "바다" }, true},
		{"vocabulary missing options", func(p *ChallengePayload) { p.Vocabulary.Options = nil }, true},
		{"vocabulary missing idiom", func(p *ChallengePayload) { p.Vocabulary.Idiom = "" }, true},
		{"spelling missing options", func(p *ChallengePayload) { p.Spelling.Questions[0].Options = nil }, true},
		{"spelling three options", func(p *ChallengePayload) {
			p.Spelling.Questions[0].Options = []string{"왠지", "웬지", "왼지"}
		}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			tc.mutate(p)
			err := p.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestDailyChallengeSetTierValid(t *testing.T) {
	set := &DailyChallengeSet{
		Date:          "2026-08-31",
		SchemaVersion: ChallengeSchemaVersion,
		Challenges: map[Level]*ChallengePayload{
			LevelEasy:   validPayload(),
			LevelMedium: validPayload(),
		},
		CreatedAt: time.Now(),
	}

	if !set.TierValid(LevelEasy) {
		t.Error("valid easy tier reported invalid")
	}
	if set.TierValid(LevelHard) {
		t.Error("missing hard tier reported valid")
	}

	// Structurally broken tier: vocabulary lost its options array.
	set.Challenges[LevelMedium].Vocabulary.Options = nil
	if set.TierValid(LevelMedium) {
		t.Error("tier without vocabulary options reported valid")
	}

	// Old schema invalidates the whole set.
	set.SchemaVersion = 1
	if set.TierValid(LevelEasy) {
		t.Error("set with stale schema version reported valid")
	}

	var nilSet *DailyChallengeSet
	if nilSet.TierValid(LevelEasy) {
		t.Error("nil set reported valid")
	}
}
