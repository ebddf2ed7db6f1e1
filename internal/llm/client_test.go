package llm

import (
	"encoding/json"
	"testing"

	"literacy-service/internal/models"
)

const completionJSON = `{
  "reading": {
    "text": "민호는 주말마다 할머니 댁에 갑니다. 할머니는 민호에게 옛날 이야기를 들려주십니다.",
    "questions": [
      {"question": "민호는 언제 할머니 댁에 가나요?", "options": ["주말", "월요일", "방학", "아침"], "answer": "주말"},
      {"question": "할머니는 무엇을 들려주시나요?", "options": ["옛날 이야기", "노래", "뉴스", "퀴즈"], "answer": "옛날 이야기"}
    ]
  },
  "vocabulary": {
    "idiom": "티끌 모아 태산",
    "definition": "작은 것도 모이면 큰 것이 된다.",
    "example": "티끌 모아 태산이라고, 매일 조금씩 저금했더니 큰돈이 되었어.",
    "question": "'티끌 모아 태산'의 뜻은?",
    "options": ["작은 것도 모이면 커진다", "산이 매우 높다"],
    "answer": "작은 것도 모이면 커진다"
  },
  "spelling": {
    "questions": [
      {"question": "다음 중 맞는 표기는?", "options": ["며칠", "몇일"], "answer": "며칠"},
      {"question": "다음 중 맞는 표기는?", "options": ["금세", "금새"], "answer": "금세"}
    ]
  }
}`

func TestParsePayloadPlainJSON(t *testing.T) {
	payload, err := parsePayload(completionJSON)
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	if payload.SchemaVersion != models.ChallengeSchemaVersion {
		t.Errorf("schema version = %d, want %d", payload.SchemaVersion, models.ChallengeSchemaVersion)
	}
	if payload.Vocabulary.Idiom != "티끌 모아 태산" {
		t.Errorf("idiom = %q", payload.Vocabulary.Idiom)
	}
}

func TestParsePayloadFencedJSON(t *testing.T) {
	fenced := "Here is today's challenge:\n```json\n" + completionJSON + "\n```\nEnjoy!"
	payload, err := parsePayload(fenced)
	if err != nil {
		t.Fatalf("parsePayload: %v", err)
	}
	if len(payload.Reading.Questions) != models.ReadingQuestionCount {
		t.Errorf("reading questions = %d, want %d", len(payload.Reading.Questions), models.ReadingQuestionCount)
	}
}

func TestParsePayloadNotJSON(t *testing.T) {
	if _, err := parsePayload("죄송하지만 문제를 만들 수 없습니다."); err == nil {
		t.Fatal("expected error for non-JSON completion")
	}
}

func TestParsePayloadSchemaViolation(t *testing.T) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(completionJSON), &doc); err != nil {
		t.Fatal(err)
	}
	doc["spelling"] = map[string]interface{}{"questions": []interface{}{}}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parsePayload(string(raw)); err == nil {
		t.Fatal("expected schema check failure for empty spelling block")
	}
}
