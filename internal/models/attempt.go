package models

import "time"

// Attempt is one answered question's correctness outcome. Append-only.
type Attempt struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Category  string    `bson:"category" json:"category"`
	Date      string    `bson:"date" json:"date"`
	Question  string    `bson:"question" json:"question"`
	IsCorrect bool      `bson:"is_correct" json:"isCorrect"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

type WrongAnswer struct {
	Question      string `bson:"question" json:"question"`
	UserAnswer    string `bson:"user_answer" json:"userAnswer"`
	CorrectAnswer string `bson:"correct_answer" json:"correctAnswer"`
}

// QuizLog summarizes one completed challenge submission. Append-only.
type QuizLog struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	UserID       string        `bson:"user_id" json:"userId"`
	Date         string        `bson:"date" json:"date"`
	Category     string        `bson:"category" json:"category"`
	Score        int           `bson:"score" json:"score"`
	WrongAnswers []WrongAnswer `bson:"wrong_answers" json:"wrongAnswers"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}
