package service

import "literacy-service/internal/models"

// PointsPerCorrectAnswer is the fixed value of one correctly answered
// question.
const PointsPerCorrectAnswer = 20

// AnswerSubmission is one graded question: correctness is plain string
// equality between the selected option and the answer, nothing more.
type AnswerSubmission struct {
	Question string `json:"question" binding:"required"`
	Selected string `json:"selected" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type GradedAnswer struct {
	Question  string `json:"question"`
	IsCorrect bool   `json:"isCorrect"`
}

// ScoreSubmission grades a full submission: score is correct count times the
// per-question value, and every miss is captured for the quiz log.
func ScoreSubmission(answers []AnswerSubmission) (score int, graded []GradedAnswer, wrong []models.WrongAnswer) {
	graded = make([]GradedAnswer, 0, len(answers))
	for _, a := range answers {
		correct := a.Selected == a.Answer
		graded = append(graded, GradedAnswer{Question: a.Question, IsCorrect: correct})
		if correct {
			score += PointsPerCorrectAnswer
		} else {
			wrong = append(wrong, models.WrongAnswer{
				Question:      a.Question,
				UserAnswer:    a.Selected,
				CorrectAnswer: a.Answer,
			})
		}
	}
	return score, graded, wrong
}
