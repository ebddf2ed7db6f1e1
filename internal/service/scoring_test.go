package service

import "testing"

func TestScoreSubmission(t *testing.T) {
	answers := []AnswerSubmission{
		{Question: "농부는 언제 일어났나요?", Selected: "아침 일찍", Answer: "아침 일찍"},
		{Question: "농부는 무엇을 갈았나요?", Selected: "논", Answer: "밭"},
	}

	score, graded, wrong := ScoreSubmission(answers)

	if score != 20 {
		t.Errorf("score = %d, want 20", score)
	}
	if len(graded) != 2 {
		t.Fatalf("graded %d answers, want 2", len(graded))
	}
	if !graded[0].IsCorrect || graded[1].IsCorrect {
		t.Errorf("grading wrong: got %v %v, want true false", graded[0].IsCorrect, graded[1].IsCorrect)
	}
	if len(wrong) != 1 {
		t.Fatalf("wrong answers = %d, want 1", len(wrong))
	}
	if wrong[0].UserAnswer != "논" || wrong[0].CorrectAnswer != "밭" {
		t.Errorf("wrong answer detail = %+v", wrong[0])
	}
}

func TestScoreSubmissionAllCorrect(t *testing.T) {
	answers := []AnswerSubmission{
		{Question: "q1", Selected: "a", Answer: "a"},
		{Question: "q2", Selected: "b", Answer: "b"},
		{Question: "q3", Selected: "c", Answer: "c"},
	}
	score, graded, wrong := ScoreSubmission(answers)
	if score != 3*PointsPerCorrectAnswer {
		t.Errorf("score = %d, want %d", score, 3*PointsPerCorrectAnswer)
	}
	if len(graded) != 3 || len(wrong) != 0 {
		t.Errorf("graded=%d wrong=%d, want 3 and 0", len(graded), len(wrong))
	}
}

func TestScoreSubmissionEmpty(t *testing.T) {
	score, graded, wrong := ScoreSubmission(nil)
	if score != 0 || len(graded) != 0 || len(wrong) != 0 {
		t.Errorf("empty submission scored %d with %d graded, %d wrong", score, len(graded), len(wrong))
	}
}
