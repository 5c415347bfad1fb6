package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"testing"
)

func gradeQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{ID: 1, CorrectAnswer: "A"},
		{ID: 2, CorrectAnswer: "B"},
		{ID: 3, CorrectAnswer: "C"},
	}
}

func TestScoreAnswersCountsExactMatches(t *testing.T) {
	res, err := ScoreAnswers(gradeQuestions(), map[uint]string{1: "A", 2: "X"})
	if err != nil {
		t.Fatalf("ScoreAnswers failed: %v", err)
	}
	if res.Score != 1 || res.Total != 3 {
		t.Fatalf("expected 1/3, got %d/%d", res.Score, res.Total)
	}
	if !res.Correct[1] || res.Correct[2] || res.Correct[3] {
		t.Fatalf("unexpected correctness map: %v", res.Correct)
	}
}

func TestScoreAnswersIsCaseSensitive(t *testing.T) {
	res, err := ScoreAnswers(gradeQuestions(), map[uint]string{1: "a", 2: " B"})
	if err != nil {
		t.Fatalf("ScoreAnswers failed: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("expected no normalization, got score %d", res.Score)
	}
}

func TestScoreAnswersRejectsForeignQuestion(t *testing.T) {
	_, err := ScoreAnswers(gradeQuestions(), map[uint]string{1: "A", 99: "A"})
	if !errors.Is(err, util.ErrForeignQuestion) || !errors.Is(err, util.ErrValidation) {
		t.Fatalf("expected foreign question validation error, got %v", err)
	}
}

func TestScoreAnswersScoreWithinBounds(t *testing.T) {
	all := map[uint]string{1: "A", 2: "B", 3: "C"}
	res, err := ScoreAnswers(gradeQuestions(), all)
	if err != nil {
		t.Fatalf("ScoreAnswers failed: %v", err)
	}
	if res.Score != res.Total {
		t.Fatalf("expected full marks, got %d/%d", res.Score, res.Total)
	}

	res, err = ScoreAnswers(nil, map[uint]string{})
	if err != nil {
		t.Fatalf("ScoreAnswers on empty quiz failed: %v", err)
	}
	if res.Score != 0 || res.Total != 0 {
		t.Fatalf("expected 0/0, got %d/%d", res.Score, res.Total)
	}
}
