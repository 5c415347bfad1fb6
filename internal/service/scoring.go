package service

import (
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

// GradeResult 判分结果，Correct 覆盖试卷中的每一道题
type GradeResult struct {
	Score   int
	Total   int
	Correct map[uint]bool
}

// ScoreAnswers 逐题比对答案，区分大小写且不做任何归一化；未作答的题目计为错误。
// answers 中出现试卷外的题目时返回校验错误。
func ScoreAnswers(questions []model.QuizQuestion, answers map[uint]string) (*GradeResult, error) {
	known := make(map[uint]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}
	for qid := range answers {
		if _, ok := known[qid]; !ok {
			return nil, fmt.Errorf("%w (question %d)", util.ErrForeignQuestion, qid)
		}
	}

	result := &GradeResult{
		Total:   len(questions),
		Correct: make(map[uint]bool, len(questions)),
	}
	for _, q := range questions {
		ans, ok := answers[q.ID]
		correct := ok && ans == q.CorrectAnswer
		result.Correct[q.ID] = correct
		if correct {
			result.Score++
		}
	}
	return result, nil
}
