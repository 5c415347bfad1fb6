package service

import (
	"context"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type QuizSummaryItem struct {
	Question        model.PublicQuestion `json:"question"`
	SubmittedAnswer *string              `json:"submittedAnswer"`
	IsCorrect       bool                 `json:"isCorrect"`
}

type QuizSummaryService struct {
	Catalog     repository.QuestionCatalog
	Attempts    repository.AttemptStore
	Submissions repository.SubmissionStore
}

func NewQuizSummaryService(catalog repository.QuestionCatalog, attempts repository.AttemptStore, submissions repository.SubmissionStore) *QuizSummaryService {
	return &QuizSummaryService{Catalog: catalog, Attempts: attempts, Submissions: submissions}
}

// GetSummary 按 order_index 还原一次作答：题目、用户答案和交卷时记录的对错。
// 只有作答者本人可以查看。
func (s *QuizSummaryService) GetSummary(ctx context.Context, attemptID, requestingUserID uint) (items []QuizSummaryItem, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizSummaryService.GetSummary",
		attribute.Int64("attempt.id", int64(attemptID)),
		attribute.Int64("user.id", int64(requestingUserID)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	attempt, err := s.Attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != requestingUserID {
		return nil, util.ErrNotAttemptOwner
	}

	if _, err := s.Catalog.FindQuiz(ctx, attempt.QuizID); err != nil {
		return nil, err
	}
	questions, err := s.Catalog.ListQuestions(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	subs, err := s.Submissions.ListByAttempt(ctx, attempt.ID, attempt.UserID)
	if err != nil {
		return nil, err
	}
	byQuestion := make(map[uint]model.QuizSubmission, len(subs))
	for _, sub := range subs {
		byQuestion[sub.QuestionID] = sub
	}

	items = make([]QuizSummaryItem, 0, len(questions))
	for _, q := range questions {
		item := QuizSummaryItem{Question: q.Public()}
		if sub, ok := byQuestion[q.ID]; ok {
			answer := sub.Answer
			item.SubmittedAnswer = &answer
			item.IsCorrect = sub.IsCorrect
		}
		items = append(items, item)
	}
	return items, nil
}
