package service

import (
	"context"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/tracing"
	"time"

	"github.com/jinzhu/copier"
	"go.opentelemetry.io/otel/attribute"
)

type QuizHistoryEntry struct {
	ID          uint      `json:"attemptId"`
	QuizID      uint      `json:"quizId"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	AttemptedAt time.Time `json:"attemptedAt"`
}

type QuizHistoryService struct {
	Catalog  repository.QuestionCatalog
	Attempts repository.AttemptStore
}

func NewQuizHistoryService(catalog repository.QuestionCatalog, attempts repository.AttemptStore) *QuizHistoryService {
	return &QuizHistoryService{Catalog: catalog, Attempts: attempts}
}

// GetHistory 返回用户在某试卷上的全部作答，最近的在前；每次调用都重新查询
func (s *QuizHistoryService) GetHistory(ctx context.Context, quizID, userID uint) (entries []QuizHistoryEntry, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizHistoryService.GetHistory",
		attribute.Int64("quiz.id", int64(quizID)),
		attribute.Int64("user.id", int64(userID)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	if _, err := s.Catalog.FindQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	attempts, err := s.Attempts.ListByQuizAndUser(ctx, quizID, userID)
	if err != nil {
		return nil, err
	}

	entries = make([]QuizHistoryEntry, 0, len(attempts))
	if err := copier.Copy(&entries, &attempts); err != nil {
		return nil, util.Internal(err)
	}
	return entries, nil
}
