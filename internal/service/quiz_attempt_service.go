package service

import (
	"context"
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"lms_backend/pkg/tracing"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuizAnswerReq struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"max=255"`
}

type SubmitQuizReq struct {
	Attempt []QuizAnswerReq `json:"attempt" binding:"required,min=1,dive"`
}

type SubmitQuizResult struct {
	AttemptID uint `json:"attemptId"`
	Score     int  `json:"score"`
	Total     int  `json:"total"`
}

// maxAnswerLength 与 quiz_submissions.answer 列宽一致，按字符计
const maxAnswerLength = 255

type QuizAttemptService struct {
	DB          *gorm.DB
	Catalog     repository.QuestionCatalog
	Attempts    repository.AttemptStore
	Submissions repository.SubmissionStore
	Now         func() time.Time
}

func NewQuizAttemptService(db *gorm.DB, catalog repository.QuestionCatalog, attempts repository.AttemptStore, submissions repository.SubmissionStore) *QuizAttemptService {
	return &QuizAttemptService{
		DB:          db,
		Catalog:     catalog,
		Attempts:    attempts,
		Submissions: submissions,
		Now:         time.Now,
	}
}

// dedupeAnswers 同一题多次作答时保留最后一次，结果按首次出现的顺序排列
func dedupeAnswers(answers []QuizAnswerReq) ([]QuizAnswerReq, map[uint]string, error) {
	if len(answers) == 0 {
		return nil, nil, util.ErrEmptyAnswers
	}

	byQuestion := make(map[uint]string, len(answers))
	order := make([]uint, 0, len(answers))
	for _, a := range answers {
		if a.QuestionID == 0 {
			return nil, nil, util.ErrMissingQuestionID
		}
		if utf8.RuneCountInString(a.Answer) > maxAnswerLength {
			return nil, nil, fmt.Errorf("%w (question %d)", util.ErrAnswerTooLong, a.QuestionID)
		}
		if _, seen := byQuestion[a.QuestionID]; !seen {
			order = append(order, a.QuestionID)
		}
		byQuestion[a.QuestionID] = a.Answer
	}

	deduped := make([]QuizAnswerReq, 0, len(order))
	for _, qid := range order {
		deduped = append(deduped, QuizAnswerReq{QuestionID: qid, Answer: byQuestion[qid]})
	}
	return deduped, byQuestion, nil
}

// SubmitQuiz 校验、判分，并在一个事务中写入 attempt 和全部作答记录。
// 所有校验都在写入之前完成，失败时不会留下任何行。
func (s *QuizAttemptService) SubmitQuiz(ctx context.Context, quizID, userID uint, answers []QuizAnswerReq) (result *SubmitQuizResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizAttemptService.SubmitQuiz",
		attribute.Int64("quiz.id", int64(quizID)),
		attribute.Int64("user.id", int64(userID)),
	)
	defer func() {
		tracing.EndSpan(span, err)
		s.observe(quizID, userID, result, err)
	}()

	if _, err := s.Catalog.FindQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	deduped, answerMap, err := dedupeAnswers(answers)
	if err != nil {
		return nil, err
	}
	questions, err := s.Catalog.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}

	grade, err := ScoreAnswers(questions, answerMap)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		QuizID:      quizID,
		UserID:      userID,
		Score:       grade.Score,
		Total:       grade.Total,
		AttemptedAt: s.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Attempts.WithTx(tx).Create(ctx, attempt); err != nil {
			return err
		}

		subs := make([]model.QuizSubmission, 0, len(deduped))
		for _, a := range deduped {
			subs = append(subs, model.QuizSubmission{
				AttemptID:  attempt.ID,
				QuestionID: a.QuestionID,
				UserID:     userID,
				Answer:     a.Answer,
				IsCorrect:  grade.Correct[a.QuestionID],
			})
		}
		return s.Submissions.WithTx(tx).CreateBatch(ctx, subs)
	})
	if err != nil {
		return nil, util.Internal(err)
	}

	return &SubmitQuizResult{
		AttemptID: attempt.ID,
		Score:     grade.Score,
		Total:     grade.Total,
	}, nil
}

func (s *QuizAttemptService) observe(quizID, userID uint, result *SubmitQuizResult, err error) {
	switch {
	case err == nil:
		monitoring.ObserveSubmission(monitoring.SubmissionSuccess, result.Score, result.Total)
		logger.Log.Info("quiz submitted",
			zap.Uint("quizId", quizID),
			zap.Uint("userId", userID),
			zap.Uint("attemptId", result.AttemptID),
			zap.Int("score", result.Score),
			zap.Int("total", result.Total),
		)
	case errors.Is(err, util.ErrInternal):
		monitoring.ObserveSubmission(monitoring.SubmissionFailed, 0, 0)
		logger.Log.Error("quiz submission failed", zap.Uint("quizId", quizID), zap.Uint("userId", userID), zap.Error(err))
	default:
		monitoring.ObserveSubmission(monitoring.SubmissionRejected, 0, 0)
		logger.Log.Debug("quiz submission rejected", zap.Uint("quizId", quizID), zap.Uint("userId", userID), zap.Error(err))
	}
}

// DeleteAttempt 作废一次作答，作答记录随之删除
func (s *QuizAttemptService) DeleteAttempt(ctx context.Context, attemptID uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "QuizAttemptService.DeleteAttempt", attribute.Int64("attempt.id", int64(attemptID)))
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.Attempts.Delete(ctx, attemptID); err != nil {
		return fmt.Errorf("delete attempt %d: %w", attemptID, err)
	}
	logger.Log.Info("quiz attempt deleted", zap.Uint("attemptId", attemptID))
	return nil
}
