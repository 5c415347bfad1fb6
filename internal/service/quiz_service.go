package service

import (
	"context"
	"encoding/json"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"slices"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type QuizQuestionReq struct {
	Prompt        string   `json:"prompt" binding:"required"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
	// 为空时按数组下标排序
	OrderIndex *int `json:"orderIndex"`
}

type CreateQuizReq struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Questions   []QuizQuestionReq `json:"questions" binding:"required,min=1,dive"`
}

type QuizDetail struct {
	Quiz      *model.Quiz            `json:"quiz"`
	Questions []model.PublicQuestion `json:"questions"`
}

type QuizService struct {
	Catalog repository.QuestionCatalog
	Repo    *repository.QuizRepository
}

func NewQuizService(catalog repository.QuestionCatalog, repo *repository.QuizRepository) *QuizService {
	return &QuizService{Catalog: catalog, Repo: repo}
}

// GetQuiz 返回试卷和去掉标准答案的题目
func (s *QuizService) GetQuiz(ctx context.Context, quizID uint) (*QuizDetail, error) {
	quiz, err := s.Catalog.FindQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.Catalog.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, q.Public())
	}
	return &QuizDetail{Quiz: quiz, Questions: public}, nil
}

func (s *QuizService) CreateQuiz(ctx context.Context, req CreateQuizReq) (*QuizDetail, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", util.ErrValidation)
	}
	if len(req.Questions) == 0 {
		return nil, fmt.Errorf("%w: at least one question is required", util.ErrValidation)
	}

	questions := make([]model.QuizQuestion, 0, len(req.Questions))
	seen := make(map[int]struct{}, len(req.Questions))
	for i, q := range req.Questions {
		order := i
		if q.OrderIndex != nil {
			order = *q.OrderIndex
		}
		if _, dup := seen[order]; dup {
			return nil, fmt.Errorf("%w: duplicate orderIndex %d", util.ErrValidation, order)
		}
		seen[order] = struct{}{}

		if q.Prompt == "" {
			return nil, fmt.Errorf("%w: question %d has no prompt", util.ErrValidation, i)
		}
		if len(q.Choices) > 0 && !slices.Contains(q.Choices, q.CorrectAnswer) {
			return nil, fmt.Errorf("%w: correctAnswer of question %d is not one of its choices", util.ErrValidation, i)
		}

		choices := q.Choices
		if choices == nil {
			choices = []string{}
		}
		raw, err := json.Marshal(choices)
		if err != nil {
			return nil, util.Internal(err)
		}
		questions = append(questions, model.QuizQuestion{
			Prompt:        q.Prompt,
			Choices:       datatypes.JSON(raw),
			CorrectAnswer: q.CorrectAnswer,
			OrderIndex:    order,
		})
	}

	quiz := &model.Quiz{Title: req.Title, Description: req.Description}
	if err := s.Repo.CreateQuiz(ctx, quiz, questions); err != nil {
		return nil, err
	}
	logger.Log.Info("quiz created", zap.Uint("quizId", quiz.ID), zap.Int("questions", len(questions)))

	slices.SortFunc(questions, func(a, b model.QuizQuestion) int { return a.OrderIndex - b.OrderIndex })
	public := make([]model.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, q.Public())
	}
	return &QuizDetail{Quiz: quiz, Questions: public}, nil
}
