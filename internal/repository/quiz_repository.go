package repository

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionCatalog 只读题库，返回的题目包含标准答案，仅供判分使用
type QuestionCatalog interface {
	FindQuiz(ctx context.Context, quizID uint) (*model.Quiz, error)
	ListQuestions(ctx context.Context, quizID uint) ([]model.QuizQuestion, error)
}

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindQuiz(ctx context.Context, quizID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.WithContext(ctx).First(&quiz, quizID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, util.Internal(err)
	}
	return &quiz, nil
}

// ListQuestions 按 order_index 升序返回
func (r *QuizRepository) ListQuestions(ctx context.Context, quizID uint) ([]model.QuizQuestion, error) {
	var qs []model.QuizQuestion
	err := r.DB.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("order_index asc, id asc").
		Find(&qs).Error
	if err != nil {
		return nil, util.Internal(err)
	}
	return qs, nil
}

// CreateQuiz 在一个事务中写入试卷和全部题目
func (r *QuizRepository) CreateQuiz(ctx context.Context, quiz *model.Quiz, questions []model.QuizQuestion) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		return tx.Create(&questions).Error
	})
	return util.Internal(err)
}
