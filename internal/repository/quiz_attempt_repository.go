package repository

import (
	"context"
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type AttemptStore interface {
	WithTx(tx *gorm.DB) AttemptStore
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	FindByID(ctx context.Context, id uint) (*model.QuizAttempt, error)
	ListByQuizAndUser(ctx context.Context, quizID, userID uint) ([]model.QuizAttempt, error)
	Delete(ctx context.Context, id uint) error
}

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) WithTx(tx *gorm.DB) AttemptStore {
	return &QuizAttemptRepository{DB: tx}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return util.Internal(r.DB.WithContext(ctx).Create(attempt).Error)
}

func (r *QuizAttemptRepository) FindByID(ctx context.Context, id uint) (*model.QuizAttempt, error) {
	var a model.QuizAttempt
	err := r.DB.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, util.Internal(err)
	}
	return &a, nil
}

// ListByQuizAndUser 最近的作答在前，同一时间按 id 倒序
func (r *QuizAttemptRepository) ListByQuizAndUser(ctx context.Context, quizID, userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("attempted_at desc, id desc").
		Find(&attempts).Error
	if err != nil {
		return nil, util.Internal(err)
	}
	return attempts, nil
}

// Delete 删除作答及其全部答案
func (r *QuizAttemptRepository) Delete(ctx context.Context, id uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id = ?", id).Delete(&model.QuizSubmission{}).Error; err != nil {
			return util.Internal(err)
		}
		res := tx.Delete(&model.QuizAttempt{}, id)
		if res.Error != nil {
			return util.Internal(res.Error)
		}
		if res.RowsAffected == 0 {
			return util.ErrAttemptNotFound
		}
		return nil
	})
	return err
}
