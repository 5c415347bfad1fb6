package repository

import (
	"context"
	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionStore interface {
	WithTx(tx *gorm.DB) SubmissionStore
	CreateBatch(ctx context.Context, submissions []model.QuizSubmission) error
	ListByAttempt(ctx context.Context, attemptID, userID uint) ([]model.QuizSubmission, error)
}

type QuizSubmissionRepository struct {
	DB *gorm.DB
}

func NewQuizSubmissionRepository(db *gorm.DB) *QuizSubmissionRepository {
	return &QuizSubmissionRepository{DB: db}
}

func (r *QuizSubmissionRepository) WithTx(tx *gorm.DB) SubmissionStore {
	return &QuizSubmissionRepository{DB: tx}
}

func (r *QuizSubmissionRepository) CreateBatch(ctx context.Context, submissions []model.QuizSubmission) error {
	if len(submissions) == 0 {
		return nil
	}
	return util.Internal(r.DB.WithContext(ctx).Create(&submissions).Error)
}

// ListByAttempt 只返回该 attempt 下属于 userID 的答案
func (r *QuizSubmissionRepository) ListByAttempt(ctx context.Context, attemptID, userID uint) ([]model.QuizSubmission, error) {
	var subs []model.QuizSubmission
	err := r.DB.WithContext(ctx).
		Where("attempt_id = ? AND user_id = ?", attemptID, userID).
		Order("id asc").
		Find(&subs).Error
	if err != nil {
		return nil, util.Internal(err)
	}
	return subs, nil
}
