package util

import (
	"errors"
	"fmt"
)

// 错误类别，HTTP 层根据类别映射状态码
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("permission denied")
	ErrInternal   = errors.New("internal error")
)

var (
	ErrQuizNotFound    = fmt.Errorf("quiz %w", ErrNotFound)
	ErrAttemptNotFound = fmt.Errorf("attempt %w", ErrNotFound)

	ErrEmptyAnswers      = fmt.Errorf("%w: at least one answer is required", ErrValidation)
	ErrMissingQuestionID = fmt.Errorf("%w: answer without questionId", ErrValidation)
	ErrForeignQuestion   = fmt.Errorf("%w: answer references a question outside the quiz", ErrValidation)
	ErrAnswerTooLong     = fmt.Errorf("%w: answer exceeds 255 characters", ErrValidation)

	ErrNotAttemptOwner = fmt.Errorf("%w: attempt belongs to another user", ErrForbidden)
)

// Internal 标记存储层失败，调用方可以安全重试
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
