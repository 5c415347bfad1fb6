package model

import "time"

// QuizAttempt 一次完整的交卷记录，创建后不可修改
type QuizAttempt struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID      uint      `gorm:"not null;index:idx_attempt_quiz_user_time,priority:1" json:"quizId"`
	UserID      uint      `gorm:"not null;index:idx_attempt_quiz_user_time,priority:2" json:"userId"`
	Score       int       `gorm:"not null;default:0" json:"score"`
	Total       int       `gorm:"not null;default:0" json:"total"`
	AttemptedAt time.Time `gorm:"not null;index:idx_attempt_quiz_user_time,priority:3" json:"attemptedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizSubmission 某次作答中对单个题目的答案，同一 attempt 每题最多一行
type QuizSubmission struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AttemptID  uint      `gorm:"not null;uniqueIndex:idx_submission_attempt_question,priority:1" json:"attemptId"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_submission_attempt_question,priority:2" json:"questionId"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	Answer     string    `gorm:"size:255;not null" json:"answer"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"isCorrect"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}
