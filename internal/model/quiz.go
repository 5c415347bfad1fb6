package model

import (
	"encoding/json"
	"lms_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion 判分视图，包含标准答案，只在服务内部使用
type QuizQuestion struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID        uint           `gorm:"not null;uniqueIndex:idx_quiz_question_order,priority:1" json:"quizId"`
	Prompt        string         `gorm:"type:text;not null" json:"prompt"`
	Choices       datatypes.JSON `json:"choices"`
	CorrectAnswer string         `gorm:"size:255;not null" json:"correctAnswer"`
	OrderIndex    int            `gorm:"not null;uniqueIndex:idx_quiz_question_order,priority:2" json:"orderIndex"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// swagger:model PublicQuestion
// PublicQuestion 答题者可见的题目，没有标准答案字段
type PublicQuestion struct {
	ID         uint     `json:"id"`
	QuizID     uint     `json:"quizId"`
	Prompt     string   `json:"prompt"`
	Choices    []string `json:"choices"`
	OrderIndex int      `json:"orderIndex"`
}

// Public 去掉标准答案
func (q QuizQuestion) Public() PublicQuestion {
	choices := []string{}
	if len(q.Choices) > 0 {
		if err := json.Unmarshal(q.Choices, &choices); err != nil {
			logger.Log.Warn("quiz question choices corrupted",
				zap.Uint("questionId", q.ID),
				zap.Uint("quizId", q.QuizID),
				zap.Error(err),
			)
			choices = []string{}
		}
	}
	return PublicQuestion{
		ID:         q.ID,
		QuizID:     q.QuizID,
		Prompt:     q.Prompt,
		Choices:    choices,
		OrderIndex: q.OrderIndex,
	}
}
