package repository

import (
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/pkg/database"
	"strings"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func choices(values ...string) datatypes.JSON {
	return datatypes.JSON(`["` + strings.Join(values, `","`) + `"]`)
}

func seedQuiz(t *testing.T, db *gorm.DB) (*model.Quiz, []model.QuizQuestion) {
	t.Helper()
	quiz := &model.Quiz{Title: "Go basics"}
	// 故意倒序写入，读取时应按 order_index 排序
	questions := []model.QuizQuestion{
		{Prompt: "Second", Choices: choices("A", "B"), CorrectAnswer: "B", OrderIndex: 1},
		{Prompt: "First", Choices: choices("A", "B"), CorrectAnswer: "A", OrderIndex: 0},
	}
	if err := NewQuizRepository(db).CreateQuiz(t.Context(), quiz, questions); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return quiz, questions
}
