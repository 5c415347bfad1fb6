package service

import (
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"
	"strings"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	DB        *gorm.DB
	Quiz      *model.Quiz
	Q1, Q2    model.QuizQuestion
	Attempts  *QuizAttemptService
	History   *QuizHistoryService
	Summaries *QuizSummaryService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)), &gorm.Config{
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

// newFixture 准备一张两题试卷：Q1 答案 A，Q2 答案 B
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	quizRepo := repository.NewQuizRepository(db)
	quiz := &model.Quiz{Title: "Go basics"}
	questions := []model.QuizQuestion{
		{Prompt: "Q2", Choices: datatypes.JSON(`["A","B"]`), CorrectAnswer: "B", OrderIndex: 1},
		{Prompt: "Q1", Choices: datatypes.JSON(`["A","X"]`), CorrectAnswer: "A", OrderIndex: 0},
	}
	if err := quizRepo.CreateQuiz(t.Context(), quiz, questions); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	attempts := repository.NewQuizAttemptRepository(db)
	submissions := repository.NewQuizSubmissionRepository(db)

	f := &fixture{
		DB:        db,
		Quiz:      quiz,
		Q1:        questions[1],
		Q2:        questions[0],
		Attempts:  NewQuizAttemptService(db, quizRepo, attempts, submissions),
		History:   NewQuizHistoryService(quizRepo, attempts),
		Summaries: NewQuizSummaryService(quizRepo, attempts, submissions),
	}

	// 固定递增的时钟，保证历史排序可预期
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	tick := 0
	f.Attempts.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return f
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

// failSubmissionInserts 让 quiz_submissions 的插入失败
func failSubmissionInserts(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_submissions", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "quiz_submissions" {
			tx.AddError(errors.New("injected insert failure"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}
