package database

import (
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const submissionAttemptFK = "fk_quiz_submissions_attempt"

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate 建表并补充外键，attempt 删除时级联删除作答记录
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.QuizAttempt{},
		&model.QuizSubmission{},
	)
	if err != nil {
		return err
	}

	if db.Dialector.Name() == "mysql" && !db.Migrator().HasConstraint(&model.QuizSubmission{}, submissionAttemptFK) {
		err = db.Exec("ALTER TABLE quiz_submissions ADD CONSTRAINT " + submissionAttemptFK +
			" FOREIGN KEY (attempt_id) REFERENCES quiz_attempts(id) ON DELETE CASCADE").Error
		if err != nil {
			return err
		}
	}

	log.Println("Database migration completed")
	return nil
}
