package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	quizCacheKeyPrefix      = "lms:quiz:"
	questionsCacheKeyPrefix = "lms:quiz_questions:"
)

// CachedQuizCatalog 在题库前加一层 Redis 缓存；已发布题目不可修改，按 TTL 过期即可。
// Redis 出错时记录日志并回源数据库。
type CachedQuizCatalog struct {
	next  QuestionCatalog
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedQuizCatalog(next QuestionCatalog, rdb *redis.Client, ttl time.Duration) *CachedQuizCatalog {
	return &CachedQuizCatalog{next: next, redis: rdb, ttl: ttl}
}

func (c *CachedQuizCatalog) FindQuiz(ctx context.Context, quizID uint) (*model.Quiz, error) {
	key := fmt.Sprintf("%s%d", quizCacheKeyPrefix, quizID)

	var quiz model.Quiz
	if c.load(ctx, key, &quiz) {
		return &quiz, nil
	}

	found, err := c.next.FindQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, found)
	return found, nil
}

func (c *CachedQuizCatalog) ListQuestions(ctx context.Context, quizID uint) ([]model.QuizQuestion, error) {
	key := fmt.Sprintf("%s%d", questionsCacheKeyPrefix, quizID)

	var qs []model.QuizQuestion
	if c.load(ctx, key, &qs) {
		return qs, nil
	}

	qs, err := c.next.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	// 空列表不缓存，避免试卷创建前的探测请求污染缓存
	if len(qs) > 0 {
		c.store(ctx, key, qs)
	}
	return qs, nil
}

func (c *CachedQuizCatalog) load(ctx context.Context, key string, dest interface{}) bool {
	val, err := c.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Log.Warn("quiz cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		logger.Log.Warn("quiz cache entry corrupted", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedQuizCatalog) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Log.Warn("quiz cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Log.Warn("quiz cache write failed", zap.String("key", key), zap.Error(err))
	}
}
