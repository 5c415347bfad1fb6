package app

import (
	"context"
	"errors"
	"lms_backend/internal/config"
	"lms_backend/internal/controller"
	"lms_backend/internal/repository"
	"lms_backend/internal/service"
	"lms_backend/pkg/configwatcher"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"
	"lms_backend/pkg/monitoring"
	"lms_backend/pkg/security"
	"lms_backend/pkg/tracing"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configDir = "configs"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	limiter         *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	quiz       *repository.QuizRepository
	catalog    repository.QuestionCatalog
	attempt    *repository.QuizAttemptRepository
	submission *repository.QuizSubmissionRepository
}

type services struct {
	quiz    *service.QuizService
	attempt *service.QuizAttemptService
	history *service.QuizHistoryService
	summary *service.QuizSummaryService
}

type controllers struct {
	quiz    *controller.QuizController
	attempt *controller.QuizAttemptController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	quiz := repository.NewQuizRepository(db)

	// 题目缓存，QuestionTTL 为 0 或没有 Redis 时直接读库
	var catalog repository.QuestionCatalog = quiz
	if rdb != nil && cfg.Cache.QuestionTTL > 0 {
		catalog = repository.NewCachedQuizCatalog(quiz, rdb, cfg.Cache.QuestionTTL)
	}

	return &repositories{
		quiz:       quiz,
		catalog:    catalog,
		attempt:    repository.NewQuizAttemptRepository(db),
		submission: repository.NewQuizSubmissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, db *gorm.DB) *services {
	return &services{
		quiz:    service.NewQuizService(repos.catalog, repos.quiz),
		attempt: service.NewQuizAttemptService(db, repos.catalog, repos.attempt, repos.submission),
		history: service.NewQuizHistoryService(repos.catalog, repos.attempt),
		summary: service.NewQuizSummaryService(repos.catalog, repos.attempt, repos.submission),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		quiz:    controller.NewQuizController(s.quiz),
		attempt: controller.NewQuizAttemptController(s.attempt, s.history, s.summary),
		health:  controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 组装路由和依赖，不做任何外部连接，便于测试
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	gin.SetMode(cfg.Server.Mode)

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, db)
	controllers := app.initControllers(services, db, rdb)

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
		app.limiter.Update(newCfg.RateLimit.MaxRequests, time.Duration(newCfg.RateLimit.WindowMinutes)*time.Minute)
	})

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migrated")
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(context.Background(), &cfg.Redis)
	if err != nil {
		// 缓存不可用时仍可服务，只是每次读库
		logger.Log.Warn("Failed to initialize redis, question cache disabled", zap.Error(err))
	}

	// 监控初始化
	monitoring.Init()

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("lms-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		err := configwatcher.WatchConfig(ctx, filepath.Join(configDir, "config.yaml"), time.Second, a.applyConfig)
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.limiter.Stop()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
