package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/robfig/cron/v3"

	"github.com/sinodiaspora/story-map-api/internal/alert"
	"github.com/sinodiaspora/story-map-api/internal/archive"
	"github.com/sinodiaspora/story-map-api/internal/config"
	"github.com/sinodiaspora/story-map-api/internal/geocode"
	v1 "github.com/sinodiaspora/story-map-api/internal/handler/http/v1"
	"github.com/sinodiaspora/story-map-api/internal/repository"
	"github.com/sinodiaspora/story-map-api/internal/service"
	"github.com/sinodiaspora/story-map-api/pkg/logger"
	"github.com/sinodiaspora/story-map-api/pkg/postgres"
	redisclient "github.com/sinodiaspora/story-map-api/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/sinodiaspora/story-map-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Story Map API
// @version 1.0
// @description Backend for the crowdsourced story map of the Sino women's diaspora.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель экстренных событий и воркер их доставки
	alertPublisher := alert.NewRedisPublisher(redisClient)
	alertWorker := alert.NewWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Библиотека материалов раздела акций: первичное сканирование сразу,
	// дальше по расписанию
	library := archive.NewLibrary(cfg.ActionsDir, log)
	if err := library.Rescan(); err != nil {
		log.WithError(err).Warn("Initial actions scan failed, manifest is empty")
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ActionsRescanCron, func() {
		if err := library.Rescan(); err != nil {
			log.WithError(err).Error("Scheduled actions rescan failed")
		}
	}); err != nil {
		log.Fatalf("Invalid actions rescan schedule: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Инициализация репозиториев
	submissionRepo := repository.NewSubmissionRepository(dbpool, redisClient)
	spaceRepo := repository.NewSpaceRepository(dbpool)
	commentRepo := repository.NewCommentRepository(dbpool)
	handoffStore := repository.NewHandoffStore(redisClient, cfg.HandoffTTL)
	draftStore := repository.NewDraftStore(redisClient, cfg.DraftTTL)

	// Геокодер и сервис
	geocoder := geocode.NewNominatimResolver(cfg, log)
	svc := service.New(submissionRepo, spaceRepo, commentRepo, handoffStore, draftStore, geocoder, alertPublisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(svc, library, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
