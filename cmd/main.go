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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/coverage_map/internal/config"
	"github.com/shenikar/coverage_map/internal/dataset"
	v1 "github.com/shenikar/coverage_map/internal/handler/http/v1"
	"github.com/shenikar/coverage_map/internal/refresh"
	"github.com/shenikar/coverage_map/internal/repository"
	"github.com/shenikar/coverage_map/internal/service"
	"github.com/shenikar/coverage_map/pkg/logger"
	"github.com/shenikar/coverage_map/pkg/postgres"
	redisclient "github.com/shenikar/coverage_map/pkg/redis"

	_ "github.com/shenikar/coverage_map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Coverage Map API
// @version 1.0
// @description Health insurance coverage by state: ranked chart data and a normalized choropleth overlay.
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

// loadDatasets выполняет первичную загрузку; ошибки не мешают запуску
func loadDatasets(ctx context.Context, coverageService service.CoverageService, log *logrus.Logger) {
	if err := coverageService.LoadRecords(ctx); err != nil {
		log.WithError(err).Warn("Initial load of population dataset failed")
	}
	if err := coverageService.LoadOutlines(ctx); err != nil {
		log.WithError(err).Warn("Initial load of outline dataset failed")
	}
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AddAllowHeaders("X-API-Key", "Authorization")
	return corsCfg
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

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

	// Источники наборов данных
	recordsSource, err := dataset.NewSource(cfg.RecordsSource, cfg.FetchTimeout)
	if err != nil {
		log.Fatalf("Invalid population dataset source: %v", err)
	}
	outlinesSource, err := dataset.NewSource(cfg.OutlinesSource, cfg.FetchTimeout)
	if err != nil {
		log.Fatalf("Invalid outline dataset source: %v", err)
	}

	// Инициализация репозиториев
	payloadCache := repository.NewPayloadCache(redisClient, cfg.CacheTTL)
	projectRepo := repository.NewProjectRepository(dbpool)

	// Инициализация сервисов
	coverageService := service.NewCoverageService(recordsSource, outlinesSource, payloadCache, log)
	projectService := service.NewProjectService(projectRepo, log)

	loadDatasets(ctx, coverageService, log)

	// Очередь перезагрузки: издатель, воркер и планировщик
	refreshPublisher := refresh.NewRedisPublisher(redisClient)
	refresh.NewWorker(redisClient, coverageService, log).Start(ctx)
	refresh.NewScheduler(refreshPublisher, cfg.RefreshInterval, log).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(coverageService, projectService, refreshPublisher, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
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
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
