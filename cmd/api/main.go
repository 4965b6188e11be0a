package main

// @title Census Microservice API
// @version 1.0.0
// @description Сервис выгрузок жителей. Принимает ограниченные партии записей ("выгрузки"),
// @description частично обновляет жителей с транзакционным согласованием симметричного графа
// @description родственных связей и считает перцентили возраста по городам.
// @description
// @description Конкурентные обновления внутри одной выгрузки сериализуются
// @description транзакционной advisory-блокировкой по идентификатору выгрузки.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/census-microservice/docs"
	"github.com/census-microservice/internal/config"
	httpDelivery "github.com/census-microservice/internal/delivery/http"
	"github.com/census-microservice/internal/delivery/http/handler"
	"github.com/census-microservice/internal/pkg/logger"
	"github.com/census-microservice/internal/pkg/metrics"
	"github.com/census-microservice/internal/repository/cache"
	"github.com/census-microservice/internal/repository/postgres"
	"github.com/census-microservice/internal/usecase"
	"github.com/census-microservice/internal/worker"
	statsworker "github.com/census-microservice/internal/worker/stats"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Census Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	txManager := postgres.NewTxManager(db, log)
	citizenRepo := postgres.NewCitizenRepository(db, log)
	importRepo := postgres.NewImportRepository(db, log)
	statRepo := postgres.NewStatRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Metrics
	m := metrics.New()

	// 8. Initialize Use Cases
	citizenUC := usecase.NewCitizenUseCase(
		txManager,
		citizenRepo,
		importRepo,
		cacheRepo,
		m,
		log,
	)

	importUC := usecase.NewImportUseCase(
		txManager,
		m,
		log,
	)

	statUC := usecase.NewStatUseCase(
		statRepo,
		importRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	citizenHandler := handler.NewCitizenHandler(citizenUC, log)
	importHandler := handler.NewImportHandler(importUC, log)
	statHandler := handler.NewStatHandler(statUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		m,
		citizenHandler,
		importHandler,
		statHandler,
		db,
		redisClient,
	)

	log.Info("HTTP server initialized")

	// 11. Background workers (optional)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var workerManager *worker.WorkerManager
	if cfg.Worker.StatsRefreshEnabled {
		workerManager = worker.NewWorkerManager(log)
		workerManager.Register(statsworker.NewRefresherWorker(
			statRepo,
			importRepo,
			cacheRepo,
			cfg.Worker.StatsRefreshInterval,
			cfg.Worker.StatsRefreshImports,
			cfg.Cache.StatsCacheTTL,
			log,
		))
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	if workerManager != nil {
		if err := workerManager.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
