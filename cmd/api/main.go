package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentrank/internal/app"
	"talentrank/internal/config"
	"talentrank/internal/database"
	apphttp "talentrank/internal/http"
	"talentrank/internal/http/handlers"
	"talentrank/internal/http/metrics"
	httpmw "talentrank/internal/http/middleware"
	"talentrank/internal/http/response"
	"talentrank/internal/observability"
	"talentrank/internal/repository/postgres"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db, err := database.NewPostgres(context.Background(), database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
		PingTimeout:     cfg.DBPingTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	positionRepo := postgres.NewPositionRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	positionService := app.NewPositionService(positionRepo, analyticsRepo)
	importService := app.NewImportService(candidateRepo, positionRepo, analyticsRepo)
	rankingService := app.NewRankingService(candidateRepo, positionRepo, analyticsRepo, logger)
	candidateService := app.NewCandidateService(candidateRepo, positionRepo, analyticsRepo)

	var limiter httpmw.Limiter = httpmw.NewMemoryLimiter()
	if redisClient := database.NewRedis(cfg.RedisURL); redisClient != nil {
		defer redisClient.Close()
		limiter = httpmw.NewRedisLimiter(redisClient)
		logger.Info("rate limiting backed by redis")
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	positionHandler := handlers.NewPositionHandler(positionService)
	candidateHandler := handlers.NewCandidateHandler(importService, rankingService, candidateService, limiter, collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		PositionHandler:  positionHandler,
		CandidateHandler: candidateHandler,
		MetricsHandler:   handlers.NewMetricsHandler(collector),
		Metrics:          collector,
		Logger:           logger,
		RequestTimeout:   cfg.RequestTimeout,
		MaxBodyBytes:     cfg.MaxUploadBytes,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
