package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/credit-scoring-service/internal/config"
	"github.com/Dan9191/credit-scoring-service/internal/handler"
	"github.com/Dan9191/credit-scoring-service/internal/middleware"
	"github.com/Dan9191/credit-scoring-service/internal/repository"
	"github.com/Dan9191/credit-scoring-service/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database. An unreachable database is not fatal: the
	// scoring and static endpoints keep working without it.
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(ctx); err != nil {
		logger.Errorf("Database unreachable: %v", err)
	}
	cancel()

	// Initialize layers
	repo := repository.NewRepository(db)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Errorf("Error ensuring predictions table exists: %v", err)
	}
	cancel()

	svc := service.NewService(repo, logger, cfg)
	svc.Start()
	defer svc.Stop()

	h := handler.NewHandler(svc, logger)

	// Setup router
	router := h.Routes()
	router.Use(middleware.RequestID, middleware.Logging(logger), middleware.Metrics)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
