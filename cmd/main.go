// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/handlers"
	"vocab_drill/internal/repository"
	"vocab_drill/internal/service"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig(configPath()); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	log.Println("Log Config Loaded...")

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. DB接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	themeRepo := repository.NewGormThemeRepository()
	wordRepo := repository.NewGormWordRepository()
	sessionRepo := repository.NewGormSessionRepository()
	progressRepo := repository.NewGormProgressRepository()

	mailer := service.NewMailer(&config.Cfg)
	recommendationService := service.NewRecommendationService(db, wordRepo, sessionRepo, progressRepo, config.Cfg.App)
	services := handlers.Services{
		Auth:           service.NewAuthService(db, tenantRepo, themeRepo, wordRepo, progressRepo, config.Cfg.JWT),
		Theme:          service.NewThemeService(db, themeRepo, wordRepo),
		Word:           service.NewWordService(db, wordRepo, themeRepo),
		Practice:       service.NewPracticeService(db, wordRepo, sessionRepo, progressRepo, tenantRepo, mailer, config.Cfg.App),
		Progress:       service.NewProgressService(db, wordRepo, sessionRepo, progressRepo, recommendationService),
		Recommendation: recommendationService,
	}

	// 3. Router
	r := handlers.NewRouter(&config.Cfg, db, services, logger)

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
