// cmd/migrate/main.go
// テーブルを作成し、必要ならデモ用のアカウントを初期単語帳つきで登録します。
//
//	go run ./cmd/migrate
//	go run ./cmd/migrate -demo-email demo@example.com -demo-password password123
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"vocab_drill/internal/config"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"
	"vocab_drill/internal/service"
)

func main() {
	configDir := flag.String("config", "configs", "config.yaml のあるディレクトリ")
	demoEmail := flag.String("demo-email", "", "登録するデモアカウントのメールアドレス")
	demoPassword := flag.String("demo-password", "", "デモアカウントのパスワード")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configDir); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Migration completed")

	if *demoEmail == "" {
		return
	}
	if *demoPassword == "" {
		logger.Error("-demo-password is required with -demo-email")
		os.Exit(2)
	}

	auth := service.NewAuthService(
		db,
		repository.NewGormTenantRepository(),
		repository.NewGormThemeRepository(),
		repository.NewGormWordRepository(),
		repository.NewGormProgressRepository(),
		config.Cfg.JWT,
	)
	tenant, err := auth.Register(context.Background(), &model.RegisterRequest{
		Name:     "demo",
		Email:    *demoEmail,
		Password: *demoPassword,
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Info("Demo account already exists", slog.String("email", *demoEmail))
			return
		}
		logger.Error("Failed to register demo account", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Demo account registered", slog.String("tenant_id", tenant.TenantID.String()), slog.String("email", tenant.Email))
}
