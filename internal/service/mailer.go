//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"vocab_drill/internal/config"
	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer はメールを送信せずにログへ出力します。開発環境用。
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// NewMailer は mailer.type に応じた Mailer を返します。
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "ses":
		logger.Info("Initializing SES mailer...")
		return NewSESMailer(cfg)
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}
	}
}

// achievementNotice は実績解除の通知メールの件名と本文を組み立てます。
func achievementNotice(name string, unlocked []model.Achievement) (string, string) {
	titles := make([]string, 0, len(unlocked))
	var b strings.Builder
	fmt.Fprintf(&b, "%s さん、おめでとうございます！新しい実績を解除しました。\n\n", name)
	for _, a := range unlocked {
		titles = append(titles, a.Title)
		fmt.Fprintf(&b, "%s %s: %s\n", a.Icon, a.Title, a.Description)
	}
	subject := fmt.Sprintf("【%s】実績解除: %s", config.AppName, strings.Join(titles, ", "))
	return subject, b.String()
}
