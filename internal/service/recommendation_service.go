//go:generate mockery --name RecommendationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/learning"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// recentSessionLimit は推薦と進捗画面で参照する直近セッション数
const recentSessionLimit = 5

type RecommendationService interface {
	GetRecommendations(ctx context.Context, tenantID uuid.UUID, themeID string) ([]model.RecommendationEntry, error)
}

type recommendationService struct {
	db           *gorm.DB
	wordRepo     repository.WordRepository
	sessionRepo  repository.SessionRepository
	progressRepo repository.ProgressRepository
	cfg          config.AppConfig
	now          func() time.Time
}

func NewRecommendationService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	sessionRepo repository.SessionRepository,
	progressRepo repository.ProgressRepository,
	cfg config.AppConfig,
) RecommendationService {
	return &recommendationService{
		db:           db,
		wordRepo:     wordRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, tenantID uuid.UUID, themeID string) ([]model.RecommendationEntry, error) {
	themeID = strings.TrimSpace(themeID)
	filter := repository.WordFilter{}
	if !learning.IsMixedTheme(themeID) {
		filter.ThemeID = themeID
	}
	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID, filter)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	sessions, err := s.sessionRepo.FindRecent(ctx, s.db, tenantID, recentSessionLimit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション履歴の取得に失敗しました。", "", err)
	}
	progress, err := s.progressRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
	}

	recs := learning.Recommend(words, sessions, progress, s.now())
	if limit := s.cfg.RecommendationLimit; limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}
