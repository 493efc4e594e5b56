//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"vocab_drill/internal/learning"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetProgress(ctx context.Context, tenantID uuid.UUID) (*model.ProgressResponse, error)
}

type progressService struct {
	db              *gorm.DB
	wordRepo        repository.WordRepository
	sessionRepo     repository.SessionRepository
	progressRepo    repository.ProgressRepository
	recommendations RecommendationService
	now             func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	sessionRepo repository.SessionRepository,
	progressRepo repository.ProgressRepository,
	recommendations RecommendationService,
) ProgressService {
	return &progressService{
		db:              db,
		wordRepo:        wordRepo,
		sessionRepo:     sessionRepo,
		progressRepo:    progressRepo,
		recommendations: recommendations,
		now:             time.Now,
	}
}

// GetProgress は累計値と実績に、単語とセッション履歴から集計した分析値を添えて返します。
func (s *progressService) GetProgress(ctx context.Context, tenantID uuid.UUID) (*model.ProgressResponse, error) {
	progress, err := s.progressRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
		}
		progress = &model.UserProgress{TenantID: tenantID, Achievements: model.DefaultAchievements(tenantID)}
	}

	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID, repository.WordFilter{})
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	sessions, err := s.sessionRepo.FindRecent(ctx, s.db, tenantID, recentSessionLimit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション履歴の取得に失敗しました。", "", err)
	}
	recs, err := s.recommendations.GetRecommendations(ctx, tenantID, model.MixedThemeID)
	if err != nil {
		return nil, err
	}

	return &model.ProgressResponse{
		Progress:             progress,
		AccuracyByTheme:      learning.AccuracyBy(words, learning.ByTheme),
		AccuracyByDifficulty: learning.AccuracyBy(words, learning.ByDifficulty),
		RecentSessions:       sessions,
		DueToday:             learning.CountDueToday(words, s.now()),
		Recommendations:      recs,
	}, nil
}
