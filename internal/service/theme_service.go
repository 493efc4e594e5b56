//go:generate mockery --name ThemeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThemeService interface {
	ListThemes(ctx context.Context, tenantID uuid.UUID) ([]*model.Theme, error)
	CreateTheme(ctx context.Context, tenantID uuid.UUID, req *model.PostThemeRequest) (*model.Theme, error)
	DeleteTheme(ctx context.Context, tenantID uuid.UUID, themeID string) error
}

type themeService struct {
	db        *gorm.DB
	themeRepo repository.ThemeRepository
	wordRepo  repository.WordRepository
}

func NewThemeService(db *gorm.DB, themeRepo repository.ThemeRepository, wordRepo repository.WordRepository) ThemeService {
	return &themeService{
		db:        db,
		themeRepo: themeRepo,
		wordRepo:  wordRepo,
	}
}

// ListThemes はテーマ一覧を返します。WordCount は毎回単語から集計します。
func (s *themeService) ListThemes(ctx context.Context, tenantID uuid.UUID) ([]*model.Theme, error) {
	themes, err := s.themeRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テーマの取得に失敗しました。", "", err)
	}
	counts, err := s.wordRepo.CountByTheme(ctx, s.db, tenantID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語数の集計に失敗しました。", "", err)
	}
	for _, th := range themes {
		th.WordCount = counts[th.ThemeID]
	}
	return themes, nil
}

func (s *themeService) CreateTheme(ctx context.Context, tenantID uuid.UUID, req *model.PostThemeRequest) (*model.Theme, error) {
	logger := middleware.GetLogger(ctx)

	themeID := strings.TrimSpace(req.ThemeID)
	if themeID == "" || strings.EqualFold(themeID, model.MixedThemeID) {
		return nil, model.NewAppError("INVALID_THEME_ID", "このテーマIDは使用できません。", "theme_id", model.ErrInvalidInput)
	}

	theme := &model.Theme{
		TenantID:    tenantID,
		ThemeID:     themeID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Color:       req.Color,
	}
	if err := s.themeRepo.Create(ctx, s.db, theme); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_THEME", "同じIDのテーマが既に存在します。", "theme_id", model.ErrConflict)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テーマの作成に失敗しました。", "", err)
	}

	logger.Info("Theme created", "theme_id", themeID)
	return theme, nil
}

// DeleteTheme は単語が残っているテーマの削除を拒否します。
func (s *themeService) DeleteTheme(ctx context.Context, tenantID uuid.UUID, themeID string) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.themeRepo.FindByID(ctx, tx, tenantID, themeID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("THEME_NOT_FOUND", "テーマが見つかりません。", "theme_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "テーマの取得に失敗しました。", "", err)
		}

		counts, err := s.wordRepo.CountByTheme(ctx, tx, tenantID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語数の集計に失敗しました。", "", err)
		}
		if n := counts[themeID]; n > 0 {
			logger.Warn("Theme still has words", "theme_id", themeID, "word_count", n)
			return model.NewAppError("THEME_IN_USE", "単語が登録されているテーマは削除できません。", "theme_id", model.ErrConflict)
		}

		if err := s.themeRepo.Delete(ctx, tx, tenantID, themeID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("THEME_NOT_FOUND", "テーマが見つかりません。", "theme_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "テーマの削除に失敗しました。", "", err)
		}
		logger.Info("Theme deleted", "theme_id", themeID)
		return nil
	})
}
