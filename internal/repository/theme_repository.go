//go:generate mockery --name ThemeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThemeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, themes ...*model.Theme) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, themeID string) (*model.Theme, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Theme, error)
	Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, themeID string) error
}

type gormThemeRepository struct{}

func NewGormThemeRepository() ThemeRepository {
	return &gormThemeRepository{}
}

func (r *gormThemeRepository) Create(ctx context.Context, tx *gorm.DB, themes ...*model.Theme) error {
	if len(themes) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(themes)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate theme id", "error", result.Error, "tenant_id", themes[0].TenantID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating themes in DB",
			"error", result.Error,
			"tenant_id", themes[0].TenantID.String(),
			"count", len(themes),
		)
		return fmt.Errorf("gormThemeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormThemeRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, themeID string) (*model.Theme, error) {
	logger := middleware.GetLogger(ctx)
	var theme model.Theme
	result := db.WithContext(ctx).Where("tenant_id = ? AND theme_id = ?", tenantID, themeID).First(&theme)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding theme by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"theme_id", themeID,
		)
		return nil, fmt.Errorf("gormThemeRepository.FindByID: %w", result.Error)
	}
	return &theme, nil
}

func (r *gormThemeRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Theme, error) {
	logger := middleware.GetLogger(ctx)
	var themes []*model.Theme
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at ASC, theme_id ASC").Find(&themes)
	if result.Error != nil {
		logger.Error("Error finding themes by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormThemeRepository.FindByTenant: %w", result.Error)
	}
	return themes, nil
}

func (r *gormThemeRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, themeID string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND theme_id = ?", tenantID, themeID).Delete(&model.Theme{})
	if result.Error != nil {
		logger.Error("Error deleting theme in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"theme_id", themeID,
		)
		return fmt.Errorf("gormThemeRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
