//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.UserProgress, error)
	FindByTenantForUpdate(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) (*model.UserProgress, error)
	Save(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// Create は進捗と実績をまとめて作成します。
func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating user progress in DB",
			"error", result.Error,
			"tenant_id", progress.TenantID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.UserProgress, error) {
	return r.find(ctx, db.WithContext(ctx), tenantID, "FindByTenant")
}

// FindByTenantForUpdate は同じテナントのセッション完了が同時に走っても進捗が失われないよう行ロックを取ります。
func (r *gormProgressRepository) FindByTenantForUpdate(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) (*model.UserProgress, error) {
	return r.find(ctx, tx.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), tenantID, "FindByTenantForUpdate")
}

func (r *gormProgressRepository) find(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, op string) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserProgress
	result := db.
		Preload("Achievements", func(db *gorm.DB) *gorm.DB { return db.Order("target ASC, achievement_id ASC") }).
		Where("tenant_id = ?", tenantID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user progress in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.%s: %w", op, result.Error)
	}
	return &progress, nil
}

// Save は進捗の累計値と各実績の進捗を書き戻します。
func (r *gormProgressRepository) Save(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	logger := middleware.GetLogger(ctx)
	db := tx.WithContext(ctx)
	if err := db.Omit(clause.Associations).Save(progress).Error; err != nil {
		logger.Error("Error saving user progress in DB",
			"error", err,
			"tenant_id", progress.TenantID.String(),
		)
		return fmt.Errorf("gormProgressRepository.Save: %w", err)
	}
	for i := range progress.Achievements {
		a := &progress.Achievements[i]
		if err := db.Save(a).Error; err != nil {
			logger.Error("Error saving achievement in DB",
				"error", err,
				"tenant_id", progress.TenantID.String(),
				"achievement_id", a.AchievementID,
			)
			return fmt.Errorf("gormProgressRepository.Save: %w", err)
		}
	}
	return nil
}
