//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
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

// WordFilter は単語一覧の絞り込み条件。ThemeID が空なら全テーマ。
type WordFilter struct {
	ThemeID string
}

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, words ...*model.WordCard) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.WordCard, error)
	FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uuid.UUID) ([]*model.WordCard, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter WordFilter) ([]*model.WordCard, error)
	CountByTheme(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (map[string]int, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID, updates map[string]interface{}) error
	UpdateStats(ctx context.Context, tx *gorm.DB, word *model.WordCard) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, words ...*model.WordCard) error {
	if len(words) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(words)
	if result.Error != nil {
		logger.Error("Error creating words in DB",
			"error", result.Error,
			"tenant_id", words[0].TenantID.String(),
			"count", len(words),
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.WordCard, error) {
	logger := middleware.GetLogger(ctx)
	var word model.WordCard
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// FindByIDs は指定IDの単語を返します。削除済みや存在しないIDは結果に含まれません。
func (r *gormWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uuid.UUID) ([]*model.WordCard, error) {
	words := []*model.WordCard{}
	if len(wordIDs) == 0 {
		return words, nil
	}
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("tenant_id = ? AND word_id IN ?", tenantID, wordIDs).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by IDs in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"count", len(wordIDs),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByIDs: %w", result.Error)
	}
	return words, nil
}

// FindByTenant は作成順に単語を返します。推薦の同点時の順序はこの並びに従います。
func (r *gormWordRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter WordFilter) ([]*model.WordCard, error) {
	logger := middleware.GetLogger(ctx)
	words := []*model.WordCard{}
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.ThemeID != "" {
		query = query.Where("theme_id = ?", filter.ThemeID)
	}
	result := query.Order("created_at ASC, word_id ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"theme_id", filter.ThemeID,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByTenant: %w", result.Error)
	}
	return words, nil
}

type themeCount struct {
	ThemeID string
	Count   int
}

// CountByTheme はテーマごとの単語数を集計します。
func (r *gormWordRepository) CountByTheme(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (map[string]int, error) {
	logger := middleware.GetLogger(ctx)
	var rows []themeCount
	result := db.WithContext(ctx).Model(&model.WordCard{}).
		Select("theme_id, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("theme_id").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting words by theme in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.CountByTheme: %w", result.Error)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ThemeID] = row.Count
	}
	return counts, nil
}

func (r *gormWordRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.WordCard{}).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating word in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpdateStats は回答結果による統計値だけを書き戻します。
func (r *gormWordRepository) UpdateStats(ctx context.Context, tx *gorm.DB, word *model.WordCard) error {
	return r.Update(ctx, tx, word.TenantID, word.WordID, map[string]interface{}{
		"correct_count":    word.CorrectCount,
		"incorrect_count":  word.IncorrectCount,
		"streak":           word.Streak,
		"last_reviewed_at": word.LastReviewedAt,
	})
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ? AND word_id = ?", tenantID, wordID).Delete(&model.WordCard{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
