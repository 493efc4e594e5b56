//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository は完了済みセッションの履歴を扱います。更新・削除は提供しません。
type SessionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error
	FindRecent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.PracticeSession, error)
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(session)
	if result.Error != nil {
		logger.Error("Error creating practice session in DB",
			"error", result.Error,
			"tenant_id", session.TenantID.String(),
			"session_id", session.SessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.Create: %w", result.Error)
	}
	return nil
}

// FindRecent は完了日時の新しい順にセッションを返します。limit が0以下なら全件。
func (r *gormSessionRepository) FindRecent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.PracticeSession, error) {
	logger := middleware.GetLogger(ctx)
	sessions := []*model.PracticeSession{}
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("completed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&sessions); result.Error != nil {
		logger.Error("Error finding recent sessions in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"limit", limit,
		)
		return nil, fmt.Errorf("gormSessionRepository.FindRecent: %w", result.Error)
	}
	return sessions, nil
}
