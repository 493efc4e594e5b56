//go:generate mockery --name TenantRepository --output ./mocks --outpkg mocks --case=underscore
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

// TenantRepository は学習者アカウントの永続化を担います。
// メールアドレスは呼び出し側で正規化してから渡します。
type TenantRepository interface {
	Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error)
}

type gormTenantRepository struct{}

func NewGormTenantRepository() TenantRepository {
	return &gormTenantRepository{}
}

func (r *gormTenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(tenant)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate tenant name or email", "error", result.Error, "tenant_id", tenant.TenantID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating tenant in DB", "error", result.Error, "tenant_id", tenant.TenantID.String())
		return fmt.Errorf("gormTenantRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	return r.findOne(ctx, db, "FindByID", "tenant_id = ?", tenantID)
}

func (r *gormTenantRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error) {
	return r.findOne(ctx, db, "FindByEmail", "email = ?", email)
}

func (r *gormTenantRepository) findOne(ctx context.Context, db *gorm.DB, op, query string, arg interface{}) (*model.Tenant, error) {
	var tenant model.Tenant
	result := db.WithContext(ctx).Where(query, arg).First(&tenant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding tenant in DB", "error", result.Error, "op", op)
		return nil, fmt.Errorf("gormTenantRepository.%s: %w", op, result.Error)
	}
	return &tenant, nil
}
