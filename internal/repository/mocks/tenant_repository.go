package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// TenantRepository is a mock type for the TenantRepository type
type TenantRepository struct {
	mock.Mock
}

func (_m *TenantRepository) Create(ctx context.Context, db *gorm.DB, tenant *model.Tenant) error {
	ret := _m.Called(ctx, db, tenant)
	return ret.Error(0)
}

func (_m *TenantRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.Tenant, error) {
	ret := _m.Called(ctx, db, tenantID)
	var r0 *model.Tenant
	if v, ok := ret.Get(0).(*model.Tenant); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *TenantRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Tenant, error) {
	ret := _m.Called(ctx, db, email)
	var r0 *model.Tenant
	if v, ok := ret.Get(0).(*model.Tenant); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
