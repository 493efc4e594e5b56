package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// ProgressRepository is a mock type for the ProgressRepository type
type ProgressRepository struct {
	mock.Mock
}

func (_m *ProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	ret := _m.Called(ctx, tx, progress)
	return ret.Error(0)
}

func (_m *ProgressRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.UserProgress, error) {
	ret := _m.Called(ctx, db, tenantID)
	var r0 *model.UserProgress
	if v, ok := ret.Get(0).(*model.UserProgress); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ProgressRepository) FindByTenantForUpdate(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) (*model.UserProgress, error) {
	ret := _m.Called(ctx, tx, tenantID)
	var r0 *model.UserProgress
	if v, ok := ret.Get(0).(*model.UserProgress); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ProgressRepository) Save(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) error {
	ret := _m.Called(ctx, tx, progress)
	return ret.Error(0)
}
