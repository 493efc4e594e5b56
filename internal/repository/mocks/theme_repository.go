package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// ThemeRepository is a mock type for the ThemeRepository type
type ThemeRepository struct {
	mock.Mock
}

func (_m *ThemeRepository) Create(ctx context.Context, tx *gorm.DB, themes ...*model.Theme) error {
	ret := _m.Called(ctx, tx, themes)
	return ret.Error(0)
}

func (_m *ThemeRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, themeID string) (*model.Theme, error) {
	ret := _m.Called(ctx, db, tenantID, themeID)
	var r0 *model.Theme
	if v, ok := ret.Get(0).(*model.Theme); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ThemeRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Theme, error) {
	ret := _m.Called(ctx, db, tenantID)
	var r0 []*model.Theme
	if v, ok := ret.Get(0).([]*model.Theme); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ThemeRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, themeID string) error {
	ret := _m.Called(ctx, tx, tenantID, themeID)
	return ret.Error(0)
}
