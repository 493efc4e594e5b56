package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ThemeService is a mock type for the ThemeService type
type ThemeService struct {
	mock.Mock
}

func (_m *ThemeService) ListThemes(ctx context.Context, tenantID uuid.UUID) ([]*model.Theme, error) {
	ret := _m.Called(ctx, tenantID)
	var r0 []*model.Theme
	if v, ok := ret.Get(0).([]*model.Theme); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ThemeService) CreateTheme(ctx context.Context, tenantID uuid.UUID, req *model.PostThemeRequest) (*model.Theme, error) {
	ret := _m.Called(ctx, tenantID, req)
	var r0 *model.Theme
	if v, ok := ret.Get(0).(*model.Theme); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *ThemeService) DeleteTheme(ctx context.Context, tenantID uuid.UUID, themeID string) error {
	ret := _m.Called(ctx, tenantID, themeID)
	return ret.Error(0)
}
