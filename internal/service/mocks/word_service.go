package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// WordService is a mock type for the WordService type
type WordService struct {
	mock.Mock
}

func (_m *WordService) CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.WordCard, error) {
	ret := _m.Called(ctx, tenantID, req)
	var r0 *model.WordCard
	if v, ok := ret.Get(0).(*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordService) GetWord(ctx context.Context, tenantID uuid.UUID, wordID uuid.UUID) (*model.WordCard, error) {
	ret := _m.Called(ctx, tenantID, wordID)
	var r0 *model.WordCard
	if v, ok := ret.Get(0).(*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordService) ListWords(ctx context.Context, tenantID uuid.UUID, themeID string) ([]*model.WordCard, error) {
	ret := _m.Called(ctx, tenantID, themeID)
	var r0 []*model.WordCard
	if v, ok := ret.Get(0).([]*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordService) UpdateWord(ctx context.Context, tenantID uuid.UUID, wordID uuid.UUID, req *model.PutWordRequest) (*model.WordCard, error) {
	ret := _m.Called(ctx, tenantID, wordID, req)
	var r0 *model.WordCard
	if v, ok := ret.Get(0).(*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordService) PatchWord(ctx context.Context, tenantID uuid.UUID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.WordCard, error) {
	ret := _m.Called(ctx, tenantID, wordID, req)
	var r0 *model.WordCard
	if v, ok := ret.Get(0).(*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordService) DeleteWord(ctx context.Context, tenantID uuid.UUID, wordID uuid.UUID) error {
	ret := _m.Called(ctx, tenantID, wordID)
	return ret.Error(0)
}
