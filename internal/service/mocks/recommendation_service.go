package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// RecommendationService is a mock type for the RecommendationService type
type RecommendationService struct {
	mock.Mock
}

func (_m *RecommendationService) GetRecommendations(ctx context.Context, tenantID uuid.UUID, themeID string) ([]model.RecommendationEntry, error) {
	ret := _m.Called(ctx, tenantID, themeID)
	var r0 []model.RecommendationEntry
	if v, ok := ret.Get(0).([]model.RecommendationEntry); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
