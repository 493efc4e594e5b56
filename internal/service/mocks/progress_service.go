package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ProgressService is a mock type for the ProgressService type
type ProgressService struct {
	mock.Mock
}

func (_m *ProgressService) GetProgress(ctx context.Context, tenantID uuid.UUID) (*model.ProgressResponse, error) {
	ret := _m.Called(ctx, tenantID)
	var r0 *model.ProgressResponse
	if v, ok := ret.Get(0).(*model.ProgressResponse); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
