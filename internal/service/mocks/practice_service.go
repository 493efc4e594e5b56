package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PracticeService is a mock type for the PracticeService type
type PracticeService struct {
	mock.Mock
}

func (_m *PracticeService) StartSession(ctx context.Context, tenantID uuid.UUID, req *model.StartSessionRequest) (*model.StartSessionResponse, error) {
	ret := _m.Called(ctx, tenantID, req)
	var r0 *model.StartSessionResponse
	if v, ok := ret.Get(0).(*model.StartSessionResponse); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *PracticeService) CompleteSession(ctx context.Context, tenantID uuid.UUID, sessionID uuid.UUID, req *model.CompleteSessionRequest) (*model.CompleteSessionResponse, error) {
	ret := _m.Called(ctx, tenantID, sessionID, req)
	var r0 *model.CompleteSessionResponse
	if v, ok := ret.Get(0).(*model.CompleteSessionResponse); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *PracticeService) ListSessions(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.PracticeSession, error) {
	ret := _m.Called(ctx, tenantID, limit)
	var r0 []*model.PracticeSession
	if v, ok := ret.Get(0).([]*model.PracticeSession); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
