package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/stretchr/testify/mock"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Tenant, error) {
	ret := _m.Called(ctx, req)
	var r0 *model.Tenant
	if v, ok := ret.Get(0).(*model.Tenant); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	ret := _m.Called(ctx, req)
	var r0 *model.LoginResponse
	if v, ok := ret.Get(0).(*model.LoginResponse); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
