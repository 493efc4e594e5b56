package mocks

import (
	"context"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// SessionRepository is a mock type for the SessionRepository type
type SessionRepository struct {
	mock.Mock
}

func (_m *SessionRepository) Create(ctx context.Context, tx *gorm.DB, session *model.PracticeSession) error {
	ret := _m.Called(ctx, tx, session)
	return ret.Error(0)
}

func (_m *SessionRepository) FindRecent(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.PracticeSession, error) {
	ret := _m.Called(ctx, db, tenantID, limit)
	var r0 []*model.PracticeSession
	if v, ok := ret.Get(0).([]*model.PracticeSession); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}
