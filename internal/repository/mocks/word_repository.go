package mocks

import (
	"context"

	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// WordRepository is a mock type for the WordRepository type
type WordRepository struct {
	mock.Mock
}

func (_m *WordRepository) Create(ctx context.Context, tx *gorm.DB, words ...*model.WordCard) error {
	ret := _m.Called(ctx, tx, words)
	return ret.Error(0)
}

func (_m *WordRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, wordID uuid.UUID) (*model.WordCard, error) {
	ret := _m.Called(ctx, db, tenantID, wordID)
	var r0 *model.WordCard
	if v, ok := ret.Get(0).(*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, wordIDs []uuid.UUID) ([]*model.WordCard, error) {
	ret := _m.Called(ctx, db, tenantID, wordIDs)
	var r0 []*model.WordCard
	if v, ok := ret.Get(0).([]*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter repository.WordFilter) ([]*model.WordCard, error) {
	ret := _m.Called(ctx, db, tenantID, filter)
	var r0 []*model.WordCard
	if v, ok := ret.Get(0).([]*model.WordCard); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordRepository) CountByTheme(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (map[string]int, error) {
	ret := _m.Called(ctx, db, tenantID)
	var r0 map[string]int
	if v, ok := ret.Get(0).(map[string]int); ok {
		r0 = v
	}
	return r0, ret.Error(1)
}

func (_m *WordRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID, updates map[string]interface{}) error {
	ret := _m.Called(ctx, tx, tenantID, wordID, updates)
	return ret.Error(0)
}

func (_m *WordRepository) UpdateStats(ctx context.Context, tx *gorm.DB, word *model.WordCard) error {
	ret := _m.Called(ctx, tx, word)
	return ret.Error(0)
}

func (_m *WordRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, wordID uuid.UUID) error {
	ret := _m.Called(ctx, tx, tenantID, wordID)
	return ret.Error(0)
}
