package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// setupTestDB はテストごとに独立したインメモリDBを作成します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.AutoMigrate(db))
	return db
}

// seedTenant はテナント・テーマ・単語をDBに直接用意します。
func seedTenant(t *testing.T, db *gorm.DB, themes map[string][]string) (uuid.UUID, []*model.WordCard) {
	t.Helper()
	ctx := context.Background()
	tenantID := uuid.New()
	require.NoError(t, repository.NewGormTenantRepository().Create(ctx, db, &model.Tenant{
		TenantID:     tenantID,
		Name:         "learner-" + tenantID.String()[:8],
		Email:        tenantID.String()[:8] + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
	}))

	var words []*model.WordCard
	i := 0
	for themeID, sources := range themes {
		require.NoError(t, repository.NewGormThemeRepository().Create(ctx, db, &model.Theme{TenantID: tenantID, ThemeID: themeID, Name: themeID}))
		for _, src := range sources {
			words = append(words, &model.WordCard{
				WordID:     uuid.New(),
				TenantID:   tenantID,
				SourceText: src,
				TargetText: src + "-ko",
				ThemeID:    themeID,
				Difficulty: model.DifficultyEasy,
				CreatedAt:  testNow.Add(time.Duration(i) * time.Millisecond),
			})
			i++
		}
	}
	if len(words) > 0 {
		require.NoError(t, repository.NewGormWordRepository().Create(ctx, db, words...))
	}
	return tenantID, words
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
