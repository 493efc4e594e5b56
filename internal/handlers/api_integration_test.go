package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"vocab_drill/internal/config"
	"vocab_drill/internal/handlers"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"
	"vocab_drill/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newIntegrationRouter は実際のサービスとリポジトリをインメモリのSQLiteにつないだルーターを返します。
func newIntegrationRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.AutoMigrate(db))

	cfg := &config.Config{
		App: config.AppConfig{
			RecommendationLimit: config.DefaultRecommendationLimit,
			SessionSize:         config.DefaultSessionSize,
			PointMultiplier:     config.DefaultPointMultiplier,
			SessionTTL:          config.DefaultSessionTTL,
		},
		JWT: config.JWTConfig{SecretKey: "integration-secret", ExpirationHours: 1},
	}
	cfg.Auth.Enabled = true

	tenantRepo := repository.NewGormTenantRepository()
	themeRepo := repository.NewGormThemeRepository()
	wordRepo := repository.NewGormWordRepository()
	sessionRepo := repository.NewGormSessionRepository()
	progressRepo := repository.NewGormProgressRepository()

	recommendationService := service.NewRecommendationService(db, wordRepo, sessionRepo, progressRepo, cfg.App)
	return handlers.NewRouter(cfg, db, handlers.Services{
		Auth:           service.NewAuthService(db, tenantRepo, themeRepo, wordRepo, progressRepo, cfg.JWT),
		Theme:          service.NewThemeService(db, themeRepo, wordRepo),
		Word:           service.NewWordService(db, wordRepo, themeRepo),
		Practice:       service.NewPracticeService(db, wordRepo, sessionRepo, progressRepo, tenantRepo, &service.LogMailer{}, cfg.App),
		Progress:       service.NewProgressService(db, wordRepo, sessionRepo, progressRepo, recommendationService),
		Recommendation: recommendationService,
	}, testLogger)
}

// 登録から練習セッションの完了、進捗の確認までを通しで確認する
func TestAPI_PracticeFlow(t *testing.T) {
	router := newIntegrationRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": "dana", "email": "dana@example.com", "password": "password123"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": "dana@example.com", "password": "password123"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decodeBody[model.LoginResponse](t, rec)
	auth := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	t.Run("異常系: トークンなしは401", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/themes", nil, nil)
		assertErrorResponse(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	rec = doRequest(t, router, http.MethodGet, "/api/v1/themes", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	themes := decodeBody[[]model.Theme](t, rec)
	require.Len(t, themes, 4)
	counts := map[string]int{}
	for _, th := range themes {
		counts[th.ThemeID] = th.WordCount
	}
	assert.Equal(t, 5, counts["food"])

	rec = doRequest(t, router, http.MethodGet, "/api/v1/words?theme_id=food", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	words := decodeBody[[]model.WordCard](t, rec)
	require.Len(t, words, 5)
	byID := map[uuid.UUID]model.WordCard{}
	for _, w := range words {
		byID[w.WordID] = w
	}

	rec = doRequest(t, router, http.MethodPost, "/api/v1/sessions",
		map[string]string{"theme_id": "food", "direction": "source-to-target"}, auth)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	started := decodeBody[model.StartSessionResponse](t, rec)
	require.Len(t, started.Words, 5)
	assert.NotContains(t, rec.Body.String(), "target_text", "正解は返さない")

	answers := make([]model.SubmittedAnswer, 0, len(started.Words))
	for i, pw := range started.Words {
		answer := byID[pw.WordID].TargetText
		if i == 0 {
			answer = "wrong"
		}
		answers = append(answers, model.SubmittedAnswer{WordID: pw.WordID, Answer: answer})
	}
	rec = doRequest(t, router, http.MethodPost, "/api/v1/sessions/"+started.SessionID.String()+"/complete",
		model.CompleteSessionRequest{Answers: answers, DurationMs: 30000}, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	completed := decodeBody[model.CompleteSessionResponse](t, rec)
	assert.Equal(t, 4, completed.Session.Score)
	assert.Equal(t, 40, completed.PointsEarned)
	require.Len(t, completed.UnlockedAchievements, 1)
	assert.Equal(t, model.AchievementFirstWord, completed.UnlockedAchievements[0].AchievementID)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/progress", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	progress := decodeBody[model.ProgressResponse](t, rec)
	assert.Equal(t, 40, progress.Progress.TotalPoints)
	assert.Equal(t, 1, progress.Progress.SessionsCompleted)
	assert.Equal(t, 4, progress.Progress.WordsLearned)
	assert.Equal(t, model.AccuracyStat{Correct: 4, Total: 5, Accuracy: 80}, progress.AccuracyByTheme["food"])
	require.Len(t, progress.RecentSessions, 1)
	assert.Equal(t, 16, progress.DueToday)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/recommendations?theme_id=food", nil, auth)
	require.Equal(t, http.StatusOK, rec.Code)
	recs := decodeBody[[]model.RecommendationEntry](t, rec)
	// 直前に間違えた単語が最優先
	require.NotEmpty(t, recs)
	assert.Equal(t, started.Words[0].WordID, recs[0].Word.WordID)

	t.Run("異常系: 同じセッションは二度完了できない", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/sessions/"+started.SessionID.String()+"/complete",
			model.CompleteSessionRequest{Answers: answers}, auth)
		assertErrorResponse(t, rec, http.StatusNotFound, "SESSION_NOT_FOUND")
	})

	t.Run("異常系: 単語のないテーマは422", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/themes",
			map[string]string{"theme_id": "travel", "name": "Travel"}, auth)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = doRequest(t, router, http.MethodPost, "/api/v1/sessions",
			map[string]string{"theme_id": "travel", "direction": "target-to-source"}, auth)
		assertErrorResponse(t, rec, http.StatusUnprocessableEntity, "NO_WORDS_AVAILABLE")
	})
}
