package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"
	"vocab_drill/internal/repository/mocks"
	servicemocks "vocab_drill/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reviewedCard(themeID string, difficulty model.Difficulty, correct, incorrect int, reviewed *time.Time) *model.WordCard {
	return &model.WordCard{
		WordID:         uuid.New(),
		ThemeID:        themeID,
		Difficulty:     difficulty,
		CorrectCount:   correct,
		IncorrectCount: incorrect,
		LastReviewedAt: reviewed,
	}
}

func Test_recommendationService_GetRecommendations(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	deck := make([]*model.WordCard, 0, 15)
	for i := 0; i < 15; i++ {
		deck = append(deck, reviewedCard("food", model.DifficultyHard, 0, 3, nil))
	}

	tests := []struct {
		name       string
		themeID    string
		limit      int
		wantFilter repository.WordFilter
		progress   *model.UserProgress
		progErr    error
		wantLen    int
	}{
		{name: "正常系: 上位10件", themeID: "food", limit: 10, wantFilter: repository.WordFilter{ThemeID: "food"}, progress: &model.UserProgress{}, wantLen: 10},
		{name: "正常系: テーマIDの前後の空白は除く", themeID: " food ", limit: 10, wantFilter: repository.WordFilter{ThemeID: "food"}, progress: &model.UserProgress{}, wantLen: 10},
		{name: "正常系: 設定の件数で切り詰める", themeID: "mixed", limit: 3, wantFilter: repository.WordFilter{}, progress: &model.UserProgress{}, wantLen: 3},
		{name: "正常系: 進捗が未作成でも計算できる", themeID: "", limit: 10, wantFilter: repository.WordFilter{}, progErr: model.ErrNotFound, wantLen: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(mocks.WordRepository)
			sessionRepo := new(mocks.SessionRepository)
			progressRepo := new(mocks.ProgressRepository)
			wordRepo.On("FindByTenant", ctx, mock.Anything, tenantID, tt.wantFilter).Return(deck, nil).Once()
			sessionRepo.On("FindRecent", ctx, mock.Anything, tenantID, 5).Return([]*model.PracticeSession{}, nil).Once()
			progressRepo.On("FindByTenant", ctx, mock.Anything, tenantID).Return(tt.progress, tt.progErr).Once()

			svc := NewRecommendationService(nil, wordRepo, sessionRepo, progressRepo, config.AppConfig{RecommendationLimit: tt.limit}).(*recommendationService)
			svc.now = fixedNow

			recs, err := svc.GetRecommendations(ctx, tenantID, tt.themeID)
			require.NoError(t, err)
			require.Len(t, recs, tt.wantLen)
			// 誤答率 +40, 未復習 +30, 連続正解不足 +20, hard +15
			assert.Equal(t, 105, recs[0].Priority)
			assert.Equal(t, deck[0].WordID, recs[0].Word.WordID)
			wordRepo.AssertExpectations(t)
		})
	}

	t.Run("異常系: 単語の取得に失敗", func(t *testing.T) {
		wordRepo := new(mocks.WordRepository)
		wordRepo.On("FindByTenant", ctx, mock.Anything, tenantID, mock.Anything).Return(nil, errors.New("db down")).Once()
		svc := NewRecommendationService(nil, wordRepo, new(mocks.SessionRepository), new(mocks.ProgressRepository), testAppConfig)

		_, err := svc.GetRecommendations(ctx, tenantID, "food")
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Code)
	})
}

func Test_progressService_GetProgress(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	today := testNow.Add(-2 * time.Hour)
	lastWeek := testNow.AddDate(0, 0, -7)

	words := []*model.WordCard{
		reviewedCard("food", model.DifficultyEasy, 3, 1, &today),
		reviewedCard("food", model.DifficultyHard, 1, 1, &lastWeek),
		reviewedCard("basics", model.DifficultyEasy, 2, 0, &lastWeek),
		reviewedCard("basics", model.DifficultyMedium, 0, 0, nil),
	}
	sessions := []*model.PracticeSession{{SessionID: uuid.New(), Score: 3}}
	recs := []model.RecommendationEntry{{Word: words[1], Priority: 65, Reason: "Due for review, Needs reinforcement"}}

	newService := func(progress *model.UserProgress, progErr error) ProgressService {
		wordRepo := new(mocks.WordRepository)
		sessionRepo := new(mocks.SessionRepository)
		progressRepo := new(mocks.ProgressRepository)
		recService := new(servicemocks.RecommendationService)
		progressRepo.On("FindByTenant", ctx, mock.Anything, tenantID).Return(progress, progErr).Once()
		wordRepo.On("FindByTenant", ctx, mock.Anything, tenantID, repository.WordFilter{}).Return(words, nil).Once()
		sessionRepo.On("FindRecent", ctx, mock.Anything, tenantID, 5).Return(sessions, nil).Once()
		recService.On("GetRecommendations", ctx, tenantID, model.MixedThemeID).Return(recs, nil).Once()

		svc := NewProgressService(nil, wordRepo, sessionRepo, progressRepo, recService).(*progressService)
		svc.now = fixedNow
		return svc
	}

	t.Run("正常系: 正答率・復習対象数・直近セッションを集計する", func(t *testing.T) {
		stored := &model.UserProgress{TenantID: tenantID, TotalPoints: 120, SessionsCompleted: 4}
		resp, err := newService(stored, nil).GetProgress(ctx, tenantID)
		require.NoError(t, err)

		assert.Equal(t, 120, resp.Progress.TotalPoints)
		assert.Equal(t, model.AccuracyStat{Correct: 4, Total: 6, Accuracy: 67}, resp.AccuracyByTheme["food"])
		assert.Equal(t, model.AccuracyStat{Correct: 2, Total: 2, Accuracy: 100}, resp.AccuracyByTheme["basics"])
		assert.Equal(t, model.AccuracyStat{Correct: 5, Total: 6, Accuracy: 83}, resp.AccuracyByDifficulty["easy"])
		_, hasMedium := resp.AccuracyByDifficulty["medium"]
		assert.False(t, hasMedium, "回答のない単語は集計しない")
		assert.Equal(t, 3, resp.DueToday)
		assert.Equal(t, sessions, resp.RecentSessions)
		assert.Equal(t, recs, resp.Recommendations)
	})

	t.Run("正常系: 進捗が未作成なら初期値を返す", func(t *testing.T) {
		resp, err := newService(nil, model.ErrNotFound).GetProgress(ctx, tenantID)
		require.NoError(t, err)
		assert.Zero(t, resp.Progress.TotalPoints)
		assert.Len(t, resp.Progress.Achievements, 3)
	})
}
