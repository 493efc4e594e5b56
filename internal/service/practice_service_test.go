package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"
	servicemocks "vocab_drill/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testAppConfig = config.AppConfig{
	RecommendationLimit: 10,
	SessionSize:         10,
	PointMultiplier:     10,
	SessionTTL:          2 * time.Hour,
}

func newTestPracticeService(t *testing.T, db *gorm.DB) (*practiceService, *servicemocks.Mailer) {
	t.Helper()
	mailer := new(servicemocks.Mailer)
	svc := NewPracticeService(
		db,
		repository.NewGormWordRepository(),
		repository.NewGormSessionRepository(),
		repository.NewGormProgressRepository(),
		repository.NewGormTenantRepository(),
		mailer,
		testAppConfig,
	).(*practiceService)
	svc.now = fixedNow
	svc.rng = seededRand()
	return svc, mailer
}

// answersFor は出題された単語に回答を作ります。wrong に含まれる単語だけ誤答にします。
func answersFor(resp *model.StartSessionResponse, byID map[uuid.UUID]*model.WordCard, wrong map[uuid.UUID]bool) []model.SubmittedAnswer {
	answers := make([]model.SubmittedAnswer, 0, len(resp.Words))
	for _, pw := range resp.Words {
		w := byID[pw.WordID]
		answer := w.TargetText
		if resp.Direction == model.DirectionTargetToSource {
			answer = w.SourceText
		}
		if wrong[pw.WordID] {
			answer = "???"
		}
		answers = append(answers, model.SubmittedAnswer{WordID: pw.WordID, Answer: answer})
	}
	return answers
}

func indexWords(words []*model.WordCard) map[uuid.UUID]*model.WordCard {
	m := make(map[uuid.UUID]*model.WordCard, len(words))
	for _, w := range words {
		m[w.WordID] = w
	}
	return m
}

func Test_practiceService_StartSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tenantID, words := seedTenant(t, db, map[string][]string{
		"food":   {"apple", "bread", "rice", "water", "milk"},
		"basics": {"hello", "thanks", "yes"},
	})
	byID := indexWords(words)
	svc, _ := newTestPracticeService(t, db)

	t.Run("正常系: テーマ指定で件数が足りなければ全件を出題", func(t *testing.T) {
		resp, err := svc.StartSession(ctx, tenantID, &model.StartSessionRequest{ThemeID: "food", Direction: "source-to-target"})
		require.NoError(t, err)
		assert.Equal(t, "food", resp.ThemeID)
		require.Len(t, resp.Words, 5)
		seen := map[uuid.UUID]bool{}
		for _, pw := range resp.Words {
			w := byID[pw.WordID]
			require.NotNil(t, w)
			assert.Equal(t, "food", w.ThemeID)
			assert.Equal(t, w.SourceText, pw.Prompt)
			assert.Nil(t, pw.Hint)
			assert.False(t, seen[pw.WordID])
			seen[pw.WordID] = true
		}
		assert.Equal(t, testNow.Add(2*time.Hour), resp.ExpiresAt)
	})

	t.Run("正常系: 空のテーマIDは mixed として全テーマから出題", func(t *testing.T) {
		resp, err := svc.StartSession(ctx, tenantID, &model.StartSessionRequest{Direction: "target-to-source", Count: 4})
		require.NoError(t, err)
		assert.Equal(t, model.MixedThemeID, resp.ThemeID)
		require.Len(t, resp.Words, 4)
		for _, pw := range resp.Words {
			assert.Equal(t, byID[pw.WordID].TargetText, pw.Prompt)
		}
	})

	t.Run("異常系: 単語のないテーマ", func(t *testing.T) {
		resp, err := svc.StartSession(ctx, tenantID, &model.StartSessionRequest{ThemeID: "colors", Direction: "source-to-target"})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrNoWordsAvailable)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NO_WORDS_AVAILABLE", appErr.Code)
	})

	t.Run("異常系: 出題方向が不正", func(t *testing.T) {
		_, err := svc.StartSession(ctx, tenantID, &model.StartSessionRequest{Direction: "sideways"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("正常系: 同じシードなら同じ出題順", func(t *testing.T) {
		a, _ := newTestPracticeService(t, db)
		b, _ := newTestPracticeService(t, db)
		ra, err := a.StartSession(ctx, tenantID, &model.StartSessionRequest{Direction: "source-to-target"})
		require.NoError(t, err)
		rb, err := b.StartSession(ctx, tenantID, &model.StartSessionRequest{Direction: "source-to-target"})
		require.NoError(t, err)
		require.Equal(t, len(ra.Words), len(rb.Words))
		for i := range ra.Words {
			assert.Equal(t, ra.Words[i].WordID, rb.Words[i].WordID)
		}
	})
}

func Test_practiceService_CompleteSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	tenantID, words := seedTenant(t, db, map[string][]string{
		"food": {"apple", "bread", "rice", "water", "milk"},
	})
	byID := indexWords(words)
	svc, mailer := newTestPracticeService(t, db)
	wordRepo := repository.NewGormWordRepository()
	progressRepo := repository.NewGormProgressRepository()
	require.NoError(t, progressRepo.Create(ctx, db, &model.UserProgress{TenantID: tenantID, Achievements: model.DefaultAchievements(tenantID)}))
	tenantEmail := tenantID.String()[:8] + "@example.com"

	start := func(t *testing.T) *model.StartSessionResponse {
		t.Helper()
		resp, err := svc.StartSession(ctx, tenantID, &model.StartSessionRequest{ThemeID: "food", Direction: "source-to-target"})
		require.NoError(t, err)
		return resp
	}

	t.Run("正常系: 採点して単語・進捗・履歴を更新する", func(t *testing.T) {
		mailer.On("Send", mock.Anything, tenantEmail, mock.MatchedBy(func(subject string) bool {
			return strings.Contains(subject, "First Word")
		}), mock.Anything).Return(nil).Once()

		resp := start(t)
		wrongID := resp.Words[0].WordID
		answers := answersFor(resp, byID, map[uuid.UUID]bool{wrongID: true})
		// 大文字小文字と前後の空白は無視される
		answers[1].Answer = "  " + strings.ToUpper(answers[1].Answer) + " "

		result, err := svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: answers, DurationMs: 42000})
		require.NoError(t, err)

		assert.Equal(t, 4, result.Session.Score)
		assert.Equal(t, 5, result.Session.TotalWords)
		assert.Equal(t, int64(42000), result.Session.DurationMs)
		assert.Equal(t, 40, result.PointsEarned)
		assert.Equal(t, 40, result.Progress.TotalPoints)
		assert.Equal(t, 1, result.Progress.SessionsCompleted)
		assert.Equal(t, 1, result.Progress.CurrentStreak)
		assert.Equal(t, 1, result.Progress.BestStreak)
		assert.Equal(t, 4, result.Progress.WordsLearned)
		require.Len(t, result.UnlockedAchievements, 1)
		assert.Equal(t, model.AchievementFirstWord, result.UnlockedAchievements[0].AchievementID)

		wrong, err := wordRepo.FindByID(ctx, db, tenantID, wrongID)
		require.NoError(t, err)
		assert.Equal(t, 1, wrong.IncorrectCount)
		assert.Equal(t, 0, wrong.Streak)
		require.NotNil(t, wrong.LastReviewedAt)

		right, err := wordRepo.FindByID(ctx, db, tenantID, resp.Words[1].WordID)
		require.NoError(t, err)
		assert.Equal(t, 1, right.CorrectCount)
		assert.Equal(t, 1, right.Streak)

		stored, err := progressRepo.FindByTenant(ctx, db, tenantID)
		require.NoError(t, err)
		assert.Equal(t, 40, stored.TotalPoints)
		for _, a := range stored.Achievements {
			if a.AchievementID == model.AchievementFirstWord {
				assert.NotNil(t, a.UnlockedAt)
			}
		}

		sessions, err := svc.ListSessions(ctx, tenantID, 0)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Len(t, sessions[0].Words, 5)
		assert.Len(t, sessions[0].Answers, 5)
		assert.False(t, sessions[0].Answers[0].Correct)
		mailer.AssertExpectations(t)
	})

	t.Run("異常系: 完了済みのセッションは再度完了できない", func(t *testing.T) {
		resp := start(t)
		req := &model.CompleteSessionRequest{Answers: answersFor(resp, byID, nil)}
		_, err := svc.CompleteSession(ctx, tenantID, resp.SessionID, req)
		require.NoError(t, err)

		_, err = svc.CompleteSession(ctx, tenantID, resp.SessionID, req)
		assert.ErrorIs(t, err, model.ErrSessionExpired)
	})

	t.Run("異常系: 回答の不足・重複・出題外はやり直せる", func(t *testing.T) {
		resp := start(t)
		answers := answersFor(resp, byID, nil)

		_, err := svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: answers[:4]})
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		dup := append(append([]model.SubmittedAnswer{}, answers...), answers[0])
		_, err = svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: dup})
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		unknown := append(append([]model.SubmittedAnswer{}, answers...), model.SubmittedAnswer{WordID: uuid.New(), Answer: "x"})
		_, err = svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: unknown})
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		result, err := svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: answers})
		require.NoError(t, err)
		assert.Equal(t, 5, result.Session.Score)
	})

	t.Run("異常系: 他のテナントのセッション", func(t *testing.T) {
		resp := start(t)
		_, err := svc.CompleteSession(ctx, uuid.New(), resp.SessionID, &model.CompleteSessionRequest{Answers: answersFor(resp, byID, nil)})
		assert.ErrorIs(t, err, model.ErrSessionExpired)

		// 本人はまだ完了できる
		_, err = svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: answersFor(resp, byID, nil)})
		assert.NoError(t, err)
	})

	t.Run("異常系: 有効期限切れ", func(t *testing.T) {
		resp := start(t)
		svc.now = func() time.Time { return testNow.Add(3 * time.Hour) }
		defer func() { svc.now = fixedNow }()

		_, err := svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: answersFor(resp, byID, nil)})
		assert.ErrorIs(t, err, model.ErrSessionExpired)
	})

	t.Run("正常系: 翌日の練習で連続日数が伸びる", func(t *testing.T) {
		svc.now = func() time.Time { return testNow.Add(24 * time.Hour) }
		defer func() { svc.now = fixedNow }()

		resp := start(t)
		result, err := svc.CompleteSession(ctx, tenantID, resp.SessionID, &model.CompleteSessionRequest{Answers: answersFor(resp, byID, nil)})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Progress.CurrentStreak)
		assert.Equal(t, 2, result.Progress.BestStreak)
		assert.Empty(t, result.UnlockedAchievements)
		// 経過時間の指定がなければ開始からの時間を使う
		assert.Equal(t, int64(0), result.Session.DurationMs)
	})
}

func Test_draftStore(t *testing.T) {
	store := newDraftStore()
	tenantID := uuid.New()
	expired := uuid.New()
	live := uuid.New()

	store.put(expired, &sessionDraft{TenantID: tenantID, ExpiresAt: testNow.Add(time.Minute)}, testNow)
	store.put(live, &sessionDraft{TenantID: tenantID, ExpiresAt: testNow.Add(3 * time.Hour)}, testNow.Add(2*time.Hour))
	assert.Equal(t, 1, store.size(), "期限切れの下書きは登録時に掃除される")

	_, ok := store.take(live, tenantID, testNow.Add(2*time.Hour))
	assert.True(t, ok)
	_, ok = store.take(live, tenantID, testNow.Add(2*time.Hour))
	assert.False(t, ok)
}
