//go:generate mockery --name PracticeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"vocab_drill/internal/config"
	"vocab_drill/internal/learning"
	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeService interface {
	StartSession(ctx context.Context, tenantID uuid.UUID, req *model.StartSessionRequest) (*model.StartSessionResponse, error)
	CompleteSession(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.CompleteSessionRequest) (*model.CompleteSessionResponse, error)
	ListSessions(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.PracticeSession, error)
}

type practiceService struct {
	db           *gorm.DB
	wordRepo     repository.WordRepository
	sessionRepo  repository.SessionRepository
	progressRepo repository.ProgressRepository
	tenantRepo   repository.TenantRepository
	mailer       Mailer
	cfg          config.AppConfig
	drafts       *draftStore
	now          func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewPracticeService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	sessionRepo repository.SessionRepository,
	progressRepo repository.ProgressRepository,
	tenantRepo repository.TenantRepository,
	mailer Mailer,
	cfg config.AppConfig,
) PracticeService {
	return &practiceService{
		db:           db,
		wordRepo:     wordRepo,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		tenantRepo:   tenantRepo,
		mailer:       mailer,
		cfg:          cfg,
		drafts:       newDraftStore(),
		now:          time.Now,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (s *practiceService) compose(words []*model.WordCard, themeID string, count int, now time.Time) []*model.WordCard {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return learning.ComposeSession(words, themeID, count, s.rng, now)
}

// StartSession は出題する単語を選び、正解を伏せた問題を返します。
func (s *practiceService) StartSession(ctx context.Context, tenantID uuid.UUID, req *model.StartSessionRequest) (*model.StartSessionResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := s.now()

	direction := model.Direction(req.Direction)
	if !direction.Valid() {
		return nil, model.NewAppError("INVALID_DIRECTION", "出題方向が不正です。", "direction", model.ErrInvalidInput)
	}
	themeID := strings.TrimSpace(req.ThemeID)
	if learning.IsMixedTheme(themeID) {
		themeID = model.MixedThemeID
	}
	count := req.Count
	if count <= 0 {
		count = s.cfg.SessionSize
	}

	filter := repository.WordFilter{}
	if themeID != model.MixedThemeID {
		filter.ThemeID = themeID
	}
	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID, filter)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	selected := s.compose(words, themeID, count, now)
	if len(selected) == 0 {
		logger.Info("No words available for session", "theme_id", themeID)
		return nil, model.NewAppError("NO_WORDS_AVAILABLE", "このテーマには出題できる単語がありません。", "theme_id", model.ErrNoWordsAvailable)
	}

	draft := &sessionDraft{
		TenantID:  tenantID,
		Direction: direction,
		ThemeID:   themeID,
		Words:     make([]model.WordSnapshot, 0, len(selected)),
		StartedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	resp := &model.StartSessionResponse{
		SessionID: uuid.New(),
		Direction: direction,
		ThemeID:   themeID,
		Words:     make([]model.PracticeWord, 0, len(selected)),
		StartedAt: draft.StartedAt,
		ExpiresAt: draft.ExpiresAt,
	}
	for _, w := range selected {
		snap := w.Snapshot()
		draft.Words = append(draft.Words, snap)
		pw := model.PracticeWord{
			WordID:     snap.WordID,
			Prompt:     snap.Prompt(direction),
			Difficulty: snap.Difficulty,
		}
		if direction == model.DirectionTargetToSource {
			pw.Hint = snap.Romanization
		}
		resp.Words = append(resp.Words, pw)
	}
	s.drafts.put(resp.SessionID, draft, now)

	logger.Info("Practice session started",
		"session_id", resp.SessionID,
		"theme_id", themeID,
		"direction", direction,
		"word_count", len(resp.Words),
	)
	return resp, nil
}

// gradeAnswers は出題した単語ごとにちょうど1つの回答があることを確認して採点します。
func gradeAnswers(draft *sessionDraft, answers []model.SubmittedAnswer) ([]model.AnswerRecord, error) {
	submitted := make(map[uuid.UUID]string, len(answers))
	presented := make(map[uuid.UUID]struct{}, len(draft.Words))
	for _, w := range draft.Words {
		presented[w.WordID] = struct{}{}
	}
	for _, a := range answers {
		if _, ok := presented[a.WordID]; !ok {
			return nil, model.NewAppError("UNKNOWN_WORD", "このセッションで出題されていない単語への回答があります。", "answers", model.ErrInvalidInput)
		}
		if _, dup := submitted[a.WordID]; dup {
			return nil, model.NewAppError("DUPLICATE_ANSWER", "同じ単語に複数の回答があります。", "answers", model.ErrInvalidInput)
		}
		submitted[a.WordID] = a.Answer
	}

	records := make([]model.AnswerRecord, 0, len(draft.Words))
	for _, w := range draft.Words {
		answer, ok := submitted[w.WordID]
		if !ok {
			return nil, model.NewAppError("MISSING_ANSWER", "すべての単語に回答してください。", "answers", model.ErrInvalidInput)
		}
		records = append(records, model.AnswerRecord{
			WordID:   w.WordID,
			Answer:   answer,
			Expected: w.Expected(draft.Direction),
			Correct:  learning.CheckAnswer(w, draft.Direction, answer),
		})
	}
	return records, nil
}

// CompleteSession は回答を採点し、セッション記録・単語の統計・進捗を同じトランザクションで更新します。
func (s *practiceService) CompleteSession(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.CompleteSessionRequest) (*model.CompleteSessionResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := s.now()

	draft, ok := s.drafts.take(sessionID, tenantID, now)
	if !ok {
		return nil, model.NewAppError("SESSION_NOT_FOUND", "セッションが見つからないか、有効期限が切れています。", "session_id", model.ErrSessionExpired)
	}
	records, err := gradeAnswers(draft, req.Answers)
	if err != nil {
		s.drafts.restore(sessionID, draft)
		return nil, err
	}

	score := 0
	graded := make(map[uuid.UUID]bool, len(records))
	wordIDs := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		graded[rec.WordID] = rec.Correct
		wordIDs = append(wordIDs, rec.WordID)
		if rec.Correct {
			score++
		}
	}
	duration := req.DurationMs
	if duration <= 0 {
		duration = now.Sub(draft.StartedAt).Milliseconds()
	}

	session := &model.PracticeSession{
		SessionID:   sessionID,
		TenantID:    tenantID,
		Direction:   draft.Direction,
		ThemeID:     draft.ThemeID,
		Words:       draft.Words,
		Answers:     records,
		Score:       score,
		TotalWords:  len(draft.Words),
		StartedAt:   draft.StartedAt,
		CompletedAt: now,
		DurationMs:  duration,
	}

	var progress model.UserProgress
	var unlocked []model.Achievement
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		words, err := s.wordRepo.FindByIDs(ctx, tx, tenantID, wordIDs)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
		}
		newlyLearned := 0
		for _, w := range words {
			correct := graded[w.WordID]
			if correct && w.CorrectCount == 0 {
				newlyLearned++
			}
			updated := learning.ApplyOutcome(*w, correct, now)
			if err := s.wordRepo.UpdateStats(ctx, tx, &updated); err != nil {
				// セッション中に削除された単語は統計の更新を省く
				if errors.Is(err, model.ErrNotFound) {
					continue
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の統計の更新に失敗しました。", "", err)
			}
		}

		current, err := s.progressRepo.FindByTenantForUpdate(ctx, tx, tenantID)
		fresh := false
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の取得に失敗しました。", "", err)
			}
			current = &model.UserProgress{TenantID: tenantID, Achievements: model.DefaultAchievements(tenantID)}
			fresh = true
		}

		progress, unlocked = learning.AdvanceProgress(*current, learning.SessionResult{
			Score:        score,
			NewlyLearned: newlyLearned,
		}, s.cfg.PointMultiplier, now)
		if fresh {
			err = s.progressRepo.Create(ctx, tx, &progress)
		} else {
			err = s.progressRepo.Save(ctx, tx, &progress)
		}
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の更新に失敗しました。", "", err)
		}

		if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("SESSION_ALREADY_COMPLETED", "このセッションは既に完了しています。", "session_id", model.ErrConflict)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrConflict) {
			s.drafts.restore(sessionID, draft)
		}
		return nil, err
	}

	logger.Info("Practice session completed",
		"session_id", sessionID,
		"score", score,
		"total_words", session.TotalWords,
		"unlocked", len(unlocked),
	)
	if len(unlocked) > 0 {
		s.notifyUnlocked(ctx, tenantID, unlocked)
	}
	if unlocked == nil {
		unlocked = []model.Achievement{}
	}

	return &model.CompleteSessionResponse{
		Session:              session,
		PointsEarned:         score * max(s.cfg.PointMultiplier, 0),
		Progress:             &progress,
		UnlockedAchievements: unlocked,
	}, nil
}

// notifyUnlocked は実績解除をメールで知らせます。送信に失敗してもセッションの完了は取り消しません。
func (s *practiceService) notifyUnlocked(ctx context.Context, tenantID uuid.UUID, unlocked []model.Achievement) {
	logger := middleware.GetLogger(ctx)
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		logger.Warn("Skipping achievement notice", "error", err)
		return
	}
	subject, body := achievementNotice(tenant.Name, unlocked)
	if err := s.mailer.Send(ctx, tenant.Email, subject, body); err != nil {
		logger.Error("Failed to send achievement notice", "error", err)
	}
}

func (s *practiceService) ListSessions(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.PracticeSession, error) {
	sessions, err := s.sessionRepo.FindRecent(ctx, s.db, tenantID, limit)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション履歴の取得に失敗しました。", "", err)
	}
	return sessions, nil
}
