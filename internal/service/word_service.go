//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"vocab_drill/internal/learning"
	"vocab_drill/internal/middleware"
	"vocab_drill/internal/model"
	"vocab_drill/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordService interface {
	CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.WordCard, error)
	GetWord(ctx context.Context, tenantID, wordID uuid.UUID) (*model.WordCard, error)
	ListWords(ctx context.Context, tenantID uuid.UUID, themeID string) ([]*model.WordCard, error)
	UpdateWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PutWordRequest) (*model.WordCard, error)
	PatchWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.WordCard, error)
	DeleteWord(ctx context.Context, tenantID, wordID uuid.UUID) error
}

type wordService struct {
	db        *gorm.DB
	wordRepo  repository.WordRepository
	themeRepo repository.ThemeRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, themeRepo repository.ThemeRepository) WordService {
	return &wordService{
		db:        db,
		wordRepo:  wordRepo,
		themeRepo: themeRepo,
	}
}

var errWordNotFound = model.NewAppError("WORD_NOT_FOUND", "単語が見つかりません。", "word_id", model.ErrNotFound)

// ensureTheme は単語の所属先テーマが存在することを確認します。
func (s *wordService) ensureTheme(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, themeID string) error {
	if _, err := s.themeRepo.FindByID(ctx, tx, tenantID, themeID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("THEME_NOT_FOUND", "指定されたテーマが存在しません。", "theme_id", model.ErrInvalidInput)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "テーマの取得に失敗しました。", "", err)
	}
	return nil
}

// normalizeRomanization は空文字の読みを未設定として扱います。
func normalizeRomanization(r *string) *string {
	if r == nil {
		return nil
	}
	v := strings.TrimSpace(*r)
	if v == "" {
		return nil
	}
	return &v
}

func (s *wordService) CreateWord(ctx context.Context, tenantID uuid.UUID, req *model.PostWordRequest) (*model.WordCard, error) {
	logger := middleware.GetLogger(ctx)
	word := &model.WordCard{
		WordID:       uuid.New(),
		TenantID:     tenantID,
		SourceText:   strings.TrimSpace(req.SourceText),
		TargetText:   strings.TrimSpace(req.TargetText),
		Romanization: normalizeRomanization(req.Romanization),
		ThemeID:      strings.TrimSpace(req.ThemeID),
		Difficulty:   model.Difficulty(req.Difficulty),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureTheme(ctx, tx, tenantID, word.ThemeID); err != nil {
			return err
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", word.WordID, "theme_id", word.ThemeID)
	return word, nil
}

func (s *wordService) GetWord(ctx context.Context, tenantID, wordID uuid.UUID) (*model.WordCard, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, tenantID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errWordNotFound
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	return word, nil
}

// ListWords は単語一覧を返します。themeID が空または mixed なら全テーマ。
func (s *wordService) ListWords(ctx context.Context, tenantID uuid.UUID, themeID string) ([]*model.WordCard, error) {
	filter := repository.WordFilter{}
	if !learning.IsMixedTheme(themeID) {
		filter.ThemeID = strings.TrimSpace(themeID)
	}
	words, err := s.wordRepo.FindByTenant(ctx, s.db, tenantID, filter)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	return words, nil
}

// UpdateWord は単語の内容を置き換えます。学習統計は変更しません。
func (s *wordService) UpdateWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PutWordRequest) (*model.WordCard, error) {
	themeID := strings.TrimSpace(req.ThemeID)
	updates := map[string]interface{}{
		"source_text":  strings.TrimSpace(req.SourceText),
		"target_text":  strings.TrimSpace(req.TargetText),
		"romanization": normalizeRomanization(req.Romanization),
		"theme_id":     themeID,
		"difficulty":   req.Difficulty,
	}
	return s.applyUpdates(ctx, tenantID, wordID, updates, themeID)
}

// PatchWord は指定されたフィールドだけを更新します。
func (s *wordService) PatchWord(ctx context.Context, tenantID, wordID uuid.UUID, req *model.PatchWordRequest) (*model.WordCard, error) {
	updates := make(map[string]interface{})
	themeID := ""
	if req.SourceText != nil {
		updates["source_text"] = strings.TrimSpace(*req.SourceText)
	}
	if req.TargetText != nil {
		updates["target_text"] = strings.TrimSpace(*req.TargetText)
	}
	if req.Romanization != nil {
		updates["romanization"] = normalizeRomanization(req.Romanization)
	}
	if req.ThemeID != nil {
		themeID = strings.TrimSpace(*req.ThemeID)
		updates["theme_id"] = themeID
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	return s.applyUpdates(ctx, tenantID, wordID, updates, themeID)
}

func (s *wordService) applyUpdates(ctx context.Context, tenantID, wordID uuid.UUID, updates map[string]interface{}, themeID string) (*model.WordCard, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.WordCard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, tenantID, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errWordNotFound
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
		}
		if themeID != "" {
			if err := s.ensureTheme(ctx, tx, tenantID, themeID); err != nil {
				return err
			}
		}
		if err := s.wordRepo.Update(ctx, tx, tenantID, wordID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errWordNotFound
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の更新に失敗しました。", "", err)
		}

		var err error
		updated, err = s.wordRepo.FindByID(ctx, tx, tenantID, wordID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "更新後の単語の取得に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word updated", "word_id", wordID, "fields", len(updates))
	return updated, nil
}

func (s *wordService) DeleteWord(ctx context.Context, tenantID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if err := s.wordRepo.Delete(ctx, s.db, tenantID, wordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return errWordNotFound
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
	}
	logger.Info("Word deleted", "word_id", wordID)
	return nil
}
