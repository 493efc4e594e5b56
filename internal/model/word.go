// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// WordCard は単語カード（訳語ペアと学習統計）を表します
type WordCard struct {
	WordID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	TenantID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	SourceText     string         `gorm:"not null" json:"source_text"` // 例: 英語
	TargetText     string         `gorm:"not null" json:"target_text"` // 例: 韓国語
	Romanization   *string        `json:"romanization,omitempty"`
	ThemeID        string         `gorm:"type:varchar(64);not null;index" json:"theme_id"`
	Difficulty     Difficulty     `gorm:"type:varchar(16);not null;default:easy" json:"difficulty"`
	CorrectCount   int            `gorm:"not null;default:0" json:"correct_count"`
	IncorrectCount int            `gorm:"not null;default:0" json:"incorrect_count"`
	Streak         int            `gorm:"not null;default:0" json:"streak"`
	LastReviewedAt *time.Time     `json:"last_reviewed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (WordCard) TableName() string {
	return "words"
}

// TotalAttempts は回答回数の合計
func (w *WordCard) TotalAttempts() int {
	return w.CorrectCount + w.IncorrectCount
}

// Snapshot はセッション記録用に単語の内容をコピーします
func (w *WordCard) Snapshot() WordSnapshot {
	return WordSnapshot{
		WordID:       w.WordID,
		SourceText:   w.SourceText,
		TargetText:   w.TargetText,
		Romanization: w.Romanization,
		ThemeID:      w.ThemeID,
		Difficulty:   w.Difficulty,
	}
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	SourceText   string  `json:"source_text" validate:"required,max=200"`
	TargetText   string  `json:"target_text" validate:"required,max=200"`
	Romanization *string `json:"romanization,omitempty" validate:"omitempty,max=200"`
	ThemeID      string  `json:"theme_id" validate:"required,max=64"`
	Difficulty   string  `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// 単語更新（全体）リクエストDTO
type PutWordRequest struct {
	SourceText   string  `json:"source_text" validate:"required,max=200"`
	TargetText   string  `json:"target_text" validate:"required,max=200"`
	Romanization *string `json:"romanization,omitempty" validate:"omitempty,max=200"`
	ThemeID      string  `json:"theme_id" validate:"required,max=64"`
	Difficulty   string  `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

// 単語更新（部分）リクエストDTO
type PatchWordRequest struct {
	SourceText   *string `json:"source_text,omitempty" validate:"omitempty,min=1,max=200"`
	TargetText   *string `json:"target_text,omitempty" validate:"omitempty,min=1,max=200"`
	Romanization *string `json:"romanization,omitempty" validate:"omitempty,max=200"`
	ThemeID      *string `json:"theme_id,omitempty" validate:"omitempty,min=1,max=64"`
	Difficulty   *string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}
