// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Direction は出題方向
type Direction string

const (
	DirectionSourceToTarget Direction = "source-to-target"
	DirectionTargetToSource Direction = "target-to-source"
)

func (d Direction) Valid() bool {
	return d == DirectionSourceToTarget || d == DirectionTargetToSource
}

// WordSnapshot はセッション開始時点の単語のコピー。後から単語を編集しても履歴は変わらない。
type WordSnapshot struct {
	WordID       uuid.UUID  `json:"word_id"`
	SourceText   string     `json:"source_text"`
	TargetText   string     `json:"target_text"`
	Romanization *string    `json:"romanization,omitempty"`
	ThemeID      string     `json:"theme_id"`
	Difficulty   Difficulty `json:"difficulty"`
}

// Prompt は出題方向に応じた問題文
func (s WordSnapshot) Prompt(d Direction) string {
	if d == DirectionTargetToSource {
		return s.TargetText
	}
	return s.SourceText
}

// Expected は出題方向に応じた正解
func (s WordSnapshot) Expected(d Direction) string {
	if d == DirectionTargetToSource {
		return s.SourceText
	}
	return s.TargetText
}

// AnswerRecord は1単語ごとの回答結果
type AnswerRecord struct {
	WordID   uuid.UUID `json:"word_id"`
	Answer   string    `json:"answer"`
	Expected string    `json:"expected"`
	Correct  bool      `json:"correct"`
}

// PracticeSession は完了した練習セッションの記録です。完了時にのみ作成され、以後更新しません。
type PracticeSession struct {
	SessionID   uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"session_id"`
	TenantID    uuid.UUID                         `gorm:"type:uuid;not null;index" json:"-"`
	Direction   Direction                         `gorm:"type:varchar(32);not null" json:"direction"`
	ThemeID     string                            `gorm:"type:varchar(64);not null" json:"theme_id"`
	Words       datatypes.JSONSlice[WordSnapshot] `gorm:"not null" json:"words"`
	Answers     datatypes.JSONSlice[AnswerRecord] `gorm:"not null" json:"answers"`
	Score       int                               `gorm:"not null" json:"score"`
	TotalWords  int                               `gorm:"not null" json:"total_words"`
	StartedAt   time.Time                         `gorm:"not null" json:"started_at"`
	CompletedAt time.Time                         `gorm:"not null;index" json:"completed_at"`
	DurationMs  int64                             `gorm:"not null" json:"duration_ms"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}

// セッション開始リクエストDTO
type StartSessionRequest struct {
	ThemeID   string `json:"theme_id" validate:"max=64"` // 空または "mixed" で全テーマ
	Direction string `json:"direction" validate:"required,oneof=source-to-target target-to-source"`
	Count     int    `json:"count,omitempty" validate:"omitempty,min=1,max=50"`
}

// PracticeWord は出題用の単語。正解は含めない。
type PracticeWord struct {
	WordID     uuid.UUID  `json:"word_id"`
	Prompt     string     `json:"prompt"`
	Hint       *string    `json:"hint,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
}

// StartSessionResponse はセッション開始時のレスポンス
type StartSessionResponse struct {
	SessionID uuid.UUID      `json:"session_id"`
	Direction Direction      `json:"direction"`
	ThemeID   string         `json:"theme_id"`
	Words     []PracticeWord `json:"words"`
	StartedAt time.Time      `json:"started_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SubmittedAnswer は1単語分の回答
type SubmittedAnswer struct {
	WordID uuid.UUID `json:"word_id" validate:"required"`
	Answer string    `json:"answer" validate:"max=200"`
}

// セッション完了リクエストDTO
type CompleteSessionRequest struct {
	Answers    []SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
	DurationMs int64             `json:"duration_ms" validate:"min=0"`
}

// CompleteSessionResponse はセッション完了時のレスポンス
type CompleteSessionResponse struct {
	Session              *PracticeSession `json:"session"`
	PointsEarned         int              `json:"points_earned"`
	Progress             *UserProgress    `json:"progress"`
	UnlockedAchievements []Achievement    `json:"unlocked_achievements"`
}
