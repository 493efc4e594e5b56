// internal/model/theme.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MixedThemeID は全テーマから出題するセッションを表すセンチネル
const MixedThemeID = "mixed"

// Theme は単語のグループです。WordCount は保存せず、取得時に単語から集計します。
type Theme struct {
	TenantID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ThemeID     string    `gorm:"type:varchar(64);primaryKey" json:"theme_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `gorm:"type:varchar(16)" json:"color"`
	WordCount   int       `gorm:"-" json:"word_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Theme) TableName() string {
	return "themes"
}

// テーマ作成リクエストDTO
type PostThemeRequest struct {
	ThemeID     string `json:"theme_id" validate:"required,min=1,max=64"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}
