// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 実績ID
const (
	AchievementFirstWord         = "first_word"
	AchievementStreakMaster      = "streak_master"
	AchievementVocabularyBuilder = "vocabulary_builder"
)

// UserProgress はテナントごとの学習の累計値です。セッション完了時にのみ更新されます。
type UserProgress struct {
	TenantID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"-"`
	TotalPoints       int           `gorm:"not null;default:0" json:"total_points"`
	CurrentStreak     int           `gorm:"not null;default:0" json:"current_streak"`
	BestStreak        int           `gorm:"not null;default:0" json:"best_streak"`
	SessionsCompleted int           `gorm:"not null;default:0" json:"sessions_completed"`
	WordsLearned      int           `gorm:"not null;default:0" json:"words_learned"`
	LastPracticedAt   *time.Time    `json:"last_practiced_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	Achievements      []Achievement `gorm:"foreignKey:TenantID;references:TenantID" json:"achievements"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// Achievement は実績と進捗
type Achievement struct {
	TenantID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	AchievementID string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	Progress      int        `gorm:"not null;default:0" json:"progress"`
	Target        int        `gorm:"not null" json:"target"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// DefaultAchievements は新規テナントに付与する実績の一覧
func DefaultAchievements(tenantID uuid.UUID) []Achievement {
	return []Achievement{
		{TenantID: tenantID, AchievementID: AchievementFirstWord, Title: "First Word", Description: "Learn your first word", Icon: "🎯", Target: 1},
		{TenantID: tenantID, AchievementID: AchievementStreakMaster, Title: "Streak Master", Description: "Maintain a 7-day learning streak", Icon: "🔥", Target: 7},
		{TenantID: tenantID, AchievementID: AchievementVocabularyBuilder, Title: "Vocabulary Builder", Description: "Learn 50 words", Icon: "📚", Target: 50},
	}
}

// AccuracyStat は正答率の集計
type AccuracyStat struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"` // パーセント (四捨五入)
}

// ProgressResponse は進捗画面向けのレスポンスDTO
type ProgressResponse struct {
	Progress             *UserProgress           `json:"progress"`
	AccuracyByTheme      map[string]AccuracyStat `json:"accuracy_by_theme"`
	AccuracyByDifficulty map[string]AccuracyStat `json:"accuracy_by_difficulty"`
	RecentSessions       []*PracticeSession      `json:"recent_sessions"`
	DueToday             int                     `json:"due_today"`
	Recommendations      []RecommendationEntry   `json:"recommendations"`
}
