// Package learning は復習優先度の計算と練習セッションの出題構成を行う純粋関数群です。
// どの関数も引数だけを読み、I/O や共有状態を持たないので並行に呼び出せます。
package learning

import (
	"math"
	"slices"
	"strings"
	"time"

	"vocab_drill/internal/model"
)

const (
	// MaxRecommendations は Recommend が返す件数の上限
	MaxRecommendations = 10
	// PriorityThreshold より大きい優先度の単語だけを推薦する
	PriorityThreshold = 10

	errorRateBonus  = 40
	staleBonus      = 30
	lowStreakBonus  = 20
	hardBonus       = 15
	mediumBonus     = 10
	masteryPenalty  = 20
	staleAfterDays  = 3
	lowStreakBelow  = 3
	masteredAbove   = 5
	errorRateCutoff = 0.5
)

const (
	ReasonHighErrorRate      = "High error rate"
	ReasonDueForReview       = "Due for review"
	ReasonNeedsReinforcement = "Needs reinforcement"
)

// Recommend は各単語の優先度を計算し、優先度の高い順に最大 MaxRecommendations 件を返します。
// 同じ優先度の単語は入力の順序を保ちます。
// recentSessions と progress は現在のスコア計算には使いません。
func Recommend(words []*model.WordCard, recentSessions []*model.PracticeSession, progress *model.UserProgress, now time.Time) []model.RecommendationEntry {
	entries := make([]model.RecommendationEntry, 0, len(words))
	for _, w := range words {
		if w == nil {
			continue
		}
		priority, reason := Score(w, now)
		if priority > PriorityThreshold {
			entries = append(entries, model.RecommendationEntry{Word: w, Priority: priority, Reason: reason})
		}
	}

	slices.SortStableFunc(entries, func(a, b model.RecommendationEntry) int {
		return b.Priority - a.Priority
	})

	if len(entries) > MaxRecommendations {
		entries = entries[:MaxRecommendations]
	}
	return entries
}

// Score は1単語の優先度と理由を返します。
func Score(w *model.WordCard, now time.Time) (int, string) {
	priority := 0
	reasons := make([]string, 0, 3)

	if attempts := w.TotalAttempts(); attempts > 0 {
		if float64(w.IncorrectCount)/float64(attempts) > errorRateCutoff {
			priority += errorRateBonus
			reasons = append(reasons, ReasonHighErrorRate)
		}
	}

	if w.LastReviewedAt == nil || daysBetween(now, *w.LastReviewedAt) > staleAfterDays {
		priority += staleBonus
		reasons = append(reasons, ReasonDueForReview)
	}

	if w.Streak < lowStreakBelow {
		priority += lowStreakBonus
		reasons = append(reasons, ReasonNeedsReinforcement)
	}

	switch w.Difficulty {
	case model.DifficultyHard:
		priority += hardBonus
	case model.DifficultyMedium:
		priority += mediumBonus
	}

	if w.Streak > masteredAbove {
		priority -= masteryPenalty
	}

	return priority, strings.Join(reasons, ", ")
}

// daysBetween は2つの時刻の差を日数に切り上げて返します。時計のずれに備えて絶対値を取ります。
func daysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}
