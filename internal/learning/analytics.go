package learning

import (
	"math"
	"time"

	"vocab_drill/internal/model"
)

// AccuracyBy は key ごとに正答率を集計します。回答履歴のない単語は数えません。
func AccuracyBy(words []*model.WordCard, key func(*model.WordCard) string) map[string]model.AccuracyStat {
	stats := make(map[string]model.AccuracyStat)
	for _, w := range words {
		if w == nil || w.TotalAttempts() == 0 {
			continue
		}
		k := key(w)
		s := stats[k]
		s.Correct += w.CorrectCount
		s.Total += w.TotalAttempts()
		stats[k] = s
	}
	for k, s := range stats {
		s.Accuracy = int(math.Round(float64(s.Correct) * 100 / float64(s.Total)))
		stats[k] = s
	}
	return stats
}

func ByTheme(w *model.WordCard) string      { return w.ThemeID }
func ByDifficulty(w *model.WordCard) string { return string(w.Difficulty) }

// CountDueToday は今日まだ復習していない単語の数を返します。
func CountDueToday(words []*model.WordCard, now time.Time) int {
	n := 0
	for _, w := range words {
		if w != nil && !IsReviewedOn(w, now) {
			n++
		}
	}
	return n
}
