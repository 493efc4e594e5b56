package learning

import (
	"math"
	"strings"
	"time"

	"vocab_drill/internal/model"
)

// CheckAnswer は前後の空白と大文字小文字を無視して回答を判定します。
func CheckAnswer(word model.WordSnapshot, direction model.Direction, answer string) bool {
	got := strings.ToLower(strings.TrimSpace(answer))
	want := strings.ToLower(strings.TrimSpace(word.Expected(direction)))
	return got != "" && got == want
}

// ApplyOutcome は1単語の回答結果を反映したコピーを返します。
// 回数は増えるだけで、不正解なら連続正解数は0に戻ります。
func ApplyOutcome(card model.WordCard, correct bool, now time.Time) model.WordCard {
	reviewed := now
	card.LastReviewedAt = &reviewed
	if correct {
		card.CorrectCount++
		card.Streak++
	} else {
		card.IncorrectCount++
		card.Streak = 0
	}
	return card
}

// SessionResult は進捗の更新に必要なセッションの集計値
type SessionResult struct {
	Score        int // 正解数
	NewlyLearned int // 今回初めて正解した単語数
}

// AdvanceProgress はセッション完了を進捗に反映したコピーと、新たに解除された実績を返します。
//
// 連続学習日数は暦日で判定します。最後の練習が今日なら変えず、昨日なら+1、それ以外は1に戻します。
func AdvanceProgress(p model.UserProgress, result SessionResult, pointMultiplier int, now time.Time) (model.UserProgress, []model.Achievement) {
	p.TotalPoints += max(result.Score, 0) * max(pointMultiplier, 0)
	p.SessionsCompleted++
	p.WordsLearned += max(result.NewlyLearned, 0)

	switch gap := calendarDaysSince(p.LastPracticedAt, now); {
	case p.LastPracticedAt == nil:
		p.CurrentStreak = 1
	case gap <= 0:
		p.CurrentStreak = max(p.CurrentStreak, 1)
	case gap == 1:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}
	p.BestStreak = max(p.BestStreak, p.CurrentStreak)

	practiced := now
	p.LastPracticedAt = &practiced

	achievements := make([]model.Achievement, len(p.Achievements))
	copy(achievements, p.Achievements)
	var unlocked []model.Achievement
	for i := range achievements {
		a := &achievements[i]
		switch a.AchievementID {
		case model.AchievementFirstWord, model.AchievementVocabularyBuilder:
			a.Progress = min(p.WordsLearned, a.Target)
		case model.AchievementStreakMaster:
			a.Progress = min(p.BestStreak, a.Target)
		default:
			continue
		}
		if a.UnlockedAt == nil && a.Progress >= a.Target {
			at := now
			a.UnlockedAt = &at
			unlocked = append(unlocked, *a)
		}
	}
	p.Achievements = achievements

	return p, unlocked
}

// calendarDaysSince は last の日付から now の日付までの暦日数を返します。
func calendarDaysSince(last *time.Time, now time.Time) int {
	if last == nil {
		return 0
	}
	loc := now.Location()
	ly, lm, ld := last.In(loc).Date()
	ny, nm, nd := now.Date()
	from := time.Date(ly, lm, ld, 0, 0, 0, 0, loc)
	to := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// IsReviewedOn は単語が now と同じ暦日に復習済みかどうかを返します。
func IsReviewedOn(w *model.WordCard, now time.Time) bool {
	if w.LastReviewedAt == nil {
		return false
	}
	return calendarDaysSince(w.LastReviewedAt, now) == 0
}
