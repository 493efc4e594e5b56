package learning

import (
	"math/rand/v2"
	"strings"
	"time"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
)

// DefaultSessionSize は1セッションの標準出題数
const DefaultSessionSize = 10

// IsMixedTheme はテーマで絞り込まないかどうかを返します。
func IsMixedTheme(themeID string) bool {
	themeID = strings.TrimSpace(themeID)
	return themeID == "" || strings.EqualFold(themeID, model.MixedThemeID)
}

// FilterByTheme は themeID の単語だけを返します。ID が重複する単語は最初の1件だけ残します。
func FilterByTheme(words []*model.WordCard, themeID string) []*model.WordCard {
	mixed := IsMixedTheme(themeID)
	seen := make(map[uuid.UUID]struct{}, len(words))
	pool := make([]*model.WordCard, 0, len(words))
	for _, w := range words {
		if w == nil {
			continue
		}
		if !mixed && w.ThemeID != themeID {
			continue
		}
		if _, dup := seen[w.WordID]; dup {
			continue
		}
		seen[w.WordID] = struct{}{}
		pool = append(pool, w)
	}
	return pool
}

// ComposeSession は推薦上位 (targetCount の7割) とランダムに選んだ残りの単語を組み合わせて
// 出題リストを作ります。結果は targetCount 以下で、単語が足りなければ短くなります。
// rng が nil の場合はエントロピーから初期化した乱数を使います。
func ComposeSession(words []*model.WordCard, themeID string, targetCount int, rng *rand.Rand, now time.Time) []*model.WordCard {
	result := make([]*model.WordCard, 0, max(targetCount, 0))
	if targetCount <= 0 {
		return result
	}

	pool := FilterByTheme(words, themeID)
	if len(pool) == 0 {
		return result
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	recs := Recommend(pool, nil, &model.UserProgress{}, now)
	priorityCount := min(targetCount*7/10, len(recs))

	picked := make(map[uuid.UUID]struct{}, priorityCount)
	for _, r := range recs[:priorityCount] {
		result = append(result, r.Word)
		picked[r.Word.WordID] = struct{}{}
	}

	rest := make([]*model.WordCard, 0, len(pool)-len(picked))
	for _, w := range pool {
		if _, ok := picked[w.WordID]; !ok {
			rest = append(rest, w)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	fill := min(targetCount-len(result), len(rest))
	result = append(result, rest[:fill]...)

	if len(result) > targetCount {
		result = result[:targetCount]
	}
	return result
}
