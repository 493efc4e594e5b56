// Package seed は新規テナントに配る初期データを定義します。
package seed

import (
	"time"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
)

type themeDef struct {
	id, name, description, color string
}

type wordDef struct {
	source, target, romanization, theme string
	difficulty                          model.Difficulty
}

var starterThemes = []themeDef{
	{"basics", "Basic Words", "Essential Korean vocabulary for beginners", "#3B82F6"},
	{"food", "Food & Dining", "Restaurant vocabulary and food items", "#EF4444"},
	{"family", "Family & People", "Family members and relationships", "#8B5CF6"},
	{"colors", "Colors", "Basic color vocabulary", "#10B981"},
}

var starterWords = []wordDef{
	{"hello", "안녕하세요", "annyeonghaseyo", "basics", model.DifficultyEasy},
	{"goodbye", "안녕히 가세요", "annyeonghi gaseyo", "basics", model.DifficultyMedium},
	{"thank you", "감사합니다", "gamsahamnida", "basics", model.DifficultyEasy},
	{"yes", "네", "ne", "basics", model.DifficultyEasy},
	{"no", "아니요", "aniyo", "basics", model.DifficultyEasy},
	{"excuse me", "실례합니다", "sillyehamnida", "basics", model.DifficultyMedium},
	{"sorry", "죄송합니다", "joesonghamnida", "basics", model.DifficultyMedium},
	{"please", "부탁합니다", "butakhamnida", "basics", model.DifficultyMedium},

	{"rice", "밥", "bap", "food", model.DifficultyEasy},
	{"water", "물", "mul", "food", model.DifficultyEasy},
	{"kimchi", "김치", "gimchi", "food", model.DifficultyEasy},
	{"bulgogi", "불고기", "bulgogi", "food", model.DifficultyMedium},
	{"bibimbap", "비빔밥", "bibimbap", "food", model.DifficultyMedium},

	{"mother", "어머니", "eomeoni", "family", model.DifficultyEasy},
	{"father", "아버지", "abeoji", "family", model.DifficultyEasy},
	{"friend", "친구", "chingu", "family", model.DifficultyEasy},
	{"teacher", "선생님", "seonsaengnim", "family", model.DifficultyMedium},

	{"red", "빨간색", "ppalgansaek", "colors", model.DifficultyMedium},
	{"blue", "파란색", "paransaek", "colors", model.DifficultyMedium},
	{"white", "흰색", "huinsaek", "colors", model.DifficultyMedium},
	{"black", "검은색", "geomeunsaek", "colors", model.DifficultyMedium},
}

// StarterThemes はテナント用の初期テーマを返します。
func StarterThemes(tenantID uuid.UUID, now time.Time) []*model.Theme {
	themes := make([]*model.Theme, 0, len(starterThemes))
	for i, d := range starterThemes {
		at := now.Add(time.Duration(i) * time.Millisecond)
		themes = append(themes, &model.Theme{
			TenantID:    tenantID,
			ThemeID:     d.id,
			Name:        d.name,
			Description: d.description,
			Color:       d.color,
			CreatedAt:   at,
			UpdatedAt:   at,
		})
	}
	return themes
}

// StarterWords はテナント用の初期単語を返します。
// 作成日時を1ミリ秒ずつずらして一覧の並びを定義順に固定します。
func StarterWords(tenantID uuid.UUID, now time.Time) []*model.WordCard {
	words := make([]*model.WordCard, 0, len(starterWords))
	for i, d := range starterWords {
		at := now.Add(time.Duration(i) * time.Millisecond)
		romanization := d.romanization
		words = append(words, &model.WordCard{
			WordID:       uuid.New(),
			TenantID:     tenantID,
			SourceText:   d.source,
			TargetText:   d.target,
			Romanization: &romanization,
			ThemeID:      d.theme,
			Difficulty:   d.difficulty,
			CreatedAt:    at,
			UpdatedAt:    at,
		})
	}
	return words
}
