package seed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStarterDeck(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	themes := StarterThemes(tenantID, now)
	words := StarterWords(tenantID, now)

	themeIDs := make(map[string]bool, len(themes))
	for _, th := range themes {
		themeIDs[th.ThemeID] = true
		assert.Equal(t, tenantID, th.TenantID)
	}
	assert.Len(t, themes, 4)

	seen := make(map[uuid.UUID]bool, len(words))
	for i, w := range words {
		assert.True(t, themeIDs[w.ThemeID], "word %q has unknown theme %q", w.SourceText, w.ThemeID)
		assert.True(t, w.Difficulty.Valid())
		assert.False(t, seen[w.WordID])
		seen[w.WordID] = true
		if i > 0 {
			assert.True(t, w.CreatedAt.After(words[i-1].CreatedAt))
		}
	}
	assert.Len(t, words, 21)
	assert.Equal(t, "hello", words[0].SourceText)
	assert.Equal(t, "안녕하세요", words[0].TargetText)
}
