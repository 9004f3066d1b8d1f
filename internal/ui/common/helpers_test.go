package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/four-landlord/internal/game/card"
)

func TestTruncateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short name within limit", "Alice", 10, "Alice"},
		{"exact length", "HelloWorld", 10, "HelloWorld"},
		{"long name truncated", "VeryLongPlayerName", 10, "VeryLongP…"},
		{"chinese name truncated", "可爱的龙猫", 4, "可爱的…"},
		{"empty name", "", 10, ""},
		{"single char limit", "Hello", 1, "…"},
		{"unicode mixed exact", "Hello世界", 7, "Hello世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := TruncateName(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRanksInput(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	// 黑桃 3、黑桃 10、红桃 10
	assert.Equal(t, "31010", RanksInput([]card.Card{deck[0], deck[7], deck[20]}))
	assert.Equal(t, "JOKER", RanksInput([]card.Card{deck[53], deck[52]}))
	assert.Empty(t, RanksInput(nil))
}

func TestCardStyle(t *testing.T) {
	t.Parallel()

	deck := card.NewDeck()
	assert.Equal(t, BlackStyle.GetForeground(), CardStyle(deck[0]).GetForeground())
	assert.Equal(t, RedStyle.GetForeground(), CardStyle(deck[53]).GetForeground())
	assert.Equal(t, BlackStyle.GetForeground(), CardStyle(deck[52]).GetForeground())
}
