package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputRanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected map[Rank]int
		hasError bool
	}{
		{
			name:     "Single card",
			input:    "3",
			expected: map[Rank]int{Rank3: 1},
		},
		{
			name:     "Pair",
			input:    "33",
			expected: map[Rank]int{Rank3: 2},
		},
		{
			name:     "Multiple ranks",
			input:    "345",
			expected: map[Rank]int{Rank3: 1, Rank4: 1, Rank5: 1},
		},
		{
			name:     "With 10",
			input:    "10JQ",
			expected: map[Rank]int{Rank10: 1, RankJ: 1, RankQ: 1},
		},
		{
			name:     "Spaces ignored",
			input:    "9 9",
			expected: map[Rank]int{Rank9: 2},
		},
		{
			name:     "Invalid character",
			input:    "3X5",
			hasError: true,
		},
		{
			name:     "Empty",
			input:    "",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := parseInputRanks(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCountHandRanks(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{ID: 0, Suit: Spade, Rank: Rank3},
		{ID: 13, Suit: Heart, Rank: Rank3},
		{ID: 39, Suit: Diamond, Rank: Rank3},
		{ID: 27, Suit: Club, Rank: Rank4},
		{ID: 1, Suit: Spade, Rank: Rank4},
	}

	counts := countHandRanks(hand)

	assert.Equal(t, 3, counts[Rank3])
	assert.Equal(t, 2, counts[Rank4])
	assert.Equal(t, 0, counts[Rank5])
}

func TestFindCardsInHand(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{ID: 53, Suit: Joker, Rank: RankRedJoker},
		{ID: 52, Suit: Joker, Rank: RankBlackJoker},
		{ID: 7, Suit: Spade, Rank: Rank10},
		{ID: 1, Suit: Spade, Rank: Rank4},
		{ID: 14, Suit: Heart, Rank: Rank4},
		{ID: 0, Suit: Spade, Rank: Rank3},
	}

	t.Run("pair by rank", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, "44")
		require.NoError(t, err)
		assert.Equal(t, []Card{{ID: 1, Suit: Spade, Rank: Rank4}, {ID: 14, Suit: Heart, Rank: Rank4}}, cards)
	})

	t.Run("ten and lowercase", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, " 10 ")
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, 7, cards[0].ID)
	})

	t.Run("rocket keyword", func(t *testing.T) {
		t.Parallel()
		cards, err := FindCardsInHand(hand, "joker")
		require.NoError(t, err)
		assert.Len(t, cards, 2)
	})

	t.Run("not enough", func(t *testing.T) {
		t.Parallel()
		_, err := FindCardsInHand(hand, "333")
		assert.Error(t, err)
	})
}

func TestFindRocketInHand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hand  []Card
		found bool
	}{
		{
			name: "Has rocket",
			hand: []Card{
				{ID: 52, Suit: Joker, Rank: RankBlackJoker},
				{ID: 53, Suit: Joker, Rank: RankRedJoker},
				{ID: 0, Suit: Spade, Rank: Rank3},
			},
			found: true,
		},
		{
			name: "Only black joker",
			hand: []Card{
				{ID: 52, Suit: Joker, Rank: RankBlackJoker},
				{ID: 0, Suit: Spade, Rank: Rank3},
			},
		},
		{
			name: "No jokers",
			hand: []Card{
				{ID: 0, Suit: Spade, Rank: Rank3},
				{ID: 14, Suit: Heart, Rank: Rank4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards, found := findRocketInHand(tt.hand)
			assert.Equal(t, tt.found, found)
			if found {
				assert.Len(t, cards, 2)
			} else {
				assert.Nil(t, cards)
			}
		})
	}
}

func TestRemoveCardsByID(t *testing.T) {
	t.Parallel()

	// 点数花色相同也只按 ID 移除
	hand := []Card{
		{ID: 5, Suit: Spade, Rank: Rank8},
		{ID: 18, Suit: Heart, Rank: Rank8},
		{ID: 0, Suit: Spade, Rank: Rank3},
	}
	result := RemoveCards(hand, []Card{{ID: 18, Suit: Heart, Rank: Rank8}})

	assert.Equal(t, []Card{{ID: 5, Suit: Spade, Rank: Rank8}, {ID: 0, Suit: Spade, Rank: Rank3}}, result)
	assert.Len(t, hand, 3)
}

func TestContainsAll(t *testing.T) {
	t.Parallel()

	hand := []Card{{ID: 1, Rank: Rank4}, {ID: 2, Rank: Rank5}}

	assert.True(t, ContainsAll(hand, []Card{{ID: 2, Rank: Rank5}}))
	assert.False(t, ContainsAll(hand, []Card{{ID: 3, Rank: Rank5}}))
	assert.False(t, ContainsAll(hand, []Card{{ID: 1, Rank: Rank4}, {ID: 1, Rank: Rank4}}))
}

func TestSortHand(t *testing.T) {
	t.Parallel()

	hand := []Card{
		{ID: 0, Rank: Rank3},
		{ID: 53, Rank: RankRedJoker},
		{ID: 25, Rank: Rank2},
		{ID: 12, Rank: Rank2},
	}
	SortHand(hand)

	assert.Equal(t, []int{53, 12, 25, 0}, []int{hand[0].ID, hand[1].ID, hand[2].ID, hand[3].ID})
}
