package rule

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/four-landlord/internal/game/card"
)

func ranksOf(cards []card.Card) []card.Rank {
	ranks := make([]card.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	return ranks
}

func TestFindSmallestBeatingCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		playerHand   []card.Rank
		opponentHand []card.Rank
		expected     []card.Rank
	}{
		{
			name:         "Single: Beat 3 with 4",
			playerHand:   []card.Rank{r4, r5},
			opponentHand: []card.Rank{r3},
			expected:     []card.Rank{r4},
		},
		{
			name:         "Single: Cannot beat 2 with Ace",
			playerHand:   []card.Rank{rA, rK},
			opponentHand: []card.Rank{r2},
			expected:     nil,
		},
		{
			name:         "Single: Joker beats 2",
			playerHand:   []card.Rank{rA, rB},
			opponentHand: []card.Rank{r2},
			expected:     []card.Rank{rB},
		},
		{
			name:         "Pair: Beat 3s with 4s",
			playerHand:   []card.Rank{r4, r4, r5},
			opponentHand: []card.Rank{r3, r3},
			expected:     []card.Rank{r4, r4},
		},
		{
			name:         "Trio: Beat 3s with 4s",
			playerHand:   []card.Rank{r4, r4, r4},
			opponentHand: []card.Rank{r3, r3, r3},
			expected:     []card.Rank{r4, r4, r4},
		},
		{
			name:         "TrioWithSingle: Beat 333+5 with 444+6",
			playerHand:   []card.Rank{r4, r4, r4, r6},
			opponentHand: []card.Rank{r3, r3, r3, r5},
			expected:     []card.Rank{r4, r4, r4, r6},
		},
		{
			name:         "TrioWithSingle: Needs a fourth card",
			playerHand:   []card.Rank{r4, r4, r4},
			opponentHand: []card.Rank{r3, r3, r3, r5},
			expected:     nil,
		},
		{
			name:         "TrioWithPair: Beat 333+55 with 444+66",
			playerHand:   []card.Rank{r4, r4, r4, r6, r6},
			opponentHand: []card.Rank{r3, r3, r3, r5, r5},
			expected:     []card.Rank{r4, r4, r4, r6, r6},
		},
		{
			name:         "TrioWithPair: Cannot beat without pair kicker",
			playerHand:   []card.Rank{r4, r4, r4, r6},
			opponentHand: []card.Rank{r3, r3, r3, r5, r5},
			expected:     nil,
		},
		{
			name:         "Pair: Beat with Bomb (fallback)",
			playerHand:   []card.Rank{r5, r6, r6, r6, r6},
			opponentHand: []card.Rank{r2, r2},
			expected:     []card.Rank{r6, r6, r6, r6},
		},
		{
			name:         "Straight: Only bombs can answer",
			playerHand:   []card.Rank{r8, r9, r10, rJ, rQ, rK, r3, r3, r3, r3},
			opponentHand: []card.Rank{r3, r4, r5, r6, r7},
			expected:     []card.Rank{r3, r3, r3, r3},
		},
		{
			name:         "Bomb: Beat smaller bomb with larger bomb",
			playerHand:   []card.Rank{r6, r6, r6, r6},
			opponentHand: []card.Rank{r5, r5, r5, r5},
			expected:     []card.Rank{r6, r6, r6, r6},
		},
		{
			name:         "Bomb: Beat bomb with Rocket",
			playerHand:   []card.Rank{rB, rR, r3},
			opponentHand: []card.Rank{r2, r2, r2, r2},
			expected:     []card.Rank{rB, rR},
		},
		{
			name:         "Rocket: Nothing answers",
			playerHand:   []card.Rank{r6, r6, r6, r6, rA},
			opponentHand: []card.Rank{rB, rR},
			expected:     nil,
		},
		{
			name:         "New Round: Play smallest single",
			playerHand:   []card.Rank{rA, r5},
			opponentHand: nil,
			expected:     []card.Rank{r5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var parsedOpponent ParsedHand
			if tt.opponentHand != nil {
				parsedOpponent = mustParse(t, cardsOf(tt.opponentHand...))
			}

			result := FindSmallestBeatingCards(cardsOf(tt.playerHand...), parsedOpponent)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, ranksOf(result))
		})
	}
}

func TestFindSmallestBeatingCards_EmptyHand(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FindSmallestBeatingCards(nil, ParsedHand{}))
}

// 随机手牌和上家出牌，选出的牌必须合法、来自手牌、并且能压过上家
func TestFindSmallestBeatingCards_AlwaysLegal(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 1))
	found := 0
	for range 2000 {
		deck := card.NewDeck()
		deck.Shuffle(rng)
		hand := deck[:card.HandSize]

		var prior ParsedHand
		if rng.IntN(4) > 0 {
			size := 1 + rng.IntN(6)
			parsed, err := ParseHand(deck[card.HandSize : card.HandSize+size])
			if err != nil {
				continue
			}
			prior = parsed
		}

		result := FindSmallestBeatingCards(hand, prior)
		if result == nil {
			continue
		}
		found++

		assert.True(t, card.ContainsAll(hand, result), card.FormatCards(result))
		parsed, err := ParseHand(result)
		require.NoError(t, err, card.FormatCards(result))
		if !prior.IsEmpty() {
			assert.True(t, CanBeat(parsed, prior), "%s vs %s", card.FormatCards(result), card.FormatCards(prior.Cards))
		}
	}
	assert.Positive(t, found)
}

func TestShouldClaim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hand     []card.Rank
		expected bool
	}{
		{"bomb", []card.Rank{r3, r3, r3, r3, r5, r7}, true},
		{"rocket", []card.Rank{rB, rR, r4}, true},
		{"four big cards", []card.Rank{r2, r2, rB, r2, r5}, true},
		{"three big cards", []card.Rank{r2, r2, rB, rA, rA}, false},
		{"small cards", []card.Rank{r3, r4, r5, r6, r7, r8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ShouldClaim(cardsOf(tt.hand...)))
		})
	}
}
