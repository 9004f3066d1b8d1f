package engine

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palemoky/four-landlord/internal/game/card"
)

// recorder 记录引擎事件
type recorder struct {
	events []Event
}

func (r *recorder) listen(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (r *recorder) reset() {
	r.events = nil
}

// rigGame 构造指定手牌的出牌阶段牌局，其余牌视为已经出过
func rigGame(t *testing.T, landlord, current int, ranks [card.NumPlayers][]card.Rank) *Game {
	t.Helper()

	deck := card.NewDeck()
	used := make(map[int]bool)
	g := &Game{
		phase:         PhasePlaying,
		bidder:        landlord,
		landlord:      landlord,
		winner:        -1,
		currentPlayer: current,
		lastPlayer:    -1,
		seed:          1,
		rng:           rand.New(rand.NewPCG(1, 1)),
	}
	for i, rs := range ranks {
		for _, r := range rs {
			idx := slices.IndexFunc(deck, func(c card.Card) bool { return c.Rank == r && !used[c.ID] })
			require.GreaterOrEqual(t, idx, 0, "not enough %s", r)
			used[deck[idx].ID] = true
			g.hands[i] = append(g.hands[i], deck[idx])
		}
		card.SortHand(g.hands[i])
	}
	for _, c := range deck {
		if !used[c.ID] {
			g.played = append(g.played, c)
		}
	}
	g.checkConservation()
	return g
}

// pick 从手牌中按点数取牌
func pick(t *testing.T, hand []card.Card, ranks ...card.Rank) []card.Card {
	t.Helper()

	taken := make(map[int]bool)
	var result []card.Card
	for _, r := range ranks {
		idx := slices.IndexFunc(hand, func(c card.Card) bool { return c.Rank == r && !taken[c.ID] })
		require.GreaterOrEqual(t, idx, 0, "hand has no %s", r)
		taken[hand[idx].ID] = true
		result = append(result, hand[idx])
	}
	return result
}
