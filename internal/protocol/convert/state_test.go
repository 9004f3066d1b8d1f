package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

var testSeats = Seats{
	Names: [card.NumPlayers]string{"你", "电脑1", "电脑2", "电脑3"},
	IsAI:  [card.NumPlayers]bool{false, true, true, true},
}

func TestPlayers(t *testing.T) {
	t.Parallel()

	s := engine.New(engine.Options{Seed: 4}).State()
	players := Players(s, testSeats)

	require.Len(t, players, card.NumPlayers)
	for i, p := range players {
		assert.Equal(t, i, p.Seat)
		assert.Equal(t, testSeats.Names[i], p.Name)
		assert.Equal(t, i != 0, p.IsAI)
		assert.False(t, p.IsLandlord)
		assert.Equal(t, card.HandSize, p.CardsCount)
	}
}

func TestDealCards_HidesBottomUntilLandlord(t *testing.T) {
	t.Parallel()

	g := engine.New(engine.Options{Seed: 4})
	before := DealCards("t1", 1, g.State(), 0, testSeats)
	assert.Equal(t, "t1", before.TableID)
	assert.Equal(t, 1, before.Round)
	assert.Len(t, before.Cards, card.HandSize)
	require.Len(t, before.BottomCards, card.BottomSize)
	for _, c := range before.BottomCards {
		assert.Empty(t, c.Label)
	}

	require.NoError(t, g.ClaimLandlord(0))
	s := g.State()
	after := DealCards("t1", 1, s, 0, testSeats)
	assert.Equal(t, CardsToInfos(s.Bottom), after.BottomCards)
	assert.Len(t, after.Cards, card.HandSize+card.BottomSize)
	assert.True(t, after.Players[0].IsLandlord)
}

func TestPlayTurn(t *testing.T) {
	t.Parallel()

	bidding := engine.State{Phase: engine.PhaseBidding, LastPlayer: -1}
	turn := PlayTurn(bidding, 2)
	assert.Equal(t, "bidding", turn.Phase)
	assert.False(t, turn.MustPlay)

	leading := engine.State{Phase: engine.PhasePlaying, LastPlayer: -1}
	turn = PlayTurn(leading, 1)
	assert.True(t, turn.MustPlay)
	assert.True(t, turn.CanBeat)

	var following engine.State
	following.Phase = engine.PhasePlaying
	following.LastPlayer = 3
	following.LastPlayed = []card.Card{{ID: 9, Suit: card.Spade, Rank: card.RankQ}}
	following.LastHandType = rule.Single
	following.Hands[0] = []card.Card{{ID: 1, Suit: card.Spade, Rank: card.Rank4}}
	following.Hands[1] = []card.Card{{ID: 12, Suit: card.Spade, Rank: card.Rank2}}

	assert.False(t, PlayTurn(following, 0).CanBeat)
	assert.False(t, PlayTurn(following, 0).MustPlay)
	assert.True(t, PlayTurn(following, 1).CanBeat)
}

func TestGameOver(t *testing.T) {
	t.Parallel()

	var s engine.State
	s.Phase = engine.PhaseGameOver
	s.Landlord = 2
	s.Winner = 1
	s.Hands[2] = []card.Card{{ID: 0, Suit: card.Spade, Rank: card.Rank3}}

	over := GameOver(s, 0, testSeats)
	assert.Equal(t, 1, over.WinnerSeat)
	assert.Equal(t, "电脑1", over.WinnerName)
	assert.False(t, over.IsLandlord)
	assert.True(t, over.YouWin)
	require.Len(t, over.PlayerHands, card.NumPlayers)
	assert.Len(t, over.PlayerHands[2].Cards, 1)
	assert.Empty(t, over.PlayerHands[1].Cards)

	assert.False(t, GameOver(s, 2, testSeats).YouWin)
}
