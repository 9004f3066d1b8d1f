package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

func TestSubmitPlay_Errors(t *testing.T) {
	t.Parallel()

	g := rigGame(t, 0, 0, [card.NumPlayers][]card.Rank{
		{card.Rank3, card.Rank5, card.RankK},
		{card.Rank4, card.Rank6},
		{card.Rank7, card.Rank8},
		{card.Rank9, card.Rank10},
	})

	assert.ErrorIs(t, g.SubmitPlay(1, pick(t, g.hands[1], card.Rank4)), apperrors.ErrNotYourTurn)
	assert.ErrorIs(t, g.SubmitPlay(0, nil), apperrors.ErrMustLeadWithPlay)
	assert.ErrorIs(t, g.SubmitPlay(0, pick(t, g.hands[1], card.Rank4)), apperrors.ErrCardsNotInHand)
	assert.ErrorIs(t, g.SubmitPlay(0, pick(t, g.hands[0], card.Rank3, card.Rank5)), apperrors.ErrInvalidPlay)
	assert.ErrorIs(t, g.SubmitPass(0), apperrors.ErrCannotPassAsLeader)

	dup := pick(t, g.hands[0], card.Rank3)
	assert.ErrorIs(t, g.SubmitPlay(0, append(dup, dup[0])), apperrors.ErrCardsNotInHand)

	require.NoError(t, g.SubmitPlay(0, pick(t, g.hands[0], card.Rank5)))
	assert.ErrorIs(t, g.SubmitPlay(1, pick(t, g.hands[1], card.Rank4)), apperrors.ErrInvalidPlay)
	assert.ErrorIs(t, g.SubmitPlay(1, nil), apperrors.ErrEmptySelection)
	assert.ErrorIs(t, g.SubmitPass(2), apperrors.ErrNotYourTurn)
}

func TestSubmitPlay_UsesHandCards(t *testing.T) {
	t.Parallel()

	g := rigGame(t, 0, 0, [card.NumPlayers][]card.Rank{
		{card.Rank3, card.Rank5},
		{card.Rank4},
		{card.Rank7},
		{card.Rank9},
	})

	// 只带 ID 的牌也会按手牌中的真实牌处理
	target := pick(t, g.hands[0], card.Rank5)[0]
	require.NoError(t, g.SubmitPlay(0, []card.Card{{ID: target.ID}}))

	s := g.State()
	assert.Equal(t, []card.Card{target}, s.LastPlayed)
	assert.Equal(t, rule.Single, s.LastHandType)
}

func TestTrickFlow(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := rigGame(t, 0, 0, [card.NumPlayers][]card.Rank{
		{card.Rank3, card.Rank5, card.RankK},
		{card.Rank4, card.Rank6},
		{card.Rank7, card.Rank8},
		{card.Rank9, card.Rank10},
	})
	g.listener = rec.listen

	three := pick(t, g.hands[0], card.Rank3)
	require.NoError(t, g.SubmitPlay(0, three))
	assert.Equal(t, []EventKind{EventCardsPlayed, EventHandChanged, EventTurn}, rec.kinds())
	assert.Equal(t, rule.Single, rec.events[0].HandType)
	assert.Equal(t, 2, rec.events[0].CardsLeft)
	assert.False(t, rec.events[2].Leader)

	require.NoError(t, g.SubmitPass(1))
	require.NoError(t, g.SubmitPass(2))
	require.NoError(t, g.SubmitPass(3))

	// 没人压过，回到出牌者，新一轮
	s := g.State()
	assert.Equal(t, 0, s.CurrentPlayer)
	assert.Equal(t, 0, s.LastPlayer)
	assert.Equal(t, three, s.LastPlayed)
	assert.True(t, s.IsLeader())
	assert.True(t, rec.events[len(rec.events)-1].Leader)
	assert.ErrorIs(t, g.SubmitPass(0), apperrors.ErrCannotPassAsLeader)

	// 首出可以出任意合法牌型，无需压过自己上一手
	require.NoError(t, g.SubmitPlay(0, pick(t, g.hands[0], card.Rank5)))
	require.NoError(t, g.SubmitPlay(1, pick(t, g.hands[1], card.Rank6)))
	require.NoError(t, g.SubmitPass(2))
	require.NoError(t, g.SubmitPlay(3, pick(t, g.hands[3], card.Rank10)))

	s = g.State()
	assert.Equal(t, 3, s.LastPlayer)
	assert.Equal(t, 0, s.CurrentPlayer)
	assert.False(t, s.IsLeader())
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestGameOver(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	g := rigGame(t, 2, 2, [card.NumPlayers][]card.Rank{
		{card.Rank3},
		{card.Rank4},
		{card.Rank9, card.Rank9},
		{card.Rank10},
	})
	g.listener = rec.listen

	require.NoError(t, g.SubmitPlay(2, pick(t, g.hands[2], card.Rank9, card.Rank9)))

	s := g.State()
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 2, s.Winner)
	assert.Empty(t, s.Hands[2])
	assert.Equal(t, []EventKind{EventCardsPlayed, EventHandChanged, EventPhaseChanged, EventGameOver}, rec.kinds())
	assert.Equal(t, 2, rec.events[3].Player)

	assert.ErrorIs(t, g.SubmitPlay(3, pick(t, g.hands[3], card.Rank10)), apperrors.ErrGameOver)
	assert.ErrorIs(t, g.SubmitPass(3), apperrors.ErrGameOver)
	assert.ErrorIs(t, g.ClaimLandlord(2), apperrors.ErrGameOver)
	assert.ErrorIs(t, g.TriggerAITurn(3), apperrors.ErrGameOver)
	assert.Nil(t, g.RequestHint(3))
}

func TestRequestHint(t *testing.T) {
	t.Parallel()

	g := rigGame(t, 0, 0, [card.NumPlayers][]card.Rank{
		{card.Rank8, card.Rank8, card.RankA},
		{card.Rank4, card.RankQ, card.RankQ},
		{card.Rank5},
		{card.Rank6},
	})

	// 首出提示最小的单张
	hint := g.RequestHint(0)
	require.Len(t, hint, 1)
	assert.Equal(t, card.Rank8, hint[0].Rank)

	require.NoError(t, g.SubmitPlay(0, pick(t, g.hands[0], card.Rank8, card.Rank8)))
	hint = g.RequestHint(1)
	assert.Equal(t, []card.Rank{card.RankQ, card.RankQ}, []card.Rank{hint[0].Rank, hint[1].Rank})
	assert.Nil(t, g.RequestHint(2))

	// 出牌者自己看提示时视为首出
	assert.Len(t, g.RequestHint(0), 1)
	assert.Nil(t, g.RequestHint(-1))
}

func TestTriggerAITurn_Playing(t *testing.T) {
	t.Parallel()

	g := rigGame(t, 0, 0, [card.NumPlayers][]card.Rank{
		{card.Rank3, card.RankA},
		{card.Rank4},
		{card.Rank2, card.Rank5},
		{card.Rank6, card.Rank7},
	})

	assert.ErrorIs(t, g.TriggerAITurn(1), apperrors.ErrNotYourTurn)
	require.NoError(t, g.TriggerAITurn(0))
	assert.Equal(t, card.Rank3, g.State().LastPlayed[0].Rank)

	require.NoError(t, g.TriggerAITurn(1))
	assert.Equal(t, card.Rank4, g.State().LastPlayed[0].Rank)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 1, g.State().Winner)
}

func TestTriggerAITurn_Bidding(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 50; seed++ {
		g := New(Options{Seed: seed, Bidder: 3})
		hand := g.State().Hands[3]
		require.NoError(t, g.TriggerAITurn(3))

		s := g.State()
		if rule.ShouldClaim(hand) {
			assert.Equal(t, 3, s.Landlord)
		} else {
			assert.NotEqual(t, 3, s.Landlord)
		}
		assert.Equal(t, PhasePlaying, s.Phase)
	}

	g := New(Options{Seed: 1, Bidder: 3})
	assert.ErrorIs(t, g.TriggerAITurn(0), apperrors.ErrNotYourTurn)
}

// 全部由电脑打完的牌局：必然结束，获胜者恰好是最后一手出完牌的人
func TestAIOnlyGamesTerminate(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 200; seed++ {
		rec := &recorder{}
		g := New(Options{Seed: seed, Bidder: int(seed % card.NumPlayers), Listener: rec.listen})

		steps := 0
		for g.Phase() != PhaseGameOver {
			require.Less(t, steps, 1000, "seed %d did not terminate", seed)
			require.NoError(t, g.TriggerAITurn(g.CurrentPlayer()), "seed %d", seed)
			steps++
		}

		s := g.State()
		require.GreaterOrEqual(t, s.Winner, 0)
		assert.Empty(t, s.Hands[s.Winner])
		for i, hand := range s.Hands {
			if i != s.Winner {
				assert.NotEmpty(t, hand)
			}
		}

		last := rec.events[len(rec.events)-1]
		assert.Equal(t, EventGameOver, last.Kind)
		assert.Equal(t, s.Winner, last.Player)

		var lastPlay Event
		for _, e := range rec.events {
			if e.Kind == EventCardsPlayed {
				lastPlay = e
			}
		}
		assert.Equal(t, s.Winner, lastPlay.Player)
		assert.Zero(t, lastPlay.CardsLeft)
	}
}
