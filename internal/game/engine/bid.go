package engine

import (
	"slices"

	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/game/card"
)

// ClaimLandlord 叫地主，只有 Bidder 可以叫
func (g *Game) ClaimLandlord(player int) error {
	if err := g.checkBidder(player); err != nil {
		return err
	}
	g.setLandlord(player)
	return nil
}

// DeclineLandlord 不叫，地主从其余三名玩家中随机产生
func (g *Game) DeclineLandlord(player int) error {
	if err := g.checkBidder(player); err != nil {
		return err
	}
	others := make([]int, 0, card.NumPlayers-1)
	for i := range card.NumPlayers {
		if i != player {
			others = append(others, i)
		}
	}
	g.setLandlord(others[g.rng.IntN(len(others))])
	return nil
}

func (g *Game) checkBidder(player int) error {
	if err := g.requirePhase(PhaseBidding); err != nil {
		return err
	}
	if player != g.bidder {
		return apperrors.ErrNotYourTurn
	}
	return nil
}

// setLandlord 底牌给地主，地主先出牌
func (g *Game) setLandlord(idx int) {
	g.landlord = idx
	g.hands[idx] = append(g.hands[idx], g.bottom...)
	card.SortHand(g.hands[idx])
	g.checkConservation()

	g.emit(Event{Kind: EventLandlord, Phase: g.phase, Player: idx, Cards: slices.Clone(g.bottom)})
	g.emit(Event{Kind: EventHandChanged, Phase: g.phase, Player: idx, Cards: slices.Clone(g.hands[idx]), CardsLeft: len(g.hands[idx])})

	g.setPhase(PhasePlaying)
	g.currentPlayer = idx
	g.emit(Event{Kind: EventTurn, Phase: PhasePlaying, Player: idx, Leader: true})
}
