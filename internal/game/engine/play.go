package engine

import (
	"slices"

	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

// SubmitPlay 出牌
func (g *Game) SubmitPlay(player int, cards []card.Card) error {
	if err := g.requirePhase(PhasePlaying); err != nil {
		return err
	}
	if player != g.currentPlayer {
		return apperrors.ErrNotYourTurn
	}

	if len(cards) == 0 {
		if g.isLeader() {
			return apperrors.ErrMustLeadWithPlay
		}
		return apperrors.ErrEmptySelection
	}

	selected, ok := pickFromHand(g.hands[player], cards)
	if !ok {
		return apperrors.ErrCardsNotInHand
	}

	handToPlay, err := rule.ParseHand(selected)
	if err != nil {
		return apperrors.ErrInvalidPlay
	}
	if !g.isLeader() && !rule.CanBeat(handToPlay, g.lastHand) {
		return apperrors.ErrInvalidPlay
	}

	// 出牌成功，更新状态
	g.hands[player] = card.RemoveCards(g.hands[player], selected)
	g.played = append(g.played, handToPlay.Cards...)
	g.lastHand = handToPlay
	g.lastPlayer = player
	g.checkConservation()

	left := len(g.hands[player])
	g.emit(Event{
		Kind:      EventCardsPlayed,
		Phase:     g.phase,
		Player:    player,
		Cards:     slices.Clone(handToPlay.Cards),
		HandType:  handToPlay.Type,
		CardsLeft: left,
	})
	g.emit(Event{Kind: EventHandChanged, Phase: g.phase, Player: player, Cards: slices.Clone(g.hands[player]), CardsLeft: left})

	// 出完即获胜
	if left == 0 {
		g.winner = player
		g.setPhase(PhaseGameOver)
		g.emit(Event{Kind: EventGameOver, Phase: PhaseGameOver, Player: player})
		return nil
	}

	g.advance()
	return nil
}

// SubmitPass 不出
func (g *Game) SubmitPass(player int) error {
	if err := g.requirePhase(PhasePlaying); err != nil {
		return err
	}
	if player != g.currentPlayer {
		return apperrors.ErrNotYourTurn
	}
	if g.isLeader() {
		return apperrors.ErrCannotPassAsLeader
	}

	g.emit(Event{Kind: EventPassed, Phase: g.phase, Player: player, CardsLeft: len(g.hands[player])})
	g.advance()
	return nil
}

// advance 轮到下一个玩家；轮回到上一个出牌的人即开始新一轮
func (g *Game) advance() {
	g.currentPlayer = (g.currentPlayer + 1) % card.NumPlayers
	g.emit(Event{Kind: EventTurn, Phase: g.phase, Player: g.currentPlayer, Leader: g.isLeader()})
}

// RequestHint 提示：返回能压过当前牌面的最小牌组，nil 表示只能不出
func (g *Game) RequestHint(player int) []card.Card {
	if g.phase != PhasePlaying || player < 0 || player >= card.NumPlayers {
		return nil
	}
	ref := g.lastHand
	if g.lastPlayer == -1 || g.lastPlayer == player {
		ref = rule.ParsedHand{}
	}
	return rule.FindSmallestBeatingCards(g.hands[player], ref)
}

// TriggerAITurn 电脑行动：叫地主阶段按牌力决定是否叫，出牌阶段出最小能压过的牌，否则不出
func (g *Game) TriggerAITurn(player int) error {
	switch g.phase {
	case PhaseBidding:
		if player != g.bidder {
			return apperrors.ErrNotYourTurn
		}
		if rule.ShouldClaim(g.hands[player]) {
			return g.ClaimLandlord(player)
		}
		return g.DeclineLandlord(player)
	case PhasePlaying:
		if player != g.currentPlayer {
			return apperrors.ErrNotYourTurn
		}
		if cards := g.RequestHint(player); cards != nil {
			return g.SubmitPlay(player, cards)
		}
		return g.SubmitPass(player)
	case PhaseGameOver:
		return apperrors.ErrGameOver
	default:
		return apperrors.ErrNotPlaying
	}
}

// pickFromHand 按 ID 取出手牌中对应的牌，重复或不存在时返回 false
func pickFromHand(hand, cards []card.Card) ([]card.Card, bool) {
	if !card.ContainsAll(hand, cards) {
		return nil, false
	}
	selected := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		idx := slices.IndexFunc(hand, func(h card.Card) bool { return h.ID == c.ID })
		selected = append(selected, hand[idx])
	}
	return selected, true
}
