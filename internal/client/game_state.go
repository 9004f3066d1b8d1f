// Package client 维护终端客户端看到的牌局：自己的手牌、各家最近一手和记牌器
package client

import (
	"slices"

	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/table"
)

// SeatAction 某个座位本轮最近的动作
type SeatAction struct {
	Cards    []card.Card
	HandType string
	Passed   bool
}

// GameState 玩家视角的牌局状态，只由 Apply 更新
type GameState struct {
	Viewer int

	TableID string
	Round   int
	Phase   engine.Phase

	Hand          []card.Card
	BottomCards   []card.Card // 地主确定后才可见
	Landlord      int
	Bidder        int
	CurrentPlayer int
	Leader        bool
	CardsLeft     [card.NumPlayers]int
	LastActions   [card.NumPlayers]*SeatAction

	// 结束后亮牌
	Winner        int
	YouWin        bool
	RevealedHands [card.NumPlayers][]card.Card

	CardCounter *CardCounter
}

// NewGameState 创建 viewer 视角的状态
func NewGameState(viewer int) *GameState {
	gs := &GameState{Viewer: viewer}
	gs.Reset()
	return gs
}

// Reset 清空牌局
func (gs *GameState) Reset() {
	viewer := gs.Viewer
	*gs = GameState{
		Viewer:        viewer,
		Landlord:      -1,
		CurrentPlayer: -1,
		Winner:        -1,
		CardCounter:   NewCardCounter(),
	}
}

// MyTurn 是否轮到自己
func (gs *GameState) MyTurn() bool {
	return gs.CurrentPlayer == gs.Viewer &&
		(gs.Phase == engine.PhaseBidding || gs.Phase == engine.PhasePlaying)
}

// IsLandlord 自己是否为地主
func (gs *GameState) IsLandlord() bool {
	return gs.Landlord == gs.Viewer
}

// Apply 应用一条牌桌事件
func (gs *GameState) Apply(u table.Update) {
	e := u.Event
	if e.Kind == engine.EventPhaseChanged && e.Phase == engine.PhaseDealing {
		gs.Reset()
	}

	gs.TableID = u.TableID
	gs.Round = u.Round
	gs.Landlord = u.State.Landlord
	gs.Bidder = u.State.Bidder
	for i, hand := range u.State.Hands {
		gs.CardsLeft[i] = len(hand)
	}

	switch e.Kind {
	case engine.EventPhaseChanged:
		gs.Phase = e.Phase

	case engine.EventDealt, engine.EventHandChanged:
		if e.Player == gs.Viewer {
			gs.Hand = slices.Clone(e.Cards)
			card.SortHand(gs.Hand)
			gs.CardCounter.DeductCards(gs.Hand)
		}

	case engine.EventLandlord:
		gs.BottomCards = slices.Clone(e.Cards)
		gs.CardCounter.DeductCards(e.Cards)

	case engine.EventTurn:
		gs.CurrentPlayer = e.Player
		gs.Leader = e.Leader
		// 新一轮，清空桌面
		if e.Phase == engine.PhasePlaying && e.Leader {
			gs.LastActions = [card.NumPlayers]*SeatAction{}
		}

	case engine.EventCardsPlayed:
		gs.LastActions[e.Player] = &SeatAction{Cards: slices.Clone(e.Cards), HandType: e.HandType.String()}
		gs.CardCounter.DeductCards(e.Cards)

	case engine.EventPassed:
		gs.LastActions[e.Player] = &SeatAction{Passed: true}

	case engine.EventGameOver:
		gs.Winner = e.Player
		gs.YouWin = u.State.Won(gs.Viewer)
		gs.CurrentPlayer = -1
		for i, hand := range u.State.Hands {
			gs.RevealedHands[i] = slices.Clone(hand)
		}
	}
}
