package engine

import (
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

// Phase 牌局阶段
type Phase int

const (
	PhaseDealing Phase = iota
	PhaseBidding
	PhasePlaying
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseDealing:  "dealing",
	PhaseBidding:  "bidding",
	PhasePlaying:  "playing",
	PhaseGameOver: "game_over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// EventKind 事件类型
type EventKind int

const (
	EventDealt        EventKind = iota // 发牌，每个玩家一条
	EventPhaseChanged                  // 阶段变化
	EventLandlord                      // 确定地主，Cards 为底牌
	EventHandChanged                   // 手牌变化
	EventCardsPlayed                   // 出牌
	EventPassed                        // 不出
	EventTurn                          // 轮到某玩家（叫地主或出牌）
	EventGameOver                      // 游戏结束，Player 为获胜者
)

var eventNames = map[EventKind]string{
	EventDealt:        "dealt",
	EventPhaseChanged: "phase_changed",
	EventLandlord:     "landlord",
	EventHandChanged:  "hand_changed",
	EventCardsPlayed:  "cards_played",
	EventPassed:       "passed",
	EventTurn:         "turn",
	EventGameOver:     "game_over",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event 状态变化通知，Cards 均为副本
type Event struct {
	Kind      EventKind
	Phase     Phase
	Player    int
	Cards     []card.Card
	HandType  rule.HandType
	CardsLeft int
	// Leader 为 true 表示 EventTurn 的玩家是首出
	Leader bool
}

// Listener 接收引擎事件，在引擎方法内同步调用
type Listener func(Event)
