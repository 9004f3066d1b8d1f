// Package engine 实现四人斗地主的回合状态机：发牌、叫地主、出牌直到有人出完
package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/rule"
)

// Options 牌局参数
type Options struct {
	// Seed 决定洗牌和随机地主，0 表示随机
	Seed uint64
	// Bidder 决定是否当地主的玩家
	Bidder int
	// Listener 事件回调，可为空
	Listener Listener
}

// State 牌局快照，所有切片均为副本
type State struct {
	Phase         Phase
	Hands         [card.NumPlayers][]card.Card
	Bottom        []card.Card
	Bidder        int
	Landlord      int
	CurrentPlayer int
	LastPlayed    []card.Card
	LastHandType  rule.HandType
	LastPlayer    int
	Winner        int
	Played        []card.Card
	Seed          uint64
}

// IsLeader 当前玩家是否为首出
func (s State) IsLeader() bool {
	return s.LastPlayer == -1 || s.LastPlayer == s.CurrentPlayer
}

// Won 座位所在一方是否获胜：地主单独一方，其余三家为农民
func (s State) Won(seat int) bool {
	if s.Winner < 0 || s.Landlord < 0 {
		return false
	}
	return (seat == s.Landlord) == (s.Winner == s.Landlord)
}

// Game 一局游戏，非并发安全，由调用方串行化操作
type Game struct {
	phase  Phase
	hands  [card.NumPlayers][]card.Card
	bottom []card.Card
	played []card.Card

	bidder   int
	landlord int
	winner   int

	currentPlayer int
	lastHand      rule.ParsedHand
	lastPlayer    int

	seed     uint64
	rng      *rand.Rand
	listener Listener
}

// New 洗牌发牌，进入叫地主阶段
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	bidder := opts.Bidder
	if bidder < 0 || bidder >= card.NumPlayers {
		bidder = 0
	}

	g := &Game{
		phase:      PhaseDealing,
		bidder:     bidder,
		landlord:   -1,
		winner:     -1,
		lastPlayer: -1,
		seed:       seed,
		rng:        rand.New(rand.NewPCG(seed, seed>>1|1)),
		listener:   opts.Listener,
	}
	g.emit(Event{Kind: EventPhaseChanged, Phase: PhaseDealing})
	g.deal()
	return g
}

// deal 发牌
func (g *Game) deal() {
	deck := card.NewDeck()
	deck.Shuffle(g.rng)
	g.hands, g.bottom = card.Deal(deck)
	g.checkConservation()

	for i, hand := range g.hands {
		g.emit(Event{Kind: EventDealt, Phase: g.phase, Player: i, Cards: slices.Clone(hand), CardsLeft: len(hand)})
	}

	g.setPhase(PhaseBidding)
	g.currentPlayer = g.bidder
	g.emit(Event{Kind: EventTurn, Phase: PhaseBidding, Player: g.bidder})
}

// State 返回当前状态的快照
func (g *Game) State() State {
	s := State{
		Phase:         g.phase,
		Bottom:        slices.Clone(g.bottom),
		Bidder:        g.bidder,
		Landlord:      g.landlord,
		CurrentPlayer: g.currentPlayer,
		LastPlayed:    slices.Clone(g.lastHand.Cards),
		LastHandType:  g.lastHand.Type,
		LastPlayer:    g.lastPlayer,
		Winner:        g.winner,
		Played:        slices.Clone(g.played),
		Seed:          g.seed,
	}
	for i, hand := range g.hands {
		s.Hands[i] = slices.Clone(hand)
	}
	return s
}

// Phase 当前阶段
func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPlayer 当前行动的玩家
func (g *Game) CurrentPlayer() int {
	return g.currentPlayer
}

func (g *Game) isLeader() bool {
	return g.lastPlayer == -1 || g.lastPlayer == g.currentPlayer
}

// reference 当前玩家需要压过的牌，首出时为空
func (g *Game) reference() rule.ParsedHand {
	if g.isLeader() {
		return rule.ParsedHand{}
	}
	return g.lastHand
}

// requirePhase 检查阶段
func (g *Game) requirePhase(want Phase) error {
	if g.phase == want {
		return nil
	}
	if g.phase == PhaseGameOver {
		return apperrors.ErrGameOver
	}
	if want == PhaseBidding {
		return apperrors.ErrNotBidding
	}
	return apperrors.ErrNotPlaying
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.emit(Event{Kind: EventPhaseChanged, Phase: p})
}

func (g *Game) emit(e Event) {
	if g.listener != nil {
		g.listener(e)
	}
}

// checkConservation 手牌、未发放的底牌和已出的牌合起来必须恰好是一副牌
func (g *Game) checkConservation() {
	seen := make(map[int]int, card.DeckSize)
	count := func(cards []card.Card) {
		for _, c := range cards {
			seen[c.ID]++
		}
	}
	for _, hand := range g.hands {
		count(hand)
	}
	if g.landlord == -1 {
		count(g.bottom)
	}
	count(g.played)

	if len(seen) != card.DeckSize {
		panic(&apperrors.InvariantError{Detail: fmt.Sprintf("应有 %d 张不同的牌，实际 %d 张", card.DeckSize, len(seen))})
	}
	for id, n := range seen {
		if id < 0 || id >= card.DeckSize || n != 1 {
			panic(&apperrors.InvariantError{Detail: fmt.Sprintf("牌 %d 出现 %d 次", id, n)})
		}
	}
}
