// Package table 托管一局四人牌局：串行化人类和电脑的操作，调度电脑回合，向订阅者广播状态变化
package table

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/apperrors"
	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/clock"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/logger"
)

// HumanSeat 默认的人类玩家座位
const HumanSeat = 0

// Update 推送给订阅者的事件，State 为事件发生时的快照
type Update struct {
	TableID string
	Round   int
	Event   engine.Event
	State   engine.State
}

// Subscriber 在持有牌桌锁时同步调用，不能回调牌桌的方法
type Subscriber func(Update)

// Options 牌桌参数
type Options struct {
	// Humans 人类玩家座位，为空时使用 HumanSeat；传入空切片表示全部为电脑
	Humans []int
	Clock  clock.Scheduler
}

// Table 一张牌桌，同一时间只有一局游戏
type Table struct {
	id    string
	cfg   config.GameConfig
	clock clock.Scheduler

	mu          sync.Mutex
	game        *engine.Game
	round       int
	humans      [card.NumPlayers]bool
	subscribers []Subscriber
	closed      bool
	dealing     bool
	buffered    []engine.Event

	// 电脑回合，同一时间最多一个
	pending    clock.Timer
	pendingSeq int
}

// New 创建牌桌，调用 Start 开局
func New(cfg config.GameConfig, opts Options) *Table {
	t := &Table{
		id:    uuid.NewString(),
		cfg:   cfg,
		clock: opts.Clock,
	}
	if t.clock == nil {
		t.clock = clock.Real{}
	}

	humans := opts.Humans
	if humans == nil {
		humans = []int{HumanSeat}
	}
	for _, seat := range humans {
		if seat >= 0 && seat < card.NumPlayers {
			t.humans[seat] = true
		}
	}
	return t
}

// ID 牌桌 ID
func (t *Table) ID() string {
	return t.id
}

// IsHuman 座位是否为人类玩家
func (t *Table) IsHuman(seat int) bool {
	return seat >= 0 && seat < card.NumPlayers && t.humans[seat]
}

// Subscribe 订阅状态变化
func (t *Table) Subscribe(s Subscriber) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subscribers = append(t.subscribers, s)
}

// Start 开始新的一局，正在进行的牌局直接作废
func (t *Table) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrTableClosed
	}
	t.cancelPending()
	t.round++

	seed := t.cfg.Seed
	if seed != 0 {
		seed += uint64(t.round - 1)
	}

	// 发牌期间 game 尚未创建，事件先缓存，开局后再带上快照推送
	t.game = nil
	t.dealing = true
	var err error
	t.guard(func() {
		t.game = engine.New(engine.Options{
			Seed:     seed,
			Bidder:   t.cfg.Bidder,
			Listener: t.publish,
		})
	}, &err)
	t.dealing = false
	if err != nil {
		return err
	}
	buffered := t.buffered
	t.buffered = nil
	for _, e := range buffered {
		t.publish(e)
	}

	s := t.game.State()
	logger.L().Info("🃏 新牌局开始",
		zap.String("table", t.id),
		zap.Int("round", t.round),
		zap.Uint64("seed", s.Seed),
		zap.Int("bidder", s.Bidder))

	t.scheduleAI()
	return nil
}

// Snapshot 当前牌局快照，未开局时返回 false
func (t *Table) Snapshot() (engine.State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game == nil {
		return engine.State{}, false
	}
	return t.game.State(), true
}

// Claim 人类玩家叫地主
func (t *Table) Claim(seat int) error {
	return t.act(seat, func(g *engine.Game) error { return g.ClaimLandlord(seat) })
}

// Decline 人类玩家不叫
func (t *Table) Decline(seat int) error {
	return t.act(seat, func(g *engine.Game) error { return g.DeclineLandlord(seat) })
}

// Play 人类玩家出牌
func (t *Table) Play(seat int, cards []card.Card) error {
	return t.act(seat, func(g *engine.Game) error { return g.SubmitPlay(seat, cards) })
}

// Pass 人类玩家不出
func (t *Table) Pass(seat int) error {
	return t.act(seat, func(g *engine.Game) error { return g.SubmitPass(seat) })
}

// Hint 出牌提示，nil 表示只能不出
func (t *Table) Hint(seat int) ([]card.Card, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game == nil {
		return nil, ErrNoGame
	}
	return slices.Clone(t.game.RequestHint(seat)), nil
}

// Close 关闭牌桌并取消待执行的电脑回合
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.cancelPending()
	t.subscribers = nil
}

// act 执行人类玩家的操作，成功后安排下一个电脑回合
func (t *Table) act(seat int, fn func(g *engine.Game) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrTableClosed
	}
	if t.game == nil {
		return ErrNoGame
	}
	if !t.IsHuman(seat) {
		return apperrors.ErrNotYourTurn
	}

	var err error
	t.guard(func() { err = fn(t.game) }, &err)
	if err != nil {
		return err
	}
	t.scheduleAI()
	return nil
}

// scheduleAI 轮到电脑时登记一个延时任务，调用方需持有锁
func (t *Table) scheduleAI() {
	t.cancelPending()

	seat, ok := t.aiToAct()
	if !ok {
		return
	}

	t.pendingSeq++
	seq := t.pendingSeq
	t.pending = t.clock.AfterFunc(t.cfg.AIDelay(), func() {
		t.runAI(seq, seat)
	})
}

// aiToAct 需要行动的电脑座位
func (t *Table) aiToAct() (int, bool) {
	if t.game == nil {
		return 0, false
	}
	var seat int
	switch t.game.Phase() {
	case engine.PhaseBidding, engine.PhasePlaying:
		seat = t.game.CurrentPlayer()
	default:
		return 0, false
	}
	if t.humans[seat] {
		return 0, false
	}
	return seat, true
}

func (t *Table) cancelPending() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// runAI 电脑回合到期
func (t *Table) runAI(seq, seat int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// 已被取消或已被新任务替换
	if t.closed || seq != t.pendingSeq || t.pending == nil {
		return
	}
	t.pending = nil

	var err error
	t.guard(func() { err = t.game.TriggerAITurn(seat) }, &err)
	if err != nil {
		logger.L().Error("电脑出牌失败", zap.String("table", t.id), zap.Int("seat", seat), zap.Error(err))
		return
	}
	t.scheduleAI()
}

// publish 引擎事件回调，在持有锁时调用
func (t *Table) publish(e engine.Event) {
	if len(t.subscribers) == 0 {
		return
	}
	if t.dealing {
		t.buffered = append(t.buffered, e)
		return
	}
	u := Update{TableID: t.id, Round: t.round, Event: e, State: t.game.State()}
	for _, s := range t.subscribers {
		s(u)
	}
}

// guard 捕获牌数守恒 panic，牌桌随即关闭
func (t *Table) guard(fn func(), errp *error) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			t.closed = true
			t.cancelPending()
			if ie, ok := r.(*apperrors.InvariantError); ok {
				*errp = fmt.Errorf("牌桌 %s 已关闭: %w", t.id, ie)
				return
			}
			panic(r)
		}
	}()
	fn()
}
