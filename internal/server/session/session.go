// Package session 将一个 WebSocket 连接绑定到一张牌桌：座位 0 为玩家本人，其余座位为电脑
package session

import (
	"fmt"

	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/clock"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/table"
	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
	"github.com/palemoky/four-landlord/internal/protocol/convert"
	"github.com/palemoky/four-landlord/internal/types"
)

// GameOverFunc 牌局结束回调，在牌桌锁内调用，不能回调会话的方法
type GameOverFunc func(s *GameSession, u table.Update)

// GameSession 玩家的牌局会话
type GameSession struct {
	client     types.ClientInterface
	table      *table.Table
	seats      convert.Seats
	onGameOver GameOverFunc
}

// NewGameSession 创建会话并订阅牌桌事件，调用 Start 开局
func NewGameSession(client types.ClientInterface, cfg config.GameConfig, clk clock.Scheduler, onGameOver GameOverFunc) *GameSession {
	s := &GameSession{
		client:     client,
		table:      table.New(cfg, table.Options{Clock: clk}),
		seats:      SeatsFor(client.GetName()),
		onGameOver: onGameOver,
	}
	s.table.Subscribe(s.onUpdate)
	return s
}

// SeatsFor 玩家坐 0 号位，其余为电脑
func SeatsFor(playerName string) convert.Seats {
	var seats convert.Seats
	for i := range card.NumPlayers {
		if i == table.HumanSeat {
			seats.Names[i] = playerName
			continue
		}
		seats.Names[i] = fmt.Sprintf("电脑%d", i)
		seats.IsAI[i] = true
	}
	return seats
}

// Client 会话所属连接
func (s *GameSession) Client() types.ClientInterface {
	return s.client
}

// TableID 牌桌 ID
func (s *GameSession) TableID() string {
	return s.table.ID()
}

// Seats 座位信息
func (s *GameSession) Seats() convert.Seats {
	return s.seats
}

// Start 开始新的一局
func (s *GameSession) Start() error {
	return s.table.Start()
}

// Bid 叫地主或不叫
func (s *GameSession) Bid(claim bool) error {
	if claim {
		return s.table.Claim(table.HumanSeat)
	}
	return s.table.Decline(table.HumanSeat)
}

// Play 出牌，只使用牌的 ID
func (s *GameSession) Play(cards []protocol.CardInfo) error {
	return s.table.Play(table.HumanSeat, convert.InfosToCards(cards))
}

// Pass 不出
func (s *GameSession) Pass() error {
	return s.table.Pass(table.HumanSeat)
}

// Hint 出牌提示
func (s *GameSession) Hint() ([]card.Card, error) {
	return s.table.Hint(table.HumanSeat)
}

// Close 关闭牌桌
func (s *GameSession) Close() {
	s.table.Close()
}

// onUpdate 牌桌事件回调，在牌桌锁内执行，只做转换和非阻塞发送
func (s *GameSession) onUpdate(u table.Update) {
	for _, msg := range UpdateMessages(u, table.HumanSeat, s.seats) {
		s.client.SendMessage(msg)
	}
	if u.Event.Kind == engine.EventGameOver && s.onGameOver != nil {
		s.onGameOver(s, u)
	}
}

// UpdateMessages 将牌桌事件转换为 viewer 视角的消息，其他玩家的手牌不下发
func UpdateMessages(u table.Update, viewer int, seats convert.Seats) []*protocol.Message {
	e := u.Event
	st := u.State

	switch e.Kind {
	case engine.EventPhaseChanged:
		return one(protocol.MsgPhase, protocol.PhasePayload{Phase: e.Phase.String()})

	case engine.EventDealt, engine.EventHandChanged:
		if e.Player != viewer {
			return nil
		}
		return one(protocol.MsgDealCards, convert.DealCards(u.TableID, u.Round, st, viewer, seats))

	case engine.EventLandlord:
		return one(protocol.MsgLandlord, protocol.LandlordPayload{
			Seat:        e.Player,
			PlayerName:  seats.Names[e.Player],
			BottomCards: convert.CardsToInfos(e.Cards),
		})

	case engine.EventTurn:
		return one(protocol.MsgPlayTurn, convert.PlayTurn(st, e.Player))

	case engine.EventCardsPlayed:
		return one(protocol.MsgCardPlayed, protocol.CardPlayedPayload{
			Seat:         e.Player,
			PlayerName:   seats.Names[e.Player],
			Cards:        convert.CardsToInfos(e.Cards),
			CardsLeft:    e.CardsLeft,
			HandType:     e.HandType.Code(),
			HandTypeName: e.HandType.String(),
		})

	case engine.EventPassed:
		return one(protocol.MsgPlayerPass, protocol.PlayerPassPayload{
			Seat:       e.Player,
			PlayerName: seats.Names[e.Player],
		})

	case engine.EventGameOver:
		return one(protocol.MsgGameOver, convert.GameOver(st, viewer, seats))
	}
	return nil
}

func one(t protocol.MessageType, payload any) []*protocol.Message {
	return []*protocol.Message{codec.MustNewMessage(t, payload)}
}
