package client

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/engine"
	"github.com/palemoky/four-landlord/internal/game/rule"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
	"github.com/palemoky/four-landlord/internal/protocol/convert"
)

// idleTimeout 超过这个时间没有收到消息视为服务器卡住
const idleTimeout = 30 * time.Second

// Bot 按提示出牌的自动玩家，用于联调和压测
type Bot struct {
	client *Client
	seat   int
	hand   []card.Card
}

// NewBot 使用已连接的客户端创建机器人
func NewBot(c *Client) *Bot {
	return &Bot{client: c}
}

// Play 连续打 games 局，返回每局结果
func (b *Bot) Play(ctx context.Context, games int) ([]protocol.GameOverPayload, error) {
	_, _, b.seat = b.client.Info()
	if err := b.client.NewGame(); err != nil {
		return nil, err
	}

	results := make([]protocol.GameOverPayload, 0, games)
	for len(results) < games {
		recvCtx, cancel := context.WithTimeout(ctx, idleTimeout)
		msg, err := b.client.ReceiveContext(recvCtx)
		cancel()
		if err != nil {
			return results, err
		}

		over, err := b.handle(msg)
		codec.PutMessage(msg)
		if err != nil {
			return results, err
		}
		if over == nil {
			continue
		}

		results = append(results, *over)
		if len(results) < games {
			if err := b.client.NewGame(); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

// handle 处理一条消息，牌局结束时返回结果
func (b *Bot) handle(msg *protocol.Message) (*protocol.GameOverPayload, error) {
	switch msg.Type {
	case protocol.MsgConnected:
		payload, err := codec.ParsePayload[protocol.ConnectedPayload](msg)
		if err != nil {
			return nil, err
		}
		b.seat = payload.Seat

	case protocol.MsgDealCards:
		payload, err := codec.ParsePayload[protocol.DealCardsPayload](msg)
		if err != nil {
			return nil, err
		}
		b.hand = convert.InfosToCards(payload.Cards)

	case protocol.MsgPlayTurn:
		payload, err := codec.ParsePayload[protocol.PlayTurnPayload](msg)
		if err != nil {
			return nil, err
		}
		if payload.Seat != b.seat {
			return nil, nil
		}
		switch payload.Phase {
		case engine.PhaseBidding.String():
			return nil, b.client.Bid(rule.ShouldClaim(b.hand))
		case engine.PhasePlaying.String():
			return nil, b.client.Hint()
		}

	case protocol.MsgHintResult:
		payload, err := codec.ParsePayload[protocol.HintResultPayload](msg)
		if err != nil {
			return nil, err
		}
		if payload.Pass {
			return nil, b.client.Pass()
		}
		return nil, b.client.PlayCards(payload.Cards)

	case protocol.MsgGameOver:
		payload, err := codec.ParsePayload[protocol.GameOverPayload](msg)
		if err != nil {
			return nil, err
		}
		logger.L().Debug("机器人牌局结束",
			zap.Int("winner", payload.WinnerSeat),
			zap.Bool("you_win", payload.YouWin))
		return payload, nil

	case protocol.MsgError:
		payload, err := codec.ParsePayload[protocol.ErrorPayload](msg)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("服务器返回错误 %d: %s", payload.Code, payload.Message)
	}
	return nil, nil
}
