package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/game/table"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
	"github.com/palemoky/four-landlord/internal/protocol/convert"
	"github.com/palemoky/four-landlord/internal/server/session"
	"github.com/palemoky/four-landlord/internal/types"
)

const recordTimeout = 3 * time.Second

// handleNewGame 开一局新游戏，上一局直接作废
func (h *Handler) handleNewGame(client types.ClientInterface) {
	gs := h.sessionFor(client)
	if gs == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeClosing))
		return
	}
	if err := gs.Start(); err != nil {
		client.SendMessage(codec.NewErrorMessageFrom(err))
	}
}

// handleBid 处理叫地主
func (h *Handler) handleBid(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.BidPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	h.withSession(client, func(gs *session.GameSession) error { return gs.Bid(payload.Bid) })
}

// handlePlayCards 处理出牌
func (h *Handler) handlePlayCards(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PlayCardsPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	h.withSession(client, func(gs *session.GameSession) error { return gs.Play(payload.Cards) })
}

// handlePass 处理不出
func (h *Handler) handlePass(client types.ClientInterface) {
	h.withSession(client, func(gs *session.GameSession) error { return gs.Pass() })
}

// handleHint 处理出牌提示
func (h *Handler) handleHint(client types.ClientInterface) {
	h.withSession(client, func(gs *session.GameSession) error {
		cards, err := gs.Hint()
		if err != nil {
			return err
		}
		client.SendMessage(codec.MustNewMessage(protocol.MsgHintResult, protocol.HintResultPayload{
			Cards: convert.CardsToInfos(cards),
			Pass:  len(cards) == 0,
		}))
		return nil
	})
}

// withSession 在连接的会话上执行操作，错误转换为错误消息
func (h *Handler) withSession(client types.ClientInterface, fn func(gs *session.GameSession) error) {
	gs := h.GetGameSession(client.GetID())
	if gs == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeNoTable))
		return
	}
	if err := fn(gs); err != nil {
		client.SendMessage(codec.NewErrorMessageFrom(err))
	}
}

// onGameOver 牌局结束，在牌桌锁内调用，写库和发布放到后台
func (h *Handler) onGameOver(gs *session.GameSession, u table.Update) {
	client := gs.Client()
	st := u.State
	result := protocol.GameResult{
		TableID:    u.TableID,
		Round:      u.Round,
		PlayerID:   client.GetID(),
		PlayerName: client.GetName(),
		Landlord:   st.Landlord,
		Winner:     st.Winner,
		HumanWon:   st.Won(table.HumanSeat),
		Seed:       st.Seed,
		PlayedAt:   time.Now().UnixMilli(),
	}

	// 持有读锁登记后台任务，保证 Close 的 Wait 不会漏掉它
	h.sessionsMu.RLock()
	defer h.sessionsMu.RUnlock()
	if h.closed {
		return
	}
	h.background.Go(func() {
		h.recordResult(result)
	})
}

// recordResult 记录战绩并发布结果
func (h *Handler) recordResult(result protocol.GameResult) {
	log := logger.L().With(zap.String("table", result.TableID), zap.Int("round", result.Round))

	if h.stats != nil {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		_, err := h.stats.RecordGameResult(ctx, result.PlayerID, result.PlayerName,
			result.Landlord == table.HumanSeat, result.HumanWon)
		cancel()
		if err != nil {
			log.Error("记录战绩失败", zap.String("player", result.PlayerID), zap.Error(err))
		}
	}

	if err := h.publisher.PublishResult(result); err != nil {
		log.Error("发布对局结果失败", zap.Error(err))
	}
	log.Info("🏁 牌局结束",
		zap.String("player", result.PlayerName),
		zap.Int("landlord", result.Landlord),
		zap.Int("winner", result.Winner),
		zap.Bool("human_won", result.HumanWon))
}
