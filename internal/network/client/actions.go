package client

import (
	"time"

	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
)

// --- 便捷方法 ---

// NewGame 开一局新游戏
func (c *Client) NewGame() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgNewGame, nil))
}

// Bid 叫地主
func (c *Client) Bid(bid bool) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgBid, protocol.BidPayload{
		Bid: bid,
	}))
}

// PlayCards 出牌
func (c *Client) PlayCards(cards []protocol.CardInfo) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPlayCards, protocol.PlayCardsPayload{
		Cards: cards,
	}))
}

// Pass 不出
func (c *Client) Pass() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPass, nil))
}

// Hint 请求出牌提示
func (c *Client) Hint() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgHint, nil))
}

// GetStats 获取个人统计
func (c *Client) GetStats() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgGetStats, nil))
}

// GetLeaderboard 获取排行榜
func (c *Client) GetLeaderboard(offset, limit int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{
		Offset: offset,
		Limit:  limit,
	}))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}

// StartHeartbeat 定期发送心跳，连接关闭后停止
func (c *Client) StartHeartbeat(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if c.IsConnected() {
					_ = c.Ping()
				}
			case <-c.done:
				return
			}
		}
	}()
}
