package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
	"github.com/palemoky/four-landlord/internal/types"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 50
)

// --- 排行榜处理 ---

// handleGetStats 获取个人统计
func (h *Handler) handleGetStats(client types.ClientInterface) {
	if h.stats == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeStorage))
		return
	}

	ctx := context.Background()
	playerStats, err := h.stats.GetStats(ctx, client.GetID())
	if err != nil {
		logger.L().Error("获取统计失败", zap.String("player", client.GetID()), zap.Error(err))
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeStorage, "获取统计失败"))
		return
	}

	if playerStats == nil {
		// 没有统计数据，返回空数据
		client.SendMessage(codec.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
			PlayerID:   client.GetID(),
			PlayerName: client.GetName(),
		}))
		return
	}

	rank, _ := h.stats.GetPlayerRank(ctx, client.GetID())

	client.SendMessage(codec.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
		PlayerID:      playerStats.PlayerID,
		PlayerName:    playerStats.PlayerName,
		TotalGames:    playerStats.TotalGames,
		Wins:          playerStats.Wins,
		Losses:        playerStats.Losses,
		WinRate:       playerStats.WinRate(),
		LandlordGames: playerStats.LandlordGames,
		LandlordWins:  playerStats.LandlordWins,
		FarmerGames:   playerStats.FarmerGames,
		FarmerWins:    playerStats.FarmerWins,
		Rank:          rank,
		CurrentStreak: playerStats.CurrentStreak,
		MaxWinStreak:  playerStats.MaxWinStreak,
	}))
}

// handleGetLeaderboard 获取排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	if h.stats == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeStorage))
		return
	}

	payload, err := codec.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		payload = &protocol.GetLeaderboardPayload{}
	}

	// 限制请求数量
	if payload.Limit <= 0 || payload.Limit > maxLeaderboardLimit {
		payload.Limit = defaultLeaderboardLimit
	}
	payload.Offset = max(0, payload.Offset)

	entries, err := h.stats.GetLeaderboard(context.Background(), payload.Offset, payload.Limit)
	if err != nil {
		logger.L().Error("获取排行榜失败", zap.Error(err))
		client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeStorage, "获取排行榜失败"))
		return
	}

	protocolEntries := make([]protocol.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		protocolEntries = append(protocolEntries, protocol.LeaderboardEntry{
			Rank:       entry.Rank,
			PlayerID:   entry.PlayerID,
			PlayerName: entry.PlayerName,
			Wins:       entry.Wins,
			WinRate:    entry.WinRate,
		})
	}

	client.SendMessage(codec.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: protocolEntries,
	}))
}
