package types

import (
	"context"

	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/server/storage"
)

// ClientInterface 一个 WebSocket 连接（用于打破 server 与 handler 的循环依赖）
type ClientInterface interface {
	GetID() string
	GetName() string
	SendMessage(msg *protocol.Message)
	Close()
}

// StatsInterface 战绩存储
type StatsInterface interface {
	RecordGameResult(ctx context.Context, playerID, playerName string, isLandlord, won bool) (*storage.PlayerStats, error)
	GetStats(ctx context.Context, playerID string) (*storage.PlayerStats, error)
	GetPlayerRank(ctx context.Context, playerID string) (int, error)
	GetLeaderboard(ctx context.Context, offset, limit int) ([]storage.LeaderboardEntry, error)
}
