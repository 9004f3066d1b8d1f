// Package storage 持久化玩家战绩与排行榜
package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:wins"
)

// ErrInvalidPlayer 玩家 ID 为空
var ErrInvalidPlayer = errors.New("玩家 ID 不能为空")

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string
	PlayerName string

	// 总计
	TotalGames int
	Wins       int
	Losses     int

	// 地主/农民分开统计
	LandlordGames int
	LandlordWins  int
	FarmerGames   int
	FarmerWins    int

	// 正数为连胜，负数为连败
	CurrentStreak int
	MaxWinStreak  int

	LastPlayedAt int64
	CreatedAt    int64
}

// WinRate 胜率百分比
func (s *PlayerStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames) * 100
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int
	PlayerID   string
	PlayerName string
	Wins       int
	WinRate    float64
}

// StatsStore 基于 Redis 的战绩存储：每个玩家一个 hash，胜场排行榜为 ZSET
type StatsStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewStatsStore 创建战绩存储
func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{client: client, now: time.Now}
}

// Ping 检查 Redis 连接
func (s *StatsStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 关闭 Redis 连接
func (s *StatsStore) Close() error {
	return s.client.Close()
}

// GetStats 获取玩家统计，不存在时返回 nil
func (s *StatsStore) GetStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := s.client.HGetAll(ctx, playerStatsKey+playerID).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeStats(playerID, data), nil
}

// RecordGameResult 记录一局结果，isLandlord 表示玩家是否为地主，won 表示玩家所在一方是否获胜
func (s *StatsStore) RecordGameResult(ctx context.Context, playerID, playerName string, isLandlord, won bool) (*PlayerStats, error) {
	if playerID == "" {
		return nil, ErrInvalidPlayer
	}

	stats, err := s.GetStats(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("读取战绩失败: %w", err)
	}
	now := s.now().Unix()
	if stats == nil {
		stats = &PlayerStats{PlayerID: playerID, CreatedAt: now}
	}

	stats.PlayerName = playerName
	stats.TotalGames++
	stats.LastPlayedAt = now
	updateRoleStats(stats, isLandlord, won)
	updateWinLossStats(stats, won)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, playerStatsKey+playerID, encodeStats(stats))
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(stats.Wins), Member: playerID})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("保存战绩失败: %w", err)
	}
	return stats, nil
}

// GetPlayerRank 获取玩家排名，从 1 开始，未上榜返回 -1
func (s *StatsStore) GetPlayerRank(ctx context.Context, playerID string) (int, error) {
	rank, err := s.client.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil
		}
		return -1, err
	}
	return int(rank) + 1, nil
}

// GetLeaderboard 按胜场从高到低获取排行榜
func (s *StatsStore) GetLeaderboard(ctx context.Context, offset, limit int) ([]LeaderboardEntry, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return nil, nil
	}

	results, err := s.client.ZRevRangeWithScores(ctx, leaderboardKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		playerID, ok := result.Member.(string)
		if !ok {
			continue
		}
		stats, err := s.GetStats(ctx, playerID)
		if err != nil || stats == nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:       offset + i + 1,
			PlayerID:   playerID,
			PlayerName: stats.PlayerName,
			Wins:       int(result.Score),
			WinRate:    stats.WinRate(),
		})
	}
	return entries, nil
}

// updateRoleStats 更新地主/农民统计
func updateRoleStats(stats *PlayerStats, isLandlord, won bool) {
	if isLandlord {
		stats.LandlordGames++
		if won {
			stats.LandlordWins++
		}
		return
	}
	stats.FarmerGames++
	if won {
		stats.FarmerWins++
	}
}

// updateWinLossStats 更新胜负统计和连胜/连败
func updateWinLossStats(stats *PlayerStats, won bool) {
	if won {
		stats.Wins++
		stats.CurrentStreak = max(1, stats.CurrentStreak+1)
	} else {
		stats.Losses++
		stats.CurrentStreak = min(-1, stats.CurrentStreak-1)
	}
	stats.MaxWinStreak = max(stats.MaxWinStreak, stats.CurrentStreak)
}

func encodeStats(stats *PlayerStats) map[string]any {
	return map[string]any{
		"player_name":    stats.PlayerName,
		"total_games":    stats.TotalGames,
		"wins":           stats.Wins,
		"losses":         stats.Losses,
		"landlord_games": stats.LandlordGames,
		"landlord_wins":  stats.LandlordWins,
		"farmer_games":   stats.FarmerGames,
		"farmer_wins":    stats.FarmerWins,
		"current_streak": stats.CurrentStreak,
		"max_win_streak": stats.MaxWinStreak,
		"last_played_at": stats.LastPlayedAt,
		"created_at":     stats.CreatedAt,
	}
}

func decodeStats(playerID string, data map[string]string) *PlayerStats {
	atoi := func(key string) int {
		n, _ := strconv.Atoi(data[key])
		return n
	}
	atoi64 := func(key string) int64 {
		n, _ := strconv.ParseInt(data[key], 10, 64)
		return n
	}
	return &PlayerStats{
		PlayerID:      playerID,
		PlayerName:    data["player_name"],
		TotalGames:    atoi("total_games"),
		Wins:          atoi("wins"),
		Losses:        atoi("losses"),
		LandlordGames: atoi("landlord_games"),
		LandlordWins:  atoi("landlord_wins"),
		FarmerGames:   atoi("farmer_games"),
		FarmerWins:    atoi("farmer_wins"),
		CurrentStreak: atoi("current_streak"),
		MaxWinStreak:  atoi("max_win_streak"),
		LastPlayedAt:  atoi64("last_played_at"),
		CreatedAt:     atoi64("created_at"),
	}
}
