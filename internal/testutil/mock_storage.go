//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/server/storage"
)

// MockStats 战绩存储 mock
type MockStats struct {
	mock.Mock
}

func (m *MockStats) RecordGameResult(ctx context.Context, playerID, playerName string, isLandlord, won bool) (*storage.PlayerStats, error) {
	args := m.Called(ctx, playerID, playerName, isLandlord, won)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.PlayerStats), args.Error(1)
}

func (m *MockStats) GetStats(ctx context.Context, playerID string) (*storage.PlayerStats, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.PlayerStats), args.Error(1)
}

func (m *MockStats) GetPlayerRank(ctx context.Context, playerID string) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

func (m *MockStats) GetLeaderboard(ctx context.Context, offset, limit int) ([]storage.LeaderboardEntry, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.LeaderboardEntry), args.Error(1)
}

// MockPublisher 对局结果发布 mock
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishResult(result protocol.GameResult) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockPublisher) Close() {
	m.Called()
}
