package server

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/logger"
)

// monitorInterval 状态监控间隔
const monitorInterval = 30 * time.Second

// monitorStats 定期记录服务器状态
func (s *Server) monitorStats(ctx context.Context) {
	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		logger.L().Info("📊 [监控]",
			zap.Int("online", s.GetOnlineCount()),
			zap.Int("tables", s.handler.ActiveSessions()),
			zap.Int("goroutines", runtime.NumGoroutine()),
			zap.Int("active_conns", len(s.semaphore)),
			zap.Int("max_conns", s.maxConnections),
			zap.Float64("alloc_mb", float64(m.Alloc)/1024/1024))
	}
}

// Shutdown 停止接收新连接，关闭所有牌桌和连接，等待战绩写完
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.RLock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.RUnlock()

	s.handler.Close()
	s.publisher.Close()

	logger.L().Info("服务器已关闭")
	return err
}
