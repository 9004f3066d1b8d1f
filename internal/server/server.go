// Package server 提供 WebSocket 接入：每个连接一张牌桌，玩家坐 0 号位，其余为电脑
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/game/clock"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
	"github.com/palemoky/four-landlord/internal/server/handler"
	"github.com/palemoky/four-landlord/internal/server/publish"
	"github.com/palemoky/four-landlord/internal/types"
)

// Deps 服务器依赖
type Deps struct {
	// Stats 为空时不记录战绩
	Stats     types.StatsInterface
	Publisher publish.Publisher
	Clock     clock.Scheduler
}

// Server WebSocket 服务器
type Server struct {
	config    *config.Config
	handler   *handler.Handler
	publisher publish.Publisher
	upgrader  websocket.Upgrader

	clients   map[string]*Client
	clientsMu sync.RWMutex

	// 安全组件
	originChecker  *OriginChecker
	messageLimiter *MessageRateLimiter

	// 连接控制
	maxConnections int
	semaphore      chan struct{}

	httpServer *http.Server
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config, deps Deps) *Server {
	if deps.Publisher == nil {
		deps.Publisher = publish.Noop{}
	}

	s := &Server{
		config:    cfg,
		publisher: deps.Publisher,
		handler: handler.NewHandler(handler.HandlerDeps{
			Game:      cfg.Game,
			Stats:     deps.Stats,
			Publisher: deps.Publisher,
			Clock:     deps.Clock,
		}),
		clients:        make(map[string]*Client),
		originChecker:  NewOriginChecker(cfg.Security.AllowedOrigins),
		messageLimiter: NewMessageRateLimiter(cfg.Security.MessageLimit.MaxPerSecond),
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.originChecker.Check,
	}

	logger.L().Info("🔒 安全配置",
		zap.Int("message_limit", cfg.Security.MessageLimit.MaxPerSecond),
		zap.Int("max_connections", cfg.Server.MaxConnections),
		zap.Strings("allowed_origins", cfg.Security.AllowedOrigins))
	return s
}

// Routes HTTP 路由
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start 启动服务器，ctx 取消后优雅关闭
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Server.Host, fmt.Sprint(s.config.Server.Port))
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		IdleTimeout:       60 * time.Second,
	}

	go s.monitorStats(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("🚀 服务器启动", zap.String("addr", "ws://"+addr+"/ws"), zap.Int("cpus", runtime.NumCPU()))
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientIP := GetClientIP(r)

	// 连接数限制检查
	select {
	case s.semaphore <- struct{}{}:
	default:
		logger.L().Warn("🚫 达到最大连接数限制", zap.Int("max", s.maxConnections), zap.String("ip", clientIP))
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	if !s.originChecker.Check(r) {
		<-s.semaphore
		logger.L().Warn("🚫 来源验证失败", zap.String("origin", r.Header.Get("Origin")), zap.String("ip", clientIP))
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		<-s.semaphore
		logger.L().Warn("WebSocket 升级失败", zap.Error(err))
		return
	}

	client := NewClient(s, conn, r.URL.Query().Get("name"))
	client.IP = clientIP
	s.registerClient(client)

	client.SendMessage(codec.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID:   client.ID,
		PlayerName: client.Name,
		Seat:       0,
	}))
	logger.L().Info("✅ 玩家已连接", zap.String("player", client.Name), zap.String("id", client.ID), zap.String("ip", clientIP))

	go client.ReadPump()
	go client.WritePump()
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端并释放连接名额
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		<-s.semaphore
		logger.L().Info("❌ 玩家已断开", zap.String("player", client.Name), zap.String("id", client.ID))
	}
}

// GetOnlineCount 在线人数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}
