// Package handler 分发客户端消息：每个连接一个单机牌局会话，另有战绩与排行榜查询
package handler

import (
	"sync"

	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/game/clock"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/protocol"
	"github.com/palemoky/four-landlord/internal/protocol/codec"
	"github.com/palemoky/four-landlord/internal/server/publish"
	"github.com/palemoky/four-landlord/internal/server/session"
	"github.com/palemoky/four-landlord/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Game config.GameConfig
	// Stats 为空时不记录战绩
	Stats types.StatsInterface
	// Publisher 为空时不发布对局结果
	Publisher publish.Publisher
	// Clock 为空时使用真实时间
	Clock clock.Scheduler
}

// Handler 消息处理器
type Handler struct {
	game      config.GameConfig
	stats     types.StatsInterface
	publisher publish.Publisher
	clock     clock.Scheduler

	handlers map[protocol.MessageType]handlerFunc

	sessions   map[string]*session.GameSession
	sessionsMu sync.RWMutex
	// closed 之后不再创建会话，也不再记录战绩
	closed bool

	// 后台记录战绩
	background sync.WaitGroup
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		game:      deps.Game,
		stats:     deps.Stats,
		publisher: deps.Publisher,
		clock:     deps.Clock,
		sessions:  make(map[string]*session.GameSession),
	}
	if h.publisher == nil {
		h.publisher = publish.Noop{}
	}
	if h.clock == nil {
		h.clock = clock.Real{}
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		protocol.MsgPing: h.handlePing,

		// 游戏操作
		protocol.MsgNewGame:   func(c types.ClientInterface, _ *protocol.Message) { h.handleNewGame(c) },
		protocol.MsgBid:       h.handleBid,
		protocol.MsgPlayCards: h.handlePlayCards,
		protocol.MsgPass:      func(c types.ClientInterface, _ *protocol.Message) { h.handlePass(c) },
		protocol.MsgHint:      func(c types.ClientInterface, _ *protocol.Message) { h.handleHint(c) },

		// 信息查询
		protocol.MsgGetStats:       func(c types.ClientInterface, _ *protocol.Message) { h.handleGetStats(c) },
		protocol.MsgGetLeaderboard: h.handleGetLeaderboard,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	logger.L().Warn("⚠️ 未知消息类型",
		zap.String("type", string(msg.Type)),
		zap.String("player", client.GetName()),
		zap.String("id", client.GetID()),
		zap.Int("payload_bytes", len(msg.Payload)))
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// GetGameSession 获取连接的牌局会话
func (h *Handler) GetGameSession(clientID string) *session.GameSession {
	h.sessionsMu.RLock()
	defer h.sessionsMu.RUnlock()
	return h.sessions[clientID]
}

// ActiveSessions 当前会话数
func (h *Handler) ActiveSessions() int {
	h.sessionsMu.RLock()
	defer h.sessionsMu.RUnlock()
	return len(h.sessions)
}

// Disconnect 连接断开，关闭其牌桌
func (h *Handler) Disconnect(client types.ClientInterface) {
	h.sessionsMu.Lock()
	gs := h.sessions[client.GetID()]
	delete(h.sessions, client.GetID())
	h.sessionsMu.Unlock()

	if gs != nil {
		gs.Close()
	}
}

// Close 关闭所有牌桌并等待战绩写完
func (h *Handler) Close() {
	h.sessionsMu.Lock()
	h.closed = true
	sessions := h.sessions
	h.sessions = make(map[string]*session.GameSession)
	h.sessionsMu.Unlock()

	for _, gs := range sessions {
		gs.Close()
	}
	h.background.Wait()
}

// sessionFor 获取或创建连接的会话，处理器关闭后返回 nil
func (h *Handler) sessionFor(client types.ClientInterface) *session.GameSession {
	h.sessionsMu.Lock()
	defer h.sessionsMu.Unlock()

	if h.closed {
		return nil
	}
	if gs, ok := h.sessions[client.GetID()]; ok {
		return gs
	}
	gs := session.NewGameSession(client, h.game, h.clock, h.onGameOver)
	h.sessions[client.GetID()] = gs
	return gs
}
