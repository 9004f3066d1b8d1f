// Package publish 将对局结果发布到 NATS
package publish

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/protocol"
)

// Publisher 对局结果发布器
type Publisher interface {
	PublishResult(result protocol.GameResult) error
	Close()
}

// conn nats.Conn 中用到的部分
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NATSPublisher 基于 NATS 的发布器
type NATSPublisher struct {
	nc      conn
	subject string
}

// New 按配置创建发布器，未配置 URL 时返回空实现
func New(cfg config.NATSConfig) (Publisher, error) {
	if cfg.URL == "" {
		return Noop{}, nil
	}

	nc, err := nats.Connect(cfg.URL,
		nats.Name("four-landlord"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.L().Warn("⚠️ NATS 连接断开", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.L().Info("🔁 NATS 已重连", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats 连接失败: %w", err)
	}
	return newNATSPublisher(nc, cfg.Subject), nil
}

func newNATSPublisher(nc conn, subject string) *NATSPublisher {
	return &NATSPublisher{nc: nc, subject: subject}
}

// PublishResult 发布一局结果
func (p *NATSPublisher) PublishResult(result protocol.GameResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("序列化对局结果失败: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("发布对局结果失败: %w", err)
	}
	logger.L().Debug("published game result",
		zap.String("subject", p.subject),
		zap.String("table", result.TableID),
		zap.Int("round", result.Round))
	return nil
}

// Close 发送完缓冲中的消息后关闭连接
func (p *NATSPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		logger.L().Warn("NATS drain 失败", zap.Error(err))
	}
}

// Noop 不发布任何内容
type Noop struct{}

// PublishResult 直接返回
func (Noop) PublishResult(protocol.GameResult) error { return nil }

// Close 无操作
func (Noop) Close() {}
