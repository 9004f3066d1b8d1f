package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端与客户端共用的配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	NATS     NATSConfig     `yaml:"nats"`
	Game     GameConfig     `yaml:"game"`
	Client   ClientConfig   `yaml:"client"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"` // 最大连接数
}

// RedisConfig Redis 配置，用于战绩和排行榜
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// NATSConfig 对局结果发布，URL 为空时不发布
type NATSConfig struct {
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// GameConfig 牌局配置
type GameConfig struct {
	AIDelayMs int    `yaml:"ai_delay_ms"` // 电脑思考时间（毫秒）
	Bidder    int    `yaml:"bidder"`      // 决定是否叫地主的座位
	Seed      uint64 `yaml:"seed"`        // 0 表示每局随机
}

// ClientConfig 终端客户端配置
type ClientConfig struct {
	Sound    bool   `yaml:"sound"`
	SoundDir string `yaml:"sound_dir"` // 音效文件目录，缺失的音效用提示音代替
	Name     string `yaml:"name"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins []string           `yaml:"allowed_origins"`
	MessageLimit   MessageLimitConfig `yaml:"message_limit"`
}

// MessageLimitConfig 单连接消息速率限制
type MessageLimitConfig struct {
	MaxPerSecond int `yaml:"max_per_second"`
}

// AIDelay 返回电脑思考时长
func (c *GameConfig) AIDelay() time.Duration {
	return time.Duration(c.AIDelayMs) * time.Millisecond
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	// 布尔值无法区分未设置，先按默认值填充
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return cfg, nil
}

// fillDefaults 设置默认值
func (c *Config) fillDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 1780
	}
	if c.Server.MaxConnections == 0 {
		c.Server.MaxConnections = 1000
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.NATS.Subject == "" {
		c.NATS.Subject = "landlord.game.over"
	}
	if c.Game.AIDelayMs <= 0 {
		c.Game.AIDelayMs = 800
	}
	if c.Game.Bidder < 0 || c.Game.Bidder > 3 {
		c.Game.Bidder = 0
	}
	if c.Client.SoundDir == "" {
		c.Client.SoundDir = "assets/sounds"
	}
	if c.Client.Name == "" {
		c.Client.Name = "玩家"
	}
	if len(c.Security.AllowedOrigins) == 0 {
		c.Security.AllowedOrigins = []string{"*"}
	}
	if c.Security.MessageLimit.MaxPerSecond == 0 {
		c.Security.MessageLimit.MaxPerSecond = 20
	}
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{
		Client: ClientConfig{Sound: true},
	}
	cfg.fillDefaults()
	return cfg
}
