package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
server:
  host: "127.0.0.1"
  port: 8080
  max_connections: 5000

redis:
  addr: "redis:6379"
  password: "secret"
  db: 1

nats:
  url: "nats://nats:4222"
  subject: "games.finished"

game:
  ai_delay_ms: 250
  bidder: 2
  seed: 42

client:
  sound: false
  name: "老王"

security:
  allowed_origins:
    - "http://localhost:3000"
  message_limit:
    max_per_second: 5
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5000, cfg.Server.MaxConnections)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "nats://nats:4222", cfg.NATS.URL)
	assert.Equal(t, "games.finished", cfg.NATS.Subject)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.AIDelay())
	assert.Equal(t, 2, cfg.Game.Bidder)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.False(t, cfg.Client.Sound)
	assert.Equal(t, "老王", cfg.Client.Name)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 5, cfg.Security.MessageLimit.MaxPerSecond)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "server:\n  port: 9000\n"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Server.MaxConnections)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.NATS.URL)
	assert.Equal(t, "landlord.game.over", cfg.NATS.Subject)
	assert.Equal(t, 800*time.Millisecond, cfg.Game.AIDelay())
	assert.Zero(t, cfg.Game.Bidder)
	assert.True(t, cfg.Client.Sound)
	assert.Equal(t, "assets/sounds", cfg.Client.SoundDir)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
}

func TestLoad_InvalidBidder(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "game:\n  bidder: 9\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Game.Bidder)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 1780, cfg.Server.Port)
	assert.Equal(t, 800, cfg.Game.AIDelayMs)
	assert.True(t, cfg.Client.Sound)
	assert.Equal(t, 20, cfg.Security.MessageLimit.MaxPerSecond)
}
