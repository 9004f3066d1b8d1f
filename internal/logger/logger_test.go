package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitFile(dir))
	defer Close()

	assert.Equal(t, filepath.Join(dir, "debug.log"), GetLogPath())

	LogInfo("出牌 %s", "♠3")
	LogError("出错了: %v", os.ErrClosed)
	LogPanic("boom")
	L().Info("structured")
	Close()

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Logger initialized")
	assert.Contains(t, content, "出牌 ♠3")
	assert.Contains(t, content, "出错了")
	assert.Contains(t, content, "panic recovered")
	assert.Contains(t, content, "structured")
}

func TestLogBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		LogInfo("nobody listens")
		Close()
	})
}
