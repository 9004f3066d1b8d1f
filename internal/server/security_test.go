package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	req := func(origin string) *http.Request {
		r, _ := http.NewRequest(http.MethodGet, "/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	all := NewOriginChecker([]string{"*"})
	assert.True(t, all.Check(req("http://evil.example")))

	some := NewOriginChecker([]string{"https://Game.Example"})
	assert.True(t, some.Check(req("https://game.example")))
	assert.False(t, some.Check(req("https://evil.example")))
	assert.True(t, some.Check(req("")))
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "127.0.0.1:5000", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "5.6.7.8"}, "127.0.0.1:5000", "5.6.7.8"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
		{"remote addr without port", nil, "9.9.9.9", "9.9.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, GetClientIP(r))
		})
	}
}

func TestMessageRateLimiter(t *testing.T) {
	t.Parallel()

	now := time.Unix(100, 0)
	ml := NewMessageRateLimiter(5)
	ml.now = func() time.Time { return now }
	clientID := "client1"

	// warningThreshold = 2，第 3 条起警告
	for i := range 5 {
		allowed, warning := ml.AllowMessage(clientID)
		assert.True(t, allowed)
		assert.Equal(t, i >= 2, warning, "message %d", i)
	}

	allowed, warning := ml.AllowMessage(clientID)
	assert.False(t, allowed)
	assert.True(t, warning)
	assert.False(t, ml.ShouldDisconnect(clientID))

	// 下一秒重置计数
	now = now.Add(time.Second)
	allowed, warning = ml.AllowMessage(clientID)
	assert.True(t, allowed)
	assert.False(t, warning)
}

func TestMessageRateLimiter_Disconnect(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(1)
	ml.now = func() time.Time { return time.Unix(100, 0) }

	for range 1 + maxWarnings + 1 {
		ml.AllowMessage("c")
	}
	assert.True(t, ml.ShouldDisconnect("c"))

	ml.RemoveClient("c")
	assert.False(t, ml.ShouldDisconnect("c"))
}
