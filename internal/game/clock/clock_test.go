package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_Advance(t *testing.T) {
	t.Parallel()

	m := NewManual()
	var order []int
	m.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, 2) })

	assert.Equal(t, 0, m.Advance(50*time.Millisecond))
	assert.Equal(t, 2, m.Advance(100*time.Millisecond))
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, m.Pending())

	assert.Equal(t, 1, m.Advance(time.Second))
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 1150*time.Millisecond, m.Now())
}

func TestManual_RunNextEarliestFirst(t *testing.T) {
	t.Parallel()

	m := NewManual()
	var order []string
	m.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	m.AfterFunc(time.Second, func() { order = append(order, "early-a") })
	m.AfterFunc(time.Second, func() { order = append(order, "early-b") })

	require.True(t, m.RunNext())
	require.True(t, m.RunNext())
	assert.Equal(t, []string{"early-a", "early-b"}, order)
	assert.Equal(t, time.Second, m.Now())
	require.True(t, m.RunNext())
	assert.Equal(t, 2*time.Second, m.Now())
	assert.False(t, m.RunNext())
}

func TestManual_Stop(t *testing.T) {
	t.Parallel()

	m := NewManual()
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Equal(t, 0, m.Pending())
	assert.False(t, m.RunNext())
	assert.False(t, fired)
}

func TestManual_StopAfterRun(t *testing.T) {
	t.Parallel()

	m := NewManual()
	timer := m.AfterFunc(time.Second, func() {})
	require.True(t, m.RunNext())
	assert.False(t, timer.Stop())
}

func TestManual_ChainedTasks(t *testing.T) {
	t.Parallel()

	m := NewManual()
	count := 0
	var schedule func()
	schedule = func() {
		count++
		if count < 5 {
			m.AfterFunc(10*time.Millisecond, schedule)
		}
	}
	m.AfterFunc(10*time.Millisecond, schedule)

	// 执行过程中新登记的任务只要在期限内也会执行
	assert.Equal(t, 3, m.Advance(30*time.Millisecond))
	assert.Equal(t, 2, m.RunAll(100))
	assert.Equal(t, 5, count)
}

func TestReal_AfterFunc(t *testing.T) {
	t.Parallel()

	var fired atomic.Bool
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() {
		fired.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	assert.True(t, fired.Load())

	timer := Real{}.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
}
