// Package clock 为电脑回合的思考延时提供可取消的定时任务
package clock

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Timer 已调度的任务
type Timer interface {
	// Stop 取消任务，任务已执行或已取消时返回 false
	Stop() bool
}

// Scheduler 延时调度器
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real 使用真实时间
type Real struct{}

// AfterFunc 基于 time.AfterFunc
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Manual 虚拟时钟，只有调用 Advance/RunNext 时才会执行到期任务
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTimer
}

type manualTimer struct {
	clock *Manual
	at    time.Duration
	seq   int
	fn    func()
	done  bool
}

// NewManual 创建虚拟时钟
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc 登记一个 d 之后执行的任务
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{clock: m, at: m.now + d, seq: m.seq, fn: f}
	m.tasks = append(m.tasks, t)
	return t
}

func (t *manualTimer) Stop() bool {
	m := t.clock
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	m.remove(t)
	return true
}

// remove 调用方需持有锁
func (m *Manual) remove(t *manualTimer) {
	for i, task := range m.tasks {
		if task == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

// popDue 取出最早到期的任务
func (m *Manual) popDue(deadline time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tasks) == 0 {
		return nil
	}
	slices.SortStableFunc(m.tasks, func(a, b *manualTimer) int {
		return cmp.Or(cmp.Compare(a.at, b.at), cmp.Compare(a.seq, b.seq))
	})
	next := m.tasks[0]
	if next.at > deadline {
		return nil
	}
	m.tasks = m.tasks[1:]
	next.done = true
	if next.at > m.now {
		m.now = next.at
	}
	return next
}

// Advance 时间前进 d，按到期顺序执行期间到期的任务（包括执行过程中新登记且在期限内的任务）
// 返回执行的任务数
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	deadline := m.now + d
	m.mu.Unlock()

	ran := 0
	for {
		t := m.popDue(deadline)
		if t == nil {
			break
		}
		t.fn()
		ran++
	}

	m.mu.Lock()
	m.now = deadline
	m.mu.Unlock()
	return ran
}

// RunNext 不论延时多长，立即执行下一个任务；没有任务时返回 false
func (m *Manual) RunNext() bool {
	t := m.popDue(1<<62 - 1)
	if t == nil {
		return false
	}
	t.fn()
	return true
}

// RunAll 反复执行任务直到队列为空或达到 limit 次，返回执行数
func (m *Manual) RunAll(limit int) int {
	ran := 0
	for ran < limit && m.RunNext() {
		ran++
	}
	return ran
}

// Pending 尚未执行的任务数
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Now 虚拟时钟启动以来经过的时间
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}
