package model

import (
	"sync"

	"github.com/palemoky/four-landlord/internal/game/table"
)

// inbox 牌桌订阅者写入，tea.Cmd 读取。写入不阻塞，订阅者持有牌桌锁
type inbox struct {
	mu      sync.Mutex
	updates []table.Update

	notify    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newInbox() *inbox {
	return &inbox{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (b *inbox) push(u table.Update) {
	b.mu.Lock()
	b.updates = append(b.updates, u)
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

func (b *inbox) drain() []table.Update {
	b.mu.Lock()
	defer b.mu.Unlock()

	updates := b.updates
	b.updates = nil
	return updates
}

// wait 阻塞到有新事件，关闭后返回 false
func (b *inbox) wait() ([]table.Update, bool) {
	select {
	case <-b.notify:
		return b.drain(), true
	case <-b.done:
		return nil, false
	}
}

func (b *inbox) close() {
	b.closeOnce.Do(func() { close(b.done) })
}
