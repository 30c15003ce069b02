package queue

import (
	"sync"

	"github.com/3Eeeecho/go-uploadqueue/internal/models"
)

// subscriberBuffer 是单个订阅方的事件缓冲大小
const subscriberBuffer = 64

// EventBus 在引擎与宿主之间传递类型化的队列通知
// 发布是非阻塞的 fire-and-forget：订阅方缓冲满时事件被丢弃，绝不阻塞队列的内部回调
type EventBus struct {
	mu     sync.RWMutex
	subs   map[int]chan models.QueueEvent
	nextID int
	closed bool
}

// NewEventBus 创建一个事件总线
func NewEventBus() *EventBus {
	return &EventBus{
		subs: make(map[int]chan models.QueueEvent),
	}
}

// Subscribe 注册一个订阅方，返回只读事件通道和对应的退订函数
// 退订后通道会被关闭；对已关闭总线的订阅会得到一个立即关闭的通道
func (b *EventBus) Subscribe() (<-chan models.QueueEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan models.QueueEvent)
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	ch := make(chan models.QueueEvent, subscriberBuffer)
	b.subs[id] = ch
	return ch, func() { b.unsubscribe(id) }
}

func (b *EventBus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish 向所有订阅方广播一条事件
func (b *EventBus) Publish(ev models.QueueEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// 订阅方消费过慢，丢弃这条事件而不是阻塞发布方
		}
	}
}

// Close 关闭总线和所有订阅通道，之后的 Publish 均为空操作
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
