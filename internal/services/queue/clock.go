package queue

import (
	"context"
	"time"
)

// tickFunc 是传输时钟向队列上报进度的回调
type tickFunc func(itemID string, completedChunks int, isComplete bool)

// transferClock 为单个队列项按固定间隔驱动模拟进度
// 间隔是实现常量，与文件大小、分片总数都无关
// 一个队列项至多对应一个活跃时钟，由上传队列负责保证
type transferClock struct {
	itemID string
	target int
	cancel context.CancelFunc
	done   chan struct{}
}

// newTransferClock 创建并立即启动一个传输时钟
// 每次 tick 将本地计数器加 1（与墙钟时间无关），上报给 report；
// 上报 isComplete=true 的那一次 tick 之后时钟自行停止，不再发出任何 tick
func newTransferClock(itemID string, target int, interval time.Duration, report tickFunc) *transferClock {
	ctx, cancel := context.WithCancel(context.Background())
	c := &transferClock{
		itemID: itemID,
		target: target,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go c.run(ctx, interval, report)
	return c
}

func (c *transferClock) run(ctx context.Context, interval time.Duration, report tickFunc) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	completed := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			completed++
			isComplete := completed >= c.target
			report(c.itemID, completed, isComplete)
			if isComplete {
				return
			}
		}
	}
}

// stop 立即取消时钟，无论当前进度如何
// 对已经自行停止的时钟调用 stop 是无害的空操作
// 取消请求发出时已经在途的那一次 tick 仍可能被投递一次，由队列的查找失败规则吸收
func (c *transferClock) stop() {
	c.cancel()
}
