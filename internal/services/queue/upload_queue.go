package queue

import (
	"math/rand"
	"sync"
	"time"

	"github.com/3Eeeecho/go-uploadqueue/internal/config"
	"github.com/3Eeeecho/go-uploadqueue/internal/models"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueueService 是上传队列引擎对外暴露的操作集合
type QueueService interface {
	// Admit 为每个提交的文件创建一个队列项并启动对应的传输时钟，
	// 返回本次入队创建的队列项快照（按提交顺序）
	Admit(files []models.FileDescriptor) []models.QueueItem
	// RequestRemoval 请求移除指定队列项；未知 id 或已在退场中的项为幂等空操作
	RequestRemoval(itemID string, userInitiated bool)
	// Clear 立即清空整个队列，不触发任何 item-removed 通知
	Clear()
	// Items 以入队顺序返回当前所有队列项的快照
	Items() []models.QueueItem
	// Options 返回引擎实际生效的配置（已收束非法区间）
	Options() config.QueueConfig
	// Close 清空队列并拒绝后续入队，供服务优雅退出时调用
	Close()
}

// uploadQueue 持有 itemID 到队列项、itemID 到活跃时钟的两张映射
// 所有变更都经由 mu 串行化；时钟本身从不读写这两张映射
type uploadQueue struct {
	mu     sync.Mutex
	cfg    config.QueueConfig
	bus    *EventBus
	items  map[string]*models.QueueItem
	order  []string // 入队顺序即展示顺序
	clocks map[string]*transferClock
	closed bool
}

// NewQueueService 创建上传队列引擎
// 传入的配置会先做收束，非法的 chunk 区间不会导致失败
func NewQueueService(cfg *config.QueueConfig, bus *EventBus) QueueService {
	normalized := *cfg
	normalized.Normalize()
	return &uploadQueue{
		cfg:    normalized,
		bus:    bus,
		items:  make(map[string]*models.QueueItem),
		clocks: make(map[string]*transferClock),
	}
}

func (q *uploadQueue) Admit(files []models.FileDescriptor) []models.QueueItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	admitted := make([]models.QueueItem, 0, len(files))
	for _, f := range files {
		size := f.Size
		if size < 0 {
			// 宿主契约要求非负大小，异常值吸收为 0 而不是报错
			size = 0
		}
		item := &models.QueueItem{
			ID:           uuid.NewString(),
			FileName:     f.Name,
			Size:         size,
			MimeType:     f.MimeType,
			TargetChunks: q.sampleTargetChunks(),
			Phase:        models.PhaseInitializing,
			CreatedAt:    time.Now(),
		}
		item.StatusText = statusText(item)

		q.items[item.ID] = item
		q.order = append(q.order, item.ID)
		if q.cfg.SimulateTransfers {
			q.clocks[item.ID] = newTransferClock(item.ID, item.TargetChunks, q.cfg.TickInterval(), q.onTick)
		}

		// 在锁内同步发布，保证该项的 item-admitted 先于它的任何 tick 事件
		q.bus.Publish(models.QueueEvent{
			Kind:         models.EventItemAdmitted,
			ItemID:       item.ID,
			FileName:     item.FileName,
			Size:         item.Size,
			MimeType:     item.MimeType,
			TargetChunks: item.TargetChunks,
		})
		admitted = append(admitted, *item)

		logger.Debug("队列项已创建",
			zap.String("itemID", item.ID),
			zap.String("filename", item.FileName),
			zap.Int("targetChunks", item.TargetChunks))
	}

	logger.Info("文件已入队", zap.Int("count", len(admitted)), zap.Int("queueSize", len(q.items)))
	return admitted
}

// onTick 由传输时钟回调，推进对应队列项的进度
// 时钟取消与 tick 投递并非互相原子：迟到的 tick 查不到队列项时静默丢弃
func (q *uploadQueue) onTick(itemID string, completedChunks int, isComplete bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[itemID]
	if !ok {
		return
	}
	if item.Phase == models.PhaseComplete || item.Phase == models.PhaseExiting {
		return
	}

	*item = advanceItem(*item, completedChunks, isComplete)
	if !isComplete {
		return
	}

	// 到达完成态的这一次 tick：注销时钟句柄、广播完成事件，
	// 然后按完成驱动的移除策略转入退场流程
	delete(q.clocks, itemID)
	q.bus.Publish(models.QueueEvent{Kind: models.EventItemCompleted, ItemID: itemID})
	logger.Info("模拟传输完成",
		zap.String("itemID", itemID),
		zap.Int("completedChunks", item.CompletedChunks))
	q.scheduleExitLocked(item, false)
}

func (q *uploadQueue) RequestRemoval(itemID string, userInitiated bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[itemID]
	if !ok || item.Phase == models.PhaseExiting {
		// 未知 id 或已在退场中，幂等空操作
		return
	}

	if clk, ok := q.clocks[itemID]; ok {
		clk.stop()
		delete(q.clocks, itemID)
	}
	q.scheduleExitLocked(item, userInitiated)
	logger.Info("队列项进入退场",
		zap.String("itemID", itemID),
		zap.Bool("userInitiated", userInitiated))
}

// scheduleExitLocked 将队列项转入 exiting 并安排宽限期结束后的清除
// 调用方必须持有 q.mu，且保证该项当前不处于 exiting
func (q *uploadQueue) scheduleExitLocked(item *models.QueueItem, userInitiated bool) {
	*item = markExiting(*item)
	itemID := item.ID
	time.AfterFunc(q.cfg.ExitGrace(), func() {
		q.purge(itemID, userInitiated)
	})
}

// purge 在宽限期结束后真正删除队列项并广播 item-removed
func (q *uploadQueue) purge(itemID string, userInitiated bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, ok := q.items[itemID]
	if !ok {
		// 宽限期内队列可能已被整体清空
		return
	}
	delete(q.items, itemID)
	for i, id := range q.order {
		if id == itemID {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}

	q.bus.Publish(models.QueueEvent{
		Kind:          models.EventItemRemoved,
		ItemID:        itemID,
		FileName:      item.FileName,
		UserInitiated: userInitiated,
	})
}

func (q *uploadQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	cleared := len(q.items)
	q.clearLocked()
	logger.Info("队列已清空", zap.Int("cleared", cleared))
}

// clearLocked 停掉所有活跃时钟并删除所有队列项
// 批量清空是一次静默重置，不为任何一项单独广播 item-removed
func (q *uploadQueue) clearLocked() {
	for id, clk := range q.clocks {
		clk.stop()
		delete(q.clocks, id)
	}
	q.items = make(map[string]*models.QueueItem)
	q.order = nil
}

func (q *uploadQueue) Items() []models.QueueItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.QueueItem, 0, len(q.order))
	for _, id := range q.order {
		if item, ok := q.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out
}

func (q *uploadQueue) Options() config.QueueConfig {
	return q.cfg
}

func (q *uploadQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.clearLocked()
	logger.Info("上传队列引擎已停止")
}

// sampleTargetChunks 从收束后的闭区间 [ChunkMin, ChunkMax] 抽样分片总数
func (q *uploadQueue) sampleTargetChunks() int {
	span := q.cfg.ChunkMax - q.cfg.ChunkMin + 1
	return q.cfg.ChunkMin + rand.Intn(span)
}

// activeClockCount 返回当前活跃时钟数量，仅测试使用
func (q *uploadQueue) activeClockCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.clocks)
}
