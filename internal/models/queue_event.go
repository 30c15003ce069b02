package models

// QueueEventKind 标识队列对外广播的通知类型
type QueueEventKind string

const (
	EventItemAdmitted  QueueEventKind = "item-admitted"  // 入队时立即发出
	EventItemCompleted QueueEventKind = "item-completed" // 到达完成态的那一次 tick 发出
	EventItemRemoved   QueueEventKind = "item-removed"   // 退场宽限期结束、队列项被清除后发出
)

// QueueEvent 是队列生命周期通知的统一载体
// 发布方从不等待订阅方响应（fire-and-forget）
type QueueEvent struct {
	Kind     QueueEventKind `json:"kind"`
	ItemID   string         `json:"item_id"`
	FileName string         `json:"filename,omitempty"`
	Size     int64          `json:"size,omitempty"`
	MimeType string         `json:"mime_type,omitempty"`
	// TargetChunks 仅在 item-admitted 中携带，便于观察方复现进度语义
	TargetChunks int `json:"target_chunks,omitempty"`
	// UserInitiated 仅对 item-removed 有意义，保留自移除请求
	UserInitiated bool `json:"user_initiated,omitempty"`
}
