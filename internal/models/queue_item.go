package models

import "time"

// QueuePhase 表示队列项在其生命周期中所处的阶段
type QueuePhase string

const (
	PhaseInitializing QueuePhase = "initializing" // 已入队，传输时钟尚未推进
	PhaseTransferring QueuePhase = "transferring" // 模拟传输进行中
	PhaseComplete     QueuePhase = "complete"     // 所有分片已完成
	PhaseExiting      QueuePhase = "exiting"      // 等待退场宽限期结束后被清除
)

// FileDescriptor 描述宿主提交的一个待上传文件
// 引擎只关心元数据，从不接触文件内容
type FileDescriptor struct {
	Name     string `json:"name" binding:"required"`
	Size     int64  `json:"size" binding:"min=0"`
	MimeType string `json:"mimeType"`
}

// QueueItem 表示上传队列中一个文件的模拟传输记录
type QueueItem struct {
	ID              string     `json:"id"`       // 入队时生成的唯一标识，生命周期内不变
	FileName        string     `json:"filename"` // 入队时捕获的文件元数据，之后不再变动
	Size            int64      `json:"size"`
	MimeType        string     `json:"mime_type"`
	TargetChunks    int        `json:"target_chunks"`    // 完成所需的进度增量总数，入队时抽样一次
	CompletedChunks int        `json:"completed_chunks"` // 单调不减，0 <= CompletedChunks <= TargetChunks
	Phase           QueuePhase `json:"phase"`
	StatusText      string     `json:"status_text"` // 由 Phase 和分片进度派生的人类可读描述
	CreatedAt       time.Time  `json:"created_at"`
}

// ProgressRatio 返回当前进度比例，始终落在 [0, 1] 区间
func (i *QueueItem) ProgressRatio() float64 {
	if i.TargetChunks <= 0 {
		return 0
	}
	ratio := float64(i.CompletedChunks) / float64(i.TargetChunks)
	if ratio > 1 {
		return 1
	}
	return ratio
}
