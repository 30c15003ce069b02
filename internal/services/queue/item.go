package queue

import (
	"fmt"

	"github.com/3Eeeecho/go-uploadqueue/internal/models"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/utils"
)

// advanceItem 返回应用了一次 tick 之后的队列项副本
// CompletedChunks 单调不减；complete / exiting 永远不会回退到 transferring
func advanceItem(item models.QueueItem, completedChunks int, isComplete bool) models.QueueItem {
	if item.Phase == models.PhaseComplete || item.Phase == models.PhaseExiting {
		return item
	}
	if completedChunks > item.CompletedChunks {
		item.CompletedChunks = completedChunks
	}
	if item.CompletedChunks > item.TargetChunks {
		item.CompletedChunks = item.TargetChunks
	}
	if isComplete {
		item.Phase = models.PhaseComplete
	} else {
		item.Phase = models.PhaseTransferring
	}
	item.StatusText = statusText(&item)
	return item
}

// markExiting 返回转入退场阶段的队列项副本，除 Phase 及其派生字段外不做任何修改
func markExiting(item models.QueueItem) models.QueueItem {
	item.Phase = models.PhaseExiting
	item.StatusText = statusText(&item)
	return item
}

// statusText 由阶段和分片进度派生人类可读的状态描述
func statusText(item *models.QueueItem) string {
	switch item.Phase {
	case models.PhaseInitializing:
		return fmt.Sprintf("等待上传（%s）", utils.FormatBytes(item.Size))
	case models.PhaseTransferring:
		return fmt.Sprintf("正在上传 %d/%d 分片（%s）", item.CompletedChunks, item.TargetChunks, utils.FormatBytes(item.Size))
	case models.PhaseComplete:
		return fmt.Sprintf("上传完成（%s）", utils.FormatBytes(item.Size))
	case models.PhaseExiting:
		return "正在移除"
	default:
		return string(item.Phase)
	}
}
