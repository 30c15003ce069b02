package handlers

import (
	"net/http"

	"github.com/3Eeeecho/go-uploadqueue/internal/models"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/xerr"
	"github.com/3Eeeecho/go-uploadqueue/internal/services/queue"
	"github.com/gin-gonic/gin"
)

// AdmitFilesHandler 处理“文件已提交”信号
// @Summary 提交文件入队
// @Description 为每个提交的文件创建队列项并启动模拟传输
// @Tags 上传队列
// @Accept json
// @Produce json
// @Param request body models.AdmitFilesRequest true "按提交顺序排列的文件描述列表"
// @Success 200 {object} xerr.Response "入队成功"
// @Failure 400 {object} xerr.Response "参数错误"
// @Router /api/v1/queue/files [post]
func AdmitFilesHandler(queueService queue.QueueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdmitFilesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "Invalid request body")
			return
		}

		items := queueService.Admit(req.Files)
		xerr.Success(c, http.StatusOK, "Files admitted successfully", models.AdmitFilesResponse{Items: items})
	}
}

// ListQueueItemsHandler 按入队顺序返回当前队列项
// @Summary 查询队列
// @Description 以入队顺序返回当前所有队列项的快照
// @Tags 上传队列
// @Produce json
// @Success 200 {object} xerr.Response "队列快照"
// @Router /api/v1/queue/items [get]
func ListQueueItemsHandler(queueService queue.QueueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := queueService.Items()
		xerr.Success(c, http.StatusOK, "Queue items retrieved successfully", items)
	}
}

// RemoveQueueItemHandler 处理“移除请求”信号
// @Summary 移除队列项
// @Description 请求移除指定队列项；未知 id 为幂等空操作，不视为错误
// @Tags 上传队列
// @Produce json
// @Param item_id path string true "队列项ID"
// @Success 200 {object} xerr.Response "移除请求已受理"
// @Router /api/v1/queue/items/{item_id} [delete]
func RemoveQueueItemHandler(queueService queue.QueueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")
		if itemID == "" {
			xerr.AbortWithError(c, http.StatusBadRequest, xerr.InvalidParamsCode, "item_id is required")
			return
		}

		// 按约定，未知 id 的移除是静默空操作，统一返回受理成功
		queueService.RequestRemoval(itemID, true)
		xerr.Success(c, http.StatusOK, "Removal requested", nil)
	}
}

// ClearQueueHandler 处理“清空请求”信号
// @Summary 清空队列
// @Description 立即清空整个队列，不触发任何单项移除通知
// @Tags 上传队列
// @Produce json
// @Success 200 {object} xerr.Response "队列已清空"
// @Router /api/v1/queue/items [delete]
func ClearQueueHandler(queueService queue.QueueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		queueService.Clear()
		xerr.Success(c, http.StatusOK, "Queue cleared", nil)
	}
}

// GetQueueConfigHandler 返回前端挂件关心的展示配置
// @Summary 查询挂件配置
// @Description 返回空队列提示语、自动滚动开关等展示配置
// @Tags 上传队列
// @Produce json
// @Success 200 {object} xerr.Response "挂件配置"
// @Router /api/v1/queue/config [get]
func GetQueueConfigHandler(queueService queue.QueueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := queueService.Options()
		xerr.Success(c, http.StatusOK, "Queue config retrieved successfully", models.QueueConfigResponse{
			EmptyMessage:       opts.EmptyMessage,
			AutoScrollOnChange: opts.AutoScrollOnChange,
			SimulateTransfers:  opts.SimulateTransfers,
			ChunkMin:           opts.ChunkMin,
			ChunkMax:           opts.ChunkMax,
		})
	}
}
