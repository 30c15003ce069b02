package handlers

import (
	"io"

	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/logger"
	"github.com/3Eeeecho/go-uploadqueue/internal/services/queue"
	"github.com/gin-gonic/gin"
)

// StreamQueueEventsHandler 以 SSE 形式向宿主页面推送队列生命周期通知
// 通知是 fire-and-forget：连接断开或消费过慢都不会影响队列本身
// @Summary 订阅队列事件流
// @Description 以 Server-Sent Events 推送 item-admitted / item-completed / item-removed 通知
// @Tags 上传队列
// @Produce text/event-stream
// @Success 200 {string} string "SSE 事件流"
// @Router /api/v1/queue/events [get]
func StreamQueueEventsHandler(bus *queue.EventBus) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		// 先把响应头推给客户端，订阅方不必等到第一条事件才拿到连接
		c.Writer.Flush()

		logger.Debug("事件流订阅建立")

		// 客户端断开时由请求上下文终止推送循环
		c.Stream(func(w io.Writer) bool {
			select {
			case ev, ok := <-events:
				if !ok {
					// 总线已关闭（服务退出），结束推送
					return false
				}
				c.SSEvent(string(ev.Kind), ev)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
