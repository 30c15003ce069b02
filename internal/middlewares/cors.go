package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors 跨域处理中间件
// 上传挂件作为浏览器页面内嵌组件，前端与引擎通常不在同一源
func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Last-Event-ID")
		// SSE 事件流需要浏览器能读取流式响应
		c.Header("Access-Control-Expose-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
