package router

import (
	"net/http"

	_ "github.com/3Eeeecho/go-uploadqueue/docs"
	"github.com/3Eeeecho/go-uploadqueue/internal/config"
	"github.com/3Eeeecho/go-uploadqueue/internal/handlers"
	"github.com/3Eeeecho/go-uploadqueue/internal/middlewares"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/xerr"
	"github.com/3Eeeecho/go-uploadqueue/internal/services/queue"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig 包含初始化路由所需的所有依赖
type RouterConfig struct {
	queueService queue.QueueService
	bus          *queue.EventBus
	cfg          *config.Config
}

func NewRouterConfig(queueService queue.QueueService, bus *queue.EventBus, cfg *config.Config) *RouterConfig {
	return &RouterConfig{
		queueService: queueService,
		bus:          bus,
		cfg:          cfg,
	}
}

func InitRouter(routerCfg *RouterConfig) *gin.Engine {
	// 设置 Gin 模式，开发环境为 DebugMode，生产环境为 ReleaseMode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default() // 使用默认的 Gin 引擎，包含 Logger 和 Recovery 中间件

	// 全局中间件
	router.Use(middlewares.Cors())

	// Health Check 路由
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// 上传队列相关路由
		queueGroup := v1.Group("/queue")
		{
			queueGroup.POST("/files", handlers.AdmitFilesHandler(routerCfg.queueService))
			queueGroup.GET("/items", handlers.ListQueueItemsHandler(routerCfg.queueService))
			queueGroup.DELETE("/items/:item_id", handlers.RemoveQueueItemHandler(routerCfg.queueService))
			queueGroup.DELETE("/items", handlers.ClearQueueHandler(routerCfg.queueService))
			queueGroup.GET("/config", handlers.GetQueueConfigHandler(routerCfg.queueService))
			queueGroup.GET("/events", handlers.StreamQueueEventsHandler(routerCfg.bus))
		}
	}

	router.NoRoute(func(c *gin.Context) {
		xerr.Error(c, http.StatusNotFound, xerr.RouteNotFoundCode, "Route not found")
	})

	return router
}
