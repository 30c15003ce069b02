package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/3Eeeecho/go-uploadqueue/internal/config"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/logger"
	"github.com/3Eeeecho/go-uploadqueue/internal/router"
	"github.com/3Eeeecho/go-uploadqueue/internal/services/queue"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	queueService queue.QueueService
	bus          *queue.EventBus
}

// NewServer 负责构建所有依赖
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化事件总线与上传队列引擎
	bus := queue.NewEventBus()
	queueService := queue.NewQueueService(&cfg.Queue, bus)

	// 初始化 Gin 引擎和注册路由
	// 将所有依赖传入 RouterConfig
	routerCfg := router.NewRouterConfig(queueService, bus, cfg)
	engine := router.InitRouter(routerCfg)

	addr := ":" + cfg.Server.Port
	logger.Info("Server is running on " + cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	return &Server{
		router:       engine,
		httpServer:   httpServer,
		queueService: queueService,
		bus:          bus,
	}, nil
}

// Run 启动服务器，并处理优雅关机
func (s *Server) Run(stopChan chan os.Signal) {
	// 启动 HTTP 服务器
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// 等待停止信号
	<-stopChan
	logger.Info("Shutting down server...")

	// 优雅关机：先停 HTTP，再停引擎和总线，保证不留下活跃时钟
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	s.queueService.Close()
	s.bus.Close()
	logger.Info("Server exited gracefully")
}
