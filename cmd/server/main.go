package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/3Eeeecho/go-uploadqueue/internal/config"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/logger"
	"go.uber.org/zap"
)

// @title go-uploadqueue API
// @version 1.0
// @description 文件上传挂件的上传队列引擎，模拟分片传输进度并推送生命周期事件
// @BasePath /api/v1
func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// 初始化日志系统
	if err := os.MkdirAll("logs", 0755); err != nil {
		logger.Fatal("Failed to create logs directory", zap.Error(err))
	}
	logger.InitLogger(&cfg.Log)
	defer logger.Sync() // 确保在应用退出时刷新所有缓冲的日志条目

	// 构建服务器（事件总线 + 队列引擎 + 路由）
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}

	// 监听退出信号，优雅关机
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)
	srv.Run(stopChan)
}
