package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper" // 导入 Viper
)

// Config 结构体包含所有应用的配置
type Config struct {
	Server ServerConfig `mapstructure:"server"` // `mapstructure` 标签用于Viper绑定结构体
	Log    LogConfig    `mapstructure:"log"`
	Queue  QueueConfig  `mapstructure:"queue"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// zap日志配置
type LogConfig struct {
	OutputPath string `mapstructure:"output_path"`
	ErrorPath  string `mapstructure:"error_path"`
	Level      string `mapstructure:"level"`
}

// QueueConfig 上传队列引擎配置
type QueueConfig struct {
	ChunkMin           int    `mapstructure:"chunk_min"`             // targetChunks 抽样区间下限（闭区间）
	ChunkMax           int    `mapstructure:"chunk_max"`             // targetChunks 抽样区间上限（闭区间）
	TickIntervalMs     int    `mapstructure:"tick_interval_ms"`      // 传输时钟 tick 间隔，与文件大小无关
	ExitGraceMs        int    `mapstructure:"exit_grace_ms"`         // 退场宽限期，留给退场动画
	SimulateTransfers  bool   `mapstructure:"simulate_transfers"`    // false 时入队后不启动时钟，停留在 initializing
	EmptyMessage       string `mapstructure:"empty_message"`         // 仅用于展示，对引擎行为无影响
	AutoScrollOnChange bool   `mapstructure:"auto_scroll_on_change"` // 仅用于展示
}

// TickInterval 返回传输时钟的 tick 间隔
func (q *QueueConfig) TickInterval() time.Duration {
	return time.Duration(q.TickIntervalMs) * time.Millisecond
}

// ExitGrace 返回退场宽限期时长
func (q *QueueConfig) ExitGrace() time.Duration {
	return time.Duration(q.ExitGraceMs) * time.Millisecond
}

// Normalize 就地修正非法配置，从不返回错误
// 非法的 chunk 区间按约定收束：min 至少为 1，max 至少为 min
func (q *QueueConfig) Normalize() {
	if q.ChunkMin < 1 {
		q.ChunkMin = 1
	}
	if q.ChunkMax < q.ChunkMin {
		q.ChunkMax = q.ChunkMin
	}
	if q.TickIntervalMs <= 0 {
		q.TickIntervalMs = defaultTickIntervalMs
	}
	if q.ExitGraceMs < 0 {
		q.ExitGraceMs = defaultExitGraceMs
	}
}

const (
	defaultTickIntervalMs = 200
	defaultExitGraceMs    = 300
)

var AppConfig *Config // 全局应用配置实例

// LoadConfig 加载配置
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")               // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")                 // 配置文件类型
	viper.AddConfigPath(".")                    // 在当前目录查找配置文件
	viper.AddConfigPath("./configs")            // 也可以添加其他路径，例如 ./configs/
	viper.AddConfigPath("/etc/go-uploadqueue/") // 生产环境常见路径

	// 读取环境变量，环境变量名将自动转换为大写，并用下划线替换点
	// 例如：SERVER.PORT 对应环境变量 GO_UPLOAD_QUEUE_SERVER_PORT
	viper.SetEnvPrefix("GO_UPLOAD_QUEUE")
	viper.AutomaticEnv() // 自动绑定环境变量

	// 确保Viper能正确映射如 QUEUE.CHUNK_MIN 到 queue.chunk_min
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	// 设置默认值 (如果配置文件和环境变量中都没有，则使用这些默认值)
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.output_path", "logs/app.log")
	viper.SetDefault("log.error_path", "logs/error.log")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("queue.chunk_min", 3)
	viper.SetDefault("queue.chunk_max", 12)
	viper.SetDefault("queue.tick_interval_ms", defaultTickIntervalMs)
	viper.SetDefault("queue.exit_grace_ms", defaultExitGraceMs)
	viper.SetDefault("queue.simulate_transfers", true)
	viper.SetDefault("queue.empty_message", "拖拽文件到此处上传")
	viper.SetDefault("queue.auto_scroll_on_change", true)

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// 配置文件未找到，但这不是致命错误，因为我们可以依赖环境变量或默认值
			log.Println("Warning: config file not found, using environment variables or default values.")
		} else {
			// 其他读取错误，例如配置文件格式错误
			log.Printf("Error reading config file: %s \n", err)
			return nil, err
		}
	}

	// 将读取到的配置绑定到结构体
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Printf("Error unmarshaling config: %s \n", err)
		return nil, err
	}

	// 非法的队列配置在这里收束，从不作为失败向上传递
	AppConfig.Queue.Normalize()

	log.Println("Configuration loaded successfully with Viper.")
	return AppConfig, nil
}
