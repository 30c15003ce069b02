package xerr

// 定义了统一的业务错误码
const (
	SuccessCode = 20000 // 通用成功码

	// --- 客户端请求错误系列 (400xx) ---
	InvalidParamsCode    = 40000 // 无效的请求参数
	ValidationFailedCode = 40001 // 参数验证失败
	FileNameInvalidCode  = 40002 // 文件名无效
	FileSizeInvalidCode  = 40003 // 文件大小非法

	// --- 资源未找到错误系列 (404xx) ---
	NotFoundCode      = 40400 // 通用资源未找到
	ItemNotFoundCode  = 40401 // 队列项不存在
	RouteNotFoundCode = 40402 // 路由不存在

	// --- 业务逻辑冲突系列 (409xx) ---
	QueueClosedCode = 40900 // 队列引擎已停止，拒绝新的入队

	// --- 服务器内部错误系列 (500xx) ---
	InternalServerErrorCode = 50000 // 服务器内部通用错误
	EventStreamErrorCode    = 50001 // 事件流推送失败
)
