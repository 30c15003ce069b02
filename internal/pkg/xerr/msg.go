package xerr

import "errors"

var (
	// 通用错误
	ErrSuccess        = errors.New("操作成功")
	ErrInternalServer = errors.New("服务器内部错误")

	// 客户端请求错误
	ErrInvalidParams    = errors.New("无效的请求参数")
	ErrValidationFailed = errors.New("参数验证失败")
	ErrFileNameInvalid  = errors.New("文件名包含非法字符")
	ErrFileSizeInvalid  = errors.New("文件大小必须为非负整数")

	// 资源未找到错误
	ErrItemNotFound = errors.New("队列项不存在或已被移除")

	// 业务逻辑冲突
	ErrQueueClosed = errors.New("上传队列已停止，无法接受新文件")

	// 事件流错误
	ErrEventStream = errors.New("事件流推送失败")
)
