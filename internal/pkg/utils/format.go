package utils

import "fmt"

// FormatBytes 将字节数格式化为人类可读的大小，例如 "2.4 MB"
// 上传挂件的状态文本展示用，采用 1024 进制
func FormatBytes(size int64) string {
	if size < 0 {
		size = 0
	}
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
