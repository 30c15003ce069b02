package models

// AdmitFilesRequest 定义了“文件已提交”信号的请求体
// Files 的顺序即提交顺序，也是之后的展示顺序
type AdmitFilesRequest struct {
	Files []FileDescriptor `json:"files" binding:"required,min=1,dive"`
}

// AdmitFilesResponse 返回本次入队创建的所有队列项
type AdmitFilesResponse struct {
	Items []QueueItem `json:"items"`
}

// QueueConfigResponse 暴露给前端挂件的展示配置
type QueueConfigResponse struct {
	EmptyMessage       string `json:"empty_message"`
	AutoScrollOnChange bool   `json:"auto_scroll_on_change"`
	SimulateTransfers  bool   `json:"simulate_transfers"`
	ChunkMin           int    `json:"chunk_min"`
	ChunkMax           int    `json:"chunk_max"`
}
