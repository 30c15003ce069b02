package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/3Eeeecho/go-uploadqueue/internal/config"
	"github.com/3Eeeecho/go-uploadqueue/internal/models"
	"github.com/3Eeeecho/go-uploadqueue/internal/pkg/xerr"
	"github.com/3Eeeecho/go-uploadqueue/internal/services/queue"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, qcfg *config.QueueConfig) (*gin.Engine, queue.QueueService, *queue.EventBus) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bus := queue.NewEventBus()
	svc := queue.NewQueueService(qcfg, bus)
	t.Cleanup(func() {
		svc.Close()
		bus.Close()
	})

	engine := gin.New()
	group := engine.Group("/api/v1/queue")
	group.POST("/files", AdmitFilesHandler(svc))
	group.GET("/items", ListQueueItemsHandler(svc))
	group.DELETE("/items/:item_id", RemoveQueueItemHandler(svc))
	group.DELETE("/items", ClearQueueHandler(svc))
	group.GET("/config", GetQueueConfigHandler(svc))
	group.GET("/events", StreamQueueEventsHandler(bus))
	return engine, svc, bus
}

func manualConfig() *config.QueueConfig {
	return &config.QueueConfig{
		ChunkMin:           2,
		ChunkMax:           2,
		TickIntervalMs:     200,
		ExitGraceMs:        300,
		SimulateTransfers:  false, // 测试中手动控制进度，避免时钟带来的时序抖动
		EmptyMessage:       "拖拽文件到此处上传",
		AutoScrollOnChange: true,
	}
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) (xerr.Response, json.RawMessage) {
	t.Helper()
	var resp struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法 JSON: %v\n%s", err, w.Body.String())
	}
	return xerr.Response{Code: resp.Code, Message: resp.Message}, resp.Data
}

func TestAdmitFilesHandler(t *testing.T) {
	engine, svc, _ := newTestRouter(t, manualConfig())

	body := `{"files":[{"name":"a.txt","size":1024,"mimeType":"text/plain"},{"name":"b.png","size":2048,"mimeType":"image/png"}]}`
	w := doRequest(engine, http.MethodPost, "/api/v1/queue/files", body)

	if w.Code != http.StatusOK {
		t.Fatalf("HTTP 状态 = %d, 期望 200\n%s", w.Code, w.Body.String())
	}
	resp, data := decodeResponse(t, w)
	if resp.Code != xerr.SuccessCode {
		t.Fatalf("业务码 = %d, 期望 %d", resp.Code, xerr.SuccessCode)
	}

	var admitted models.AdmitFilesResponse
	if err := json.Unmarshal(data, &admitted); err != nil {
		t.Fatalf("解析入队响应失败: %v", err)
	}
	if len(admitted.Items) != 2 {
		t.Fatalf("入队响应项数 = %d, 期望 2", len(admitted.Items))
	}
	if admitted.Items[0].FileName != "a.txt" || admitted.Items[1].FileName != "b.png" {
		t.Error("入队响应必须保持提交顺序")
	}
	if len(svc.Items()) != 2 {
		t.Error("队列中应存在 2 个队列项")
	}
}

func TestAdmitFilesHandlerRejectsInvalidBody(t *testing.T) {
	engine, _, _ := newTestRouter(t, manualConfig())

	for name, body := range map[string]string{
		"非法JSON":  `{"files": [`,
		"缺少files": `{}`,
		"空文件列表":   `{"files":[]}`,
		"缺少文件名":   `{"files":[{"size":10}]}`,
		"负的大小":    `{"files":[{"name":"a.txt","size":-1}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := doRequest(engine, http.MethodPost, "/api/v1/queue/files", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("HTTP 状态 = %d, 期望 400", w.Code)
			}
			resp, _ := decodeResponse(t, w)
			if resp.Code != xerr.InvalidParamsCode {
				t.Errorf("业务码 = %d, 期望 %d", resp.Code, xerr.InvalidParamsCode)
			}
		})
	}
}

func TestListQueueItemsHandlerKeepsAdmissionOrder(t *testing.T) {
	engine, svc, _ := newTestRouter(t, manualConfig())

	svc.Admit([]models.FileDescriptor{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	w := doRequest(engine, http.MethodGet, "/api/v1/queue/items", "")

	if w.Code != http.StatusOK {
		t.Fatalf("HTTP 状态 = %d, 期望 200", w.Code)
	}
	_, data := decodeResponse(t, w)
	var items []models.QueueItem
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("解析队列快照失败: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("快照项数 = %d, 期望 %d", len(items), len(want))
	}
	for i, item := range items {
		if item.FileName != want[i] {
			t.Errorf("第 %d 项 = %s, 期望 %s", i, item.FileName, want[i])
		}
	}
}

func TestRemoveQueueItemHandlerIsIdempotent(t *testing.T) {
	engine, svc, _ := newTestRouter(t, manualConfig())

	// 未知 id 的移除不是错误
	w := doRequest(engine, http.MethodDelete, "/api/v1/queue/items/no-such-id", "")
	if w.Code != http.StatusOK {
		t.Fatalf("未知 id 的移除 HTTP 状态 = %d, 期望 200", w.Code)
	}

	admitted := svc.Admit([]models.FileDescriptor{{Name: "a.txt"}})
	w = doRequest(engine, http.MethodDelete, "/api/v1/queue/items/"+admitted[0].ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("移除 HTTP 状态 = %d, 期望 200", w.Code)
	}

	// 移除请求受理后队列项进入退场阶段
	items := svc.Items()
	if len(items) != 1 || items[0].Phase != models.PhaseExiting {
		t.Fatal("移除请求受理后队列项应处于退场阶段")
	}
}

func TestClearQueueHandler(t *testing.T) {
	engine, svc, _ := newTestRouter(t, manualConfig())

	svc.Admit([]models.FileDescriptor{{Name: "a"}, {Name: "b"}})
	w := doRequest(engine, http.MethodDelete, "/api/v1/queue/items", "")

	if w.Code != http.StatusOK {
		t.Fatalf("HTTP 状态 = %d, 期望 200", w.Code)
	}
	if len(svc.Items()) != 0 {
		t.Fatal("清空后队列应为空")
	}
}

func TestGetQueueConfigHandler(t *testing.T) {
	engine, _, _ := newTestRouter(t, manualConfig())

	w := doRequest(engine, http.MethodGet, "/api/v1/queue/config", "")
	if w.Code != http.StatusOK {
		t.Fatalf("HTTP 状态 = %d, 期望 200", w.Code)
	}
	_, data := decodeResponse(t, w)
	var cfg models.QueueConfigResponse
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("解析配置响应失败: %v", err)
	}
	if cfg.EmptyMessage != "拖拽文件到此处上传" {
		t.Errorf("empty_message = %q", cfg.EmptyMessage)
	}
	if !cfg.AutoScrollOnChange {
		t.Error("auto_scroll_on_change 应为 true")
	}
	if cfg.ChunkMin != 2 || cfg.ChunkMax != 2 {
		t.Errorf("chunk 区间 = [%d, %d], 期望 [2, 2]", cfg.ChunkMin, cfg.ChunkMax)
	}
}

func TestStreamQueueEventsHandler(t *testing.T) {
	engine, svc, _ := newTestRouter(t, manualConfig())

	srv := httptest.NewServer(engine)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/queue/events", nil)
	if err != nil {
		t.Fatalf("构造请求失败: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("建立事件流失败: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("Content-Type = %q, 期望 text/event-stream", ct)
	}

	// 订阅建立之后再触发入队，保证事件一定会被推送到这条连接
	go func() {
		time.Sleep(100 * time.Millisecond)
		svc.Admit([]models.FileDescriptor{{Name: "a.txt", Size: 1024, MimeType: "text/plain"}})
	}()

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("事件流提前结束: %v", err)
		}
		if strings.HasPrefix(line, "event:") && strings.Contains(line, string(models.EventItemAdmitted)) {
			return // 收到期望的通知
		}
	}
}
