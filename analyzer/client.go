package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// FailureKind 是调用失败的分类标签。
type FailureKind string

const (
	FailureNone      FailureKind = ""          // 调用成功
	FailureTimeout   FailureKind = "timeout"   // 超过调用方设定的超时
	FailureTransport FailureKind = "transport" // 连接/传输层错误（含请求构造失败）
	FailureBadStatus FailureKind = "bad_status" // 服务端返回非 2xx
)

// Outcome 是一次分析服务调用的带标签结果。
// - Client 从不向调用方抛错：所有失败都折叠进 Outcome，
//   由扇出阶段汇总成事件级结论，同时保留原始载荷供排障。
type Outcome struct {
	OK         bool        // 状态码为 2xx 时为 true
	StatusCode int         // HTTP 状态码；超时 504、传输错误 502（与上游网关约定一致）
	Data       interface{} // 解析后的响应 JSON；非 JSON 响应退化为 {"raw": 原文}
	Err        string      // 失败描述，成功时为空
	Kind       FailureKind
}

// Client 是分析服务的通用 HTTP 调用封装。
// - 同步、阻塞，超时由构造时传入；分析调用是长耗时模型推理，默认超时以分钟计。
// - 出站请求挂载 otelhttp Transport，调用链路可在追踪系统里串起来。
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient 创建调用客户端。timeout <= 0 时不限制（不建议）。
// 这里直接使用原生 *zap.Logger，由上层通过 ZapLogger.Logger() 注入。
func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Call 以 JSON body POST 到指定 endpoint，返回带标签的结果，从不返回 error。
func (c *Client) Call(ctx context.Context, endpoint string, payload interface{}) Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		// 请求体本身序列化失败属于编程错误，但依然按约定折叠为失败结果。
		c.logger.Error("分析服务请求体序列化失败", zap.String("endpoint", endpoint), zap.Error(err))
		return Outcome{OK: false, StatusCode: 0, Err: err.Error(), Kind: FailureTransport}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("构造分析服务请求失败", zap.String("endpoint", endpoint), zap.Error(err))
		return Outcome{OK: false, StatusCode: 0, Err: err.Error(), Kind: FailureTransport}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Warn("分析服务调用超时", zap.String("endpoint", endpoint), zap.Error(err))
			return Outcome{OK: false, StatusCode: http.StatusGatewayTimeout, Err: err.Error(), Kind: FailureTimeout}
		}
		c.logger.Warn("分析服务调用传输错误", zap.String("endpoint", endpoint), zap.Error(err))
		return Outcome{OK: false, StatusCode: http.StatusBadGateway, Err: err.Error(), Kind: FailureTransport}
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		c.logger.Warn("读取分析服务响应体失败", zap.String("endpoint", endpoint), zap.Error(readErr))
		return Outcome{OK: false, StatusCode: resp.StatusCode, Err: readErr.Error(), Kind: FailureTransport}
	}

	// 响应体尽力解析为 JSON；失败时保留原文，排障时不丢信息。
	var data interface{}
	if jsonErr := json.Unmarshal(raw, &data); jsonErr != nil {
		data = map[string]interface{}{"raw": string(raw)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("分析服务返回非 2xx 状态码",
			zap.String("endpoint", endpoint),
			zap.Int("statusCode", resp.StatusCode),
		)
		return Outcome{
			OK:         false,
			StatusCode: resp.StatusCode,
			Data:       data,
			Err:        fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Kind:       FailureBadStatus,
		}
	}

	return Outcome{OK: true, StatusCode: resp.StatusCode, Data: data, Kind: FailureNone}
}

// isTimeout 判断调用错误是否属于超时（客户端超时或上下文截止）。
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}
