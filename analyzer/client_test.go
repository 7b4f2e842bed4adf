package analyzer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCallSuccessParsesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("期望 POST，实际 %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("期望 Content-Type application/json，实际 %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"outputs":{"clusters":["a","b"]}}}`))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, zap.NewNop())
	out := client.Call(context.Background(), server.URL, map[string]interface{}{"k": "v"})

	if !out.OK {
		t.Fatalf("期望调用成功，实际失败: %s", out.Err)
	}
	if out.StatusCode != http.StatusOK {
		t.Fatalf("期望状态码 200，实际 %d", out.StatusCode)
	}
	if out.Kind != FailureNone {
		t.Fatalf("成功调用的失败分类应为空，实际 %q", out.Kind)
	}
	clusters := GetSlice(out.Data, "data", "outputs", "clusters")
	if len(clusters) != 2 {
		t.Fatalf("期望解析出 2 个簇，实际 %d", len(clusters))
	}
}

func TestCallNon2xxKeepsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"模型加载失败"}`))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, zap.NewNop())
	out := client.Call(context.Background(), server.URL, nil)

	if out.OK {
		t.Fatal("非 2xx 响应不应判定为成功")
	}
	if out.Kind != FailureBadStatus {
		t.Fatalf("期望分类 bad_status，实际 %q", out.Kind)
	}
	if out.StatusCode != http.StatusInternalServerError {
		t.Fatalf("期望状态码 500，实际 %d", out.StatusCode)
	}
	if got := GetString(out.Data, "", "error"); got != "模型加载失败" {
		t.Fatalf("失败响应体应保留，实际 %q", got)
	}
}

func TestCallNonJSONBodyFallsBackToRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, zap.NewNop())
	out := client.Call(context.Background(), server.URL, nil)

	if !out.OK {
		t.Fatalf("2xx 非 JSON 响应仍应判定为成功: %s", out.Err)
	}
	if got := GetString(out.Data, "", "raw"); got != "<html>not json</html>" {
		t.Fatalf("非 JSON 响应应退化为 raw 字段保留原文，实际 %q", got)
	}
}

func TestCallTimeoutClassifiedAs504(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(20*time.Millisecond, zap.NewNop())
	out := client.Call(context.Background(), server.URL, nil)

	if out.OK {
		t.Fatal("超时不应判定为成功")
	}
	if out.Kind != FailureTimeout {
		t.Fatalf("期望分类 timeout，实际 %q (err=%s)", out.Kind, out.Err)
	}
	if out.StatusCode != http.StatusGatewayTimeout {
		t.Fatalf("超时应映射为 504，实际 %d", out.StatusCode)
	}
}

func TestCallTransportErrorClassifiedAs502(t *testing.T) {
	// 先起再关，拿到一个必然拒绝连接的地址。
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	client := NewClient(5*time.Second, zap.NewNop())
	out := client.Call(context.Background(), deadURL, nil)

	if out.OK {
		t.Fatal("连接失败不应判定为成功")
	}
	if out.Kind != FailureTransport {
		t.Fatalf("期望分类 transport，实际 %q (err=%s)", out.Kind, out.Err)
	}
	if out.StatusCode != http.StatusBadGateway {
		t.Fatalf("传输错误应映射为 502，实际 %d", out.StatusCode)
	}
}
