package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/models/dto"
)

func allURLsConfig(base string) config.AnalyzerConfig {
	return config.AnalyzerConfig{
		ClusterURL:     base + "/cluster",
		HotURL:         base + "/hot",
		EmotionURL:     base + "/emotion",
		YuqingURL:      base + "/yuqing",
		ValueURL:       base + "/value",
		BaseinfoURL:    base + "/baseinfo",
		TimeoutSeconds: 5,
	}
}

func TestInvokerMissingURLIsTerminalFailure(t *testing.T) {
	cfg := allURLsConfig("http://localhost:1")
	cfg.YuqingURL = "" // 缺一个地址即拒绝初始化

	inv := NewInvoker(cfg, zap.NewNop())

	first := inv.Hot(context.Background(), "e", "/tmp/e.csv", "/tmp/images")
	if first.OK || first.Kind != FailureTransport {
		t.Fatalf("初始化失败应折叠为 transport 失败，实际 %+v", first)
	}
	// 初始化失败是终态，后续任何调用拿到同样的错误而不是重试初始化。
	second := inv.Cluster(context.Background(), dto.ClusterParams{DataSourcePath: "/data"})
	if second.OK || second.Err != first.Err {
		t.Fatalf("终态失败应保持一致，第一次 %q，第二次 %q", first.Err, second.Err)
	}
}

func TestInvokerClusterPayloadShape(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("请求体解析失败: %v", err)
		}
		w.Write([]byte(`{"data":{"outputs":{"clusters":["c1"]}}}`))
	}))
	defer server.Close()

	inv := NewInvoker(allURLsConfig(server.URL), zap.NewNop())
	out := inv.Cluster(context.Background(), dto.ClusterParams{
		DataSourcePath:     "/data/run1",
		Method:             "traditional",
		MinPosts:           1,
		SourceSite:         "新浪微博",
		UsePrior:           true,
		MaxSamplesPerEvent: 1000,
		MinSamplesPerEvent: 1,
	})
	if !out.OK {
		t.Fatalf("聚类调用失败: %s", out.Err)
	}

	if captured["data_source_path"] != "/data/run1" {
		t.Fatalf("data_source_path 错误: %v", captured["data_source_path"])
	}
	for _, key := range []string{"use_saved", "method", "min_posts", "source_site", "use_prior", "max_samples_per_event", "min_samples_per_event"} {
		if _, ok := captured[key]; !ok {
			t.Fatalf("聚类请求体缺少字段 %s", key)
		}
	}
}

func TestInvokerEventPayloadShape(t *testing.T) {
	var path string
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("请求体解析失败: %v", err)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	inv := NewInvoker(allURLsConfig(server.URL), zap.NewNop())
	out := inv.Baseinfo(context.Background(), "某高校事件", "/data/e/某高校事件.csv", "/data/e/images")
	if !out.OK {
		t.Fatalf("调用失败: %s", out.Err)
	}
	if path != "/baseinfo" {
		t.Fatalf("路由错误: %s", path)
	}
	if captured["event_name"] != "某高校事件" ||
		captured["csv_file_path"] != "/data/e/某高校事件.csv" ||
		captured["image_dir_path"] != "/data/e/images" {
		t.Fatalf("事件级请求体形状错误: %v", captured)
	}
}

func TestInvokerClusterRejectsEmptyPath(t *testing.T) {
	inv := NewInvoker(allURLsConfig("http://localhost:1"), zap.NewNop())
	out := inv.Cluster(context.Background(), dto.ClusterParams{})
	if out.OK {
		t.Fatal("空 data_source_path 不应发起调用")
	}
}
