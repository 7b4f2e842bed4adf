package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Xushengqwer/opinion_service/analyzer"
	"github.com/Xushengqwer/opinion_service/models/dto"
)

// stubInvoker 按步骤名返回预设结果，并记录每次调用收到的路径参数。
type stubInvoker struct {
	outcomes map[string]analyzer.Outcome
	calls    []string
	paths    map[string]string // 步骤名 -> 收到的 csvPath/eventDir
}

func newStubInvoker() *stubInvoker {
	return &stubInvoker{
		outcomes: map[string]analyzer.Outcome{},
		paths:    map[string]string{},
	}
}

func (s *stubInvoker) outcome(step string) analyzer.Outcome {
	if o, ok := s.outcomes[step]; ok {
		return o
	}
	return analyzer.Outcome{OK: true, StatusCode: 200}
}

func (s *stubInvoker) record(step, path string) analyzer.Outcome {
	s.calls = append(s.calls, step)
	s.paths[step] = path
	return s.outcome(step)
}

func (s *stubInvoker) Cluster(_ context.Context, params dto.ClusterParams) analyzer.Outcome {
	return s.record("cluster", params.DataSourcePath)
}

func (s *stubInvoker) Hot(_ context.Context, _, csvPath, _ string) analyzer.Outcome {
	return s.record("hot", csvPath)
}

func (s *stubInvoker) Emotion(_ context.Context, _, csvPath, _ string) analyzer.Outcome {
	return s.record("emotion", csvPath)
}

func (s *stubInvoker) Yuqing(_ context.Context, _, csvPath, _ string) analyzer.Outcome {
	return s.record("yuqing", csvPath)
}

func (s *stubInvoker) Value(_ context.Context, _, eventDir, _ string) analyzer.Outcome {
	return s.record("value", eventDir)
}

func (s *stubInvoker) Baseinfo(_ context.Context, _, csvPath, _ string) analyzer.Outcome {
	return s.record("baseinfo", csvPath)
}

// makeEventDir 在临时目录里搭出一个合法的候选事件目录。
func makeEventDir(t *testing.T, eventName string) string {
	t.Helper()
	clusterFolder := t.TempDir()
	eventDir := filepath.Join(clusterFolder, eventName)
	if err := os.MkdirAll(filepath.Join(eventDir, "images"), 0o755); err != nil {
		t.Fatalf("创建 images 目录失败: %v", err)
	}
	csvPath := filepath.Join(eventDir, eventName+".csv")
	if err := os.WriteFile(csvPath, []byte("title,content\n"), 0o644); err != nil {
		t.Fatalf("创建事件 CSV 失败: %v", err)
	}
	return clusterFolder
}

func TestFanOutAllSucceeded(t *testing.T) {
	inv := newStubInvoker()
	clusterFolder := makeEventDir(t, "demo")

	result := fanOut(context.Background(), inv, "demo", clusterFolder)

	if !result.AllSucceeded {
		t.Fatalf("全部成功时 AllSucceeded 应为 true, 失败步骤: %v", result.FailedSteps)
	}
	want := []string{"hot", "emotion", "yuqing", "value", "baseinfo"}
	if len(inv.calls) != len(want) {
		t.Fatalf("调用步骤 = %v, 期望 %v", inv.calls, want)
	}
	for i, step := range want {
		if inv.calls[i] != step {
			t.Fatalf("第 %d 步 = %q, 期望 %q", i, inv.calls[i], step)
		}
	}
	// 价值观服务收到的是事件目录，其余收到的是 CSV 文件路径。
	eventDir := filepath.Join(clusterFolder, "demo")
	if inv.paths["value"] != eventDir {
		t.Fatalf("value 收到 %q, 期望事件目录 %q", inv.paths["value"], eventDir)
	}
	csvPath := filepath.Join(eventDir, "demo.csv")
	if inv.paths["hot"] != csvPath || inv.paths["baseinfo"] != csvPath {
		t.Fatalf("分析步骤收到的 CSV 路径错误: %v", inv.paths)
	}
}

func TestFanOutPrecheckMissingCSV(t *testing.T) {
	inv := newStubInvoker()
	clusterFolder := t.TempDir()
	if err := os.MkdirAll(filepath.Join(clusterFolder, "demo", "images"), 0o755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	result := fanOut(context.Background(), inv, "demo", clusterFolder)

	if result.AllSucceeded {
		t.Fatalf("CSV 缺失时不应判定成功")
	}
	if len(inv.calls) != 0 {
		t.Fatalf("路径校验失败后不应发起任何调用, 实际: %v", inv.calls)
	}
	if len(result.FailedSteps) != 1 || !strings.HasPrefix(result.FailedSteps[0], "precheck:") {
		t.Fatalf("失败步骤 = %v, 期望单条 precheck", result.FailedSteps)
	}
}

func TestFanOutPrecheckMissingImages(t *testing.T) {
	inv := newStubInvoker()
	clusterFolder := t.TempDir()
	eventDir := filepath.Join(clusterFolder, "demo")
	if err := os.MkdirAll(eventDir, 0o755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := os.WriteFile(filepath.Join(eventDir, "demo.csv"), []byte("x"), 0o644); err != nil {
		t.Fatalf("创建 CSV 失败: %v", err)
	}

	result := fanOut(context.Background(), inv, "demo", clusterFolder)

	if result.AllSucceeded || len(inv.calls) != 0 {
		t.Fatalf("images 目录缺失时应直接判负且不发起调用")
	}
}

func TestFanOutCollectsAllFailures(t *testing.T) {
	inv := newStubInvoker()
	inv.outcomes["emotion"] = analyzer.Outcome{OK: false, StatusCode: 504, Err: "请求超时", Kind: analyzer.FailureTimeout}
	inv.outcomes["value"] = analyzer.Outcome{OK: false, StatusCode: 502, Err: "连接失败", Kind: analyzer.FailureTransport}
	clusterFolder := makeEventDir(t, "demo")

	result := fanOut(context.Background(), inv, "demo", clusterFolder)

	if result.AllSucceeded {
		t.Fatalf("有失败步骤时不应判定成功")
	}
	// 即使中途失败，五路调用也应全部打完。
	if len(inv.calls) != 5 {
		t.Fatalf("应发起全部五路调用, 实际 %d 次: %v", len(inv.calls), inv.calls)
	}
	if len(result.FailedSteps) != 2 {
		t.Fatalf("失败步骤 = %v, 期望 2 条", result.FailedSteps)
	}
	joined := strings.Join(result.FailedSteps, "; ")
	if !strings.Contains(joined, "emotion") || !strings.Contains(joined, "value") {
		t.Fatalf("失败步骤应包含 emotion 与 value: %v", result.FailedSteps)
	}
}
