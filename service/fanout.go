package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Xushengqwer/opinion_service/analyzer"
)

// fanOutResult 是一个事件完成五路分析扇出后的结论。
// - AllSucceeded 为 false 时事件进入 aborted 终态，五个原始结果保留供排障
type fanOutResult struct {
	AllSucceeded bool
	FailedSteps  []string // 失败的步骤名，路径校验失败时为 ["precheck"]

	Hot      analyzer.Outcome
	Emotion  analyzer.Outcome
	Yuqing   analyzer.Outcome
	Value    analyzer.Outcome
	Baseinfo analyzer.Outcome
}

// fanOut 对单个候选事件发起五路分析调用。
// - 先校验事件目录里 <事件名>.csv 与 images/ 存在，缺任何一个直接判负，
//   不浪费任何一次网络调用
// - 一旦开始调用就五路全部打完：即使前面已经失败，后面的调用照常发起，
//   这样一次运行就能暴露所有出问题的分析服务，而不是每次只暴露一个
// - 五路调用串行执行，分析服务是重推理负载，不做并发压制
func fanOut(ctx context.Context, inv analyzer.Invoker, eventName, clusterFolder string) *fanOutResult {
	eventDir := filepath.Join(clusterFolder, eventName)
	csvPath := filepath.Join(eventDir, eventName+".csv")
	imageDir := filepath.Join(eventDir, "images")

	result := &fanOutResult{}

	if _, err := os.Stat(csvPath); err != nil {
		result.FailedSteps = append(result.FailedSteps, fmt.Sprintf("precheck: %s 不存在", csvPath))
		return result
	}
	if info, err := os.Stat(imageDir); err != nil || !info.IsDir() {
		result.FailedSteps = append(result.FailedSteps, fmt.Sprintf("precheck: %s 不存在", imageDir))
		return result
	}

	result.Hot = inv.Hot(ctx, eventName, csvPath, imageDir)
	result.Emotion = inv.Emotion(ctx, eventName, csvPath, imageDir)
	result.Yuqing = inv.Yuqing(ctx, eventName, csvPath, imageDir)
	// 价值观服务约定传事件目录而不是 csv 文件。
	result.Value = inv.Value(ctx, eventName, eventDir, imageDir)
	result.Baseinfo = inv.Baseinfo(ctx, eventName, csvPath, imageDir)

	steps := []struct {
		name    string
		outcome analyzer.Outcome
	}{
		{"hot", result.Hot},
		{"emotion", result.Emotion},
		{"yuqing", result.Yuqing},
		{"value", result.Value},
		{"baseinfo", result.Baseinfo},
	}
	for _, step := range steps {
		if !step.outcome.OK {
			result.FailedSteps = append(result.FailedSteps, fmt.Sprintf("%s: %s", step.name, step.outcome.Err))
		}
	}
	result.AllSucceeded = len(result.FailedSteps) == 0
	return result
}
