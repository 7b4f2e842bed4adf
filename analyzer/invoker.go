package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/dto"
)

// Invoker 定义六个分析服务的调用入口。
// - 聚合管线只依赖这个接口，便于在测试里注入桩实现。
// - 所有方法返回 Outcome 而不是 error，失败分类见 client.go。
type Invoker interface {
	// Cluster 调用聚类服务，把数据源目录切分为候选事件。
	Cluster(ctx context.Context, params dto.ClusterParams) Outcome
	// Hot 调用热度预测服务。
	Hot(ctx context.Context, eventName, csvPath, imageDir string) Outcome
	// Emotion 调用情感预测服务。
	Emotion(ctx context.Context, eventName, csvPath, imageDir string) Outcome
	// Yuqing 调用舆情预警等级预测服务。
	Yuqing(ctx context.Context, eventName, csvPath, imageDir string) Outcome
	// Value 调用价值观预测服务。注意第二个路径参数是事件目录而非 csv 文件，
	// 这是价值观服务自己的输入约定。
	Value(ctx context.Context, eventName, eventDir, imageDir string) Outcome
	// Baseinfo 调用基础信息统计服务。
	Baseinfo(ctx context.Context, eventName, csvPath, imageDir string) Outcome
}

// 注册中心的初始化状态机：未初始化 -> 就绪 | 初始化失败。
// 初始化失败是终态，之后的所有调用直接返回同一个失败结果。
type invokerState int

const (
	stateUninitialized invokerState = iota
	stateReady
	stateInitFailed
)

// invokerRegistry 是 Invoker 的惰性初始化实现。
// 首次调用时校验配置并构建 HTTP 客户端，此后复用同一客户端。
type invokerRegistry struct {
	cfg    config.AnalyzerConfig
	logger *zap.Logger

	mu      sync.Mutex
	state   invokerState
	client  *Client
	initErr error
}

// NewInvoker 创建分析服务调用注册中心。
// 构造本身不做任何校验，问题推迟到第一次调用时暴露，
// 这样本服务可以在分析集群尚未就绪时先行启动。
func NewInvoker(cfg config.AnalyzerConfig, logger *zap.Logger) Invoker {
	return &invokerRegistry{cfg: cfg, logger: logger}
}

// ensureReady 推进状态机并返回可用的客户端。
func (r *invokerRegistry) ensureReady() (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateReady:
		return r.client, nil
	case stateInitFailed:
		return nil, r.initErr
	}

	if err := r.validate(); err != nil {
		r.state = stateInitFailed
		r.initErr = err
		return nil, err
	}

	timeout := time.Duration(r.cfg.TimeoutSeconds) * time.Second
	if r.cfg.TimeoutSeconds <= 0 {
		timeout = constant.AnalyzerDefaultTimeoutSeconds * time.Second
	}
	r.client = NewClient(timeout, r.logger)
	r.state = stateReady
	return r.client, nil
}

// validate 检查六个服务地址是否齐全，缺一个就拒绝初始化。
func (r *invokerRegistry) validate() error {
	required := map[string]string{
		"clusterUrl":  r.cfg.ClusterURL,
		"hotUrl":      r.cfg.HotURL,
		"emotionUrl":  r.cfg.EmotionURL,
		"yuqingUrl":   r.cfg.YuqingURL,
		"valueUrl":    r.cfg.ValueURL,
		"baseinfoUrl": r.cfg.BaseinfoURL,
	}
	for name, url := range required {
		if url == "" {
			return fmt.Errorf("analyzer: 配置项 %s 为空，无法初始化分析服务客户端", name)
		}
	}
	return nil
}

// initFailureOutcome 把初始化失败折叠为与网络失败同形的结果。
func initFailureOutcome(err error) Outcome {
	return Outcome{OK: false, StatusCode: 0, Err: err.Error(), Kind: FailureTransport}
}

func (r *invokerRegistry) Cluster(ctx context.Context, params dto.ClusterParams) Outcome {
	client, err := r.ensureReady()
	if err != nil {
		return initFailureOutcome(err)
	}
	if params.DataSourcePath == "" {
		return initFailureOutcome(errors.New("analyzer: data_source_path 不能为空"))
	}
	payload := map[string]interface{}{
		"data_source_path":      params.DataSourcePath,
		"use_saved":             params.UseSaved,
		"method":                params.Method,
		"min_posts":             params.MinPosts,
		"source_site":           params.SourceSite,
		"use_prior":             params.UsePrior,
		"max_samples_per_event": params.MaxSamplesPerEvent,
		"min_samples_per_event": params.MinSamplesPerEvent,
	}
	return client.Call(ctx, r.cfg.ClusterURL, payload)
}

// eventPayload 是五个事件级分析服务共享的请求体形状。
func eventPayload(eventName, path, imageDir string) map[string]interface{} {
	return map[string]interface{}{
		"event_name":     eventName,
		"csv_file_path":  path,
		"image_dir_path": imageDir,
	}
}

func (r *invokerRegistry) Hot(ctx context.Context, eventName, csvPath, imageDir string) Outcome {
	client, err := r.ensureReady()
	if err != nil {
		return initFailureOutcome(err)
	}
	return client.Call(ctx, r.cfg.HotURL, eventPayload(eventName, csvPath, imageDir))
}

func (r *invokerRegistry) Emotion(ctx context.Context, eventName, csvPath, imageDir string) Outcome {
	client, err := r.ensureReady()
	if err != nil {
		return initFailureOutcome(err)
	}
	return client.Call(ctx, r.cfg.EmotionURL, eventPayload(eventName, csvPath, imageDir))
}

func (r *invokerRegistry) Yuqing(ctx context.Context, eventName, csvPath, imageDir string) Outcome {
	client, err := r.ensureReady()
	if err != nil {
		return initFailureOutcome(err)
	}
	return client.Call(ctx, r.cfg.YuqingURL, eventPayload(eventName, csvPath, imageDir))
}

func (r *invokerRegistry) Value(ctx context.Context, eventName, eventDir, imageDir string) Outcome {
	client, err := r.ensureReady()
	if err != nil {
		return initFailureOutcome(err)
	}
	return client.Call(ctx, r.cfg.ValueURL, eventPayload(eventName, eventDir, imageDir))
}

func (r *invokerRegistry) Baseinfo(ctx context.Context, eventName, csvPath, imageDir string) Outcome {
	client, err := r.ensureReady()
	if err != nil {
		return initFailureOutcome(err)
	}
	return client.Call(ctx, r.cfg.BaseinfoURL, eventPayload(eventName, csvPath, imageDir))
}
