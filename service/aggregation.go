package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/analyzer"
	"github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/dependencies"
	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/models/vo"
	"github.com/Xushengqwer/opinion_service/myErrors"
)

// 事件在管线里的终态。
const (
	eventStatusPersisted     = "persisted"
	eventStatusAborted       = "aborted"
	eventStatusPersistFailed = "persist_failed"
)

// AggregationService 定义事件聚合管线的业务逻辑接口。
type AggregationService interface {
	// RunPipeline 执行一次完整的聚合管线：
	// 聚类 → 枚举候选事件 → 逐事件五路扇出 → 整合 → 校验入库。
	// - 事件顺序处理；扇出失败的事件记为 aborted 后继续处理后续事件，
	//   但入库失败会中止剩余批次（既定策略：入库失败大概率是系统性问题，
	//   继续跑只会制造更多半途而废的事件）。
	// - 聚类失败或未产出任何簇时返回 myErrors.ErrClusterEmpty。
	RunPipeline(ctx context.Context, req *dto.RunPipelineRequest) (*vo.PipelineRunVO, error)
}

// aggregationService 是 AggregationService 接口的具体实现。
type aggregationService struct {
	invoker     analyzer.Invoker
	hotThingSvc HotThingService
	pipelineCfg config.PipelineConfig
	cosClient   dependencies.COSClientInterface // 可为 nil，未配置时跳过归档
	logger      *core.ZapLogger
}

// NewAggregationService 通过依赖注入初始化服务实例。
func NewAggregationService(
	invoker analyzer.Invoker,
	hotThingSvc HotThingService,
	pipelineCfg config.PipelineConfig,
	cosClient dependencies.COSClientInterface,
	logger *core.ZapLogger,
) AggregationService {
	return &aggregationService{
		invoker:     invoker,
		hotThingSvc: hotThingSvc,
		pipelineCfg: pipelineCfg,
		cosClient:   cosClient,
		logger:      logger,
	}
}

func (s *aggregationService) RunPipeline(ctx context.Context, req *dto.RunPipelineRequest) (*vo.PipelineRunVO, error) {
	params := s.fillClusterParams(req)

	clusterFolder, err := s.runCluster(ctx, params)
	if err != nil {
		return nil, err
	}

	eventNames, err := listEventDirs(clusterFolder)
	if err != nil {
		return nil, err
	}
	s.logger.Info("聚类完成，开始逐事件处理",
		zap.String("clusterFolder", clusterFolder),
		zap.Int("eventCount", len(eventNames)),
	)

	run := &vo.PipelineRunVO{
		ClusterFolder: clusterFolder,
		EventTotal:    len(eventNames),
		Events:        make([]vo.EventResultVO, 0, len(eventNames)),
	}

	for i, eventName := range eventNames {
		result := s.processEvent(ctx, eventName, clusterFolder)
		run.Events = append(run.Events, result)
		if result.Status == eventStatusPersisted {
			run.Persisted++
			continue
		}
		if result.Status == eventStatusPersistFailed {
			s.logger.Error("事件入库失败，中止剩余批次",
				zap.String("event", eventName),
				zap.Int("remaining", len(eventNames)-i-1),
			)
			break
		}
	}
	return run, nil
}

// fillClusterParams 以配置默认值为底，叠加请求里显式给出的调参。
func (s *aggregationService) fillClusterParams(req *dto.RunPipelineRequest) dto.ClusterParams {
	params := dto.ClusterParams{
		DataSourcePath:     req.DataSourcePath,
		UseSaved:           s.pipelineCfg.UseSaved,
		Method:             s.pipelineCfg.Method,
		MinPosts:           s.pipelineCfg.MinPosts,
		SourceSite:         s.pipelineCfg.SourceSite,
		UsePrior:           s.pipelineCfg.UsePrior,
		MaxSamplesPerEvent: s.pipelineCfg.MaxSamplesPerEvent,
		MinSamplesPerEvent: s.pipelineCfg.MinSamplesPerEvent,
	}
	if req.UseSaved != nil {
		params.UseSaved = *req.UseSaved
	}
	if req.Method != nil {
		params.Method = *req.Method
	}
	if req.MinPosts != nil {
		params.MinPosts = *req.MinPosts
	}
	if req.SourceSite != nil {
		params.SourceSite = *req.SourceSite
	}
	if req.UsePrior != nil {
		params.UsePrior = *req.UsePrior
	}
	if req.MaxSamplesPerEvent != nil {
		params.MaxSamplesPerEvent = *req.MaxSamplesPerEvent
	}
	if req.MinSamplesPerEvent != nil {
		params.MinSamplesPerEvent = *req.MinSamplesPerEvent
	}
	return params
}

// runCluster 调用聚类服务并确认产出了候选事件。
// 只有 data.outputs.clusters 非空才算成功，返回候选事件所在目录。
func (s *aggregationService) runCluster(ctx context.Context, params dto.ClusterParams) (string, error) {
	outcome := s.invoker.Cluster(ctx, params)
	if !outcome.OK {
		s.logger.Error("聚类服务调用失败",
			zap.Int("statusCode", outcome.StatusCode),
			zap.String("kind", string(outcome.Kind)),
			zap.String("err", outcome.Err),
		)
		return "", fmt.Errorf("%w: %s", myErrors.ErrClusterEmpty, outcome.Err)
	}
	clusters := analyzer.GetSlice(outcome.Data, "data", "outputs", "clusters")
	if len(clusters) == 0 {
		s.logger.Warn("聚类服务未产出任何簇")
		return "", myErrors.ErrClusterEmpty
	}
	return filepath.Join(params.DataSourcePath, constant.ClusterEventsSubDir), nil
}

// processEvent 处理单个候选事件，返回其终态。
func (s *aggregationService) processEvent(ctx context.Context, eventName, clusterFolder string) vo.EventResultVO {
	s.logger.Info("开始处理事件", zap.String("event", eventName))

	fo := fanOut(ctx, s.invoker, eventName, clusterFolder)
	if !fo.AllSucceeded {
		s.logger.Warn("事件分析扇出失败",
			zap.String("event", eventName),
			zap.Strings("failedSteps", fo.FailedSteps),
		)
		return vo.EventResultVO{
			EventName: eventName,
			Status:    eventStatusAborted,
			Message:   strings.Join(fo.FailedSteps, "; "),
		}
	}

	aggregate := Reconcile(fo.Emotion, fo.Yuqing, fo.Hot, fo.Value, fo.Baseinfo)

	created, err := s.hotThingSvc.AddHotThing(ctx, aggregate)
	if err != nil {
		return vo.EventResultVO{
			EventName: eventName,
			Status:    eventStatusPersistFailed,
			Message:   err.Error(),
		}
	}

	s.logger.Info("事件处理成功",
		zap.String("event", eventName),
		zap.Uint64("thingID", created.ThingID),
	)
	s.archiveArtifacts(ctx, eventName, clusterFolder, created.ThingID)

	return vo.EventResultVO{
		EventName: eventName,
		Status:    eventStatusPersisted,
		ThingID:   created.ThingID,
	}
}

// archiveArtifacts 入库成功后把事件 CSV 归档到对象存储，尽力而为。
func (s *aggregationService) archiveArtifacts(ctx context.Context, eventName, clusterFolder string, thingID uint64) {
	if s.cosClient == nil || !s.pipelineCfg.ArchiveArtifacts {
		return
	}

	csvPath := filepath.Join(clusterFolder, eventName, eventName+".csv")
	file, err := os.Open(csvPath)
	if err != nil {
		s.logger.Warn("归档事件 CSV 失败：无法打开文件", zap.String("path", csvPath), zap.Error(err))
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		s.logger.Warn("归档事件 CSV 失败：无法读取文件信息", zap.String("path", csvPath), zap.Error(err))
		return
	}

	objectKey := fmt.Sprintf("cluster_events/%d/%s/%s.csv", thingID, uuid.New().String(), eventName)
	if _, err := s.cosClient.UploadFile(ctx, objectKey, file, info.Size(), "text/csv"); err != nil {
		s.logger.Warn("归档事件 CSV 失败", zap.String("objectKey", objectKey), zap.Error(err))
	}
}

// listEventDirs 枚举候选事件目录，按名称排序保证处理顺序稳定。
func listEventDirs(clusterFolder string) ([]string, error) {
	entries, err := os.ReadDir(clusterFolder)
	if err != nil {
		return nil, fmt.Errorf("读取候选事件目录失败: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
