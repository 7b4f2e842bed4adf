package service

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/analyzer"
	"github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/dto"
)

// CrawlerService 定义爬虫投递路径的业务逻辑接口。
type CrawlerService interface {
	// Submit 接受爬虫投递的原始数据并立即返回。
	// - 转发算法服务的调用在后台 goroutine 里执行，不保留句柄：
	//   调用方观察不到转发结果，失败只体现在本服务的日志里。
	//   这是接口的既定契约，爬虫端不因算法服务抖动而阻塞。
	Submit(req *dto.CrawlerSubmitRequest)
}

// crawlerService 是 CrawlerService 接口的具体实现。
type crawlerService struct {
	client       *analyzer.Client
	algorithmURL string
	logger       *core.ZapLogger
}

// NewCrawlerService 通过依赖注入初始化服务实例。
// 转发调用使用独立的短超时客户端：它跑在后台、不做模型推理，
// 没有理由占用分析调用那种分钟级的超时。
func NewCrawlerService(cfg config.AnalyzerConfig, logger *core.ZapLogger) CrawlerService {
	return &crawlerService{
		client:       analyzer.NewClient(constant.CrawlerForwardTimeoutSeconds*time.Second, logger.Logger()),
		algorithmURL: cfg.AlgorithmURL,
		logger:       logger,
	}
}

func (s *crawlerService) Submit(req *dto.CrawlerSubmitRequest) {
	go func() {
		outcome := s.client.Call(context.Background(), s.algorithmURL, req)
		if outcome.OK {
			s.logger.Info("算法服务调用成功，添加事件", zap.String("title", req.Title))
			return
		}
		s.logger.Error("调用算法服务失败",
			zap.String("title", req.Title),
			zap.Int("statusCode", outcome.StatusCode),
			zap.String("kind", string(outcome.Kind)),
			zap.String("err", outcome.Err),
		)
	}()
}
