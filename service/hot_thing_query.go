package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/entities"
	"github.com/Xushengqwer/opinion_service/models/vo"
	"github.com/Xushengqwer/opinion_service/myErrors"
	"github.com/Xushengqwer/opinion_service/repo/mysql"
	"github.com/Xushengqwer/opinion_service/repo/redis"
)

// searchResultLimit 标题搜索返回的最大条数。
const searchResultLimit = 5

// typicalPostsLimit 典型帖子列表返回的最大条数。
const typicalPostsLimit = 10

// radarPostsLimit 价值观雷达图展示的典型帖子数。
const radarPostsLimit = 3

// HotThingQueryService 定义大屏读路径的业务逻辑接口。
// - 全部方法只读；事件不存在或无数据时返回空结果而不是错误，
//   大屏各面板独立渲染，单个面板无数据不应整页报错
type HotThingQueryService interface {
	// GetHotThings 获取最新的热点事件列表（大屏首页，固定 4 条）。
	// - 优先读缓存，未命中回源数据库并重建缓存。
	GetHotThings(ctx context.Context) ([]*vo.HotThingItemVO, error)

	// GetWarningLvByID 获取事件预警等级。
	GetWarningLvByID(ctx context.Context, id uint64) (*vo.WarningLvVO, error)

	// GetEmotionsByID 获取事件情感画像。
	GetEmotionsByID(ctx context.Context, id uint64) (*vo.EmotionVO, error)

	// SearchByKeyword 按标题关键字搜索事件，最多 5 条。
	SearchByKeyword(ctx context.Context, keyword string) ([]*vo.HotThingItemVO, error)

	// GetMapDataByID 获取事件地域分布着色。
	GetMapDataByID(ctx context.Context, id uint64) ([]*vo.MapItemVO, error)

	// GetWordCloudByID 获取事件词云图。
	GetWordCloudByID(ctx context.Context, id uint64) (*vo.WordCloudVO, error)

	// GetPlatformMetricsByID 获取事件平台级汇总计数。
	GetPlatformMetricsByID(ctx context.Context, id uint64) (*vo.PlatformMetricsVO, error)

	// GetTrendDataByID 获取事件七天发帖量序列。
	// - 总是返回长度为 7 的序列，缺失的天补 0；完全无数据时返回 nil。
	GetTrendDataByID(ctx context.Context, id uint64) ([]int64, error)

	// GetTypicalPostsByID 获取事件典型帖子，id 倒序最多 10 条。
	GetTypicalPostsByID(ctx context.Context, id uint64) ([]*vo.HotThingItemVO, error)

	// GetHeatDataByID 获取事件热度指标。
	GetHeatDataByID(ctx context.Context, id uint64) (*vo.HeatVO, error)

	// GetTypicalRadarDataByID 获取价值观雷达图数据，最新 3 条典型帖子。
	GetTypicalRadarDataByID(ctx context.Context, id uint64) (*vo.RadarVO, error)

	// GetPopulationCompositionByID 获取事件人群构成分组。
	GetPopulationCompositionByID(ctx context.Context, id uint64) ([]*vo.PopulationGroupVO, error)

	// GetPopulationDataByPopID 获取指定分组下的人群构成明细。
	GetPopulationDataByPopID(ctx context.Context, populationID uint64) ([]*vo.PopulationValueVO, error)

	// GetSystemInfo 获取系统运行概况。
	GetSystemInfo(ctx context.Context) (*vo.SystemInfoVO, error)
}

// hotThingQueryService 是 HotThingQueryService 接口的具体实现。
type hotThingQueryService struct {
	hotThingRepo    mysql.HotThingRepository
	userEmotionRepo mysql.UserEmotionRepository
	heatRepo        mysql.HeatRepository
	trendRepo       mysql.TrendRepository
	typicalPostRepo mysql.TypicalPostRepository
	populationRepo  mysql.PopulationRepository
	provinceRepo    mysql.ThingProvinceRepository
	wordCloudRepo   mysql.WordCloudRepository
	systemInfoRepo  mysql.SystemInfoRepository
	cache           redis.HotThingsCache
	logger          *core.ZapLogger
}

// NewHotThingQueryService 通过依赖注入初始化服务实例。
// - cache 允许为 nil，此时列表接口每次直读数据库。
func NewHotThingQueryService(
	hotThingRepo mysql.HotThingRepository,
	userEmotionRepo mysql.UserEmotionRepository,
	heatRepo mysql.HeatRepository,
	trendRepo mysql.TrendRepository,
	typicalPostRepo mysql.TypicalPostRepository,
	populationRepo mysql.PopulationRepository,
	provinceRepo mysql.ThingProvinceRepository,
	wordCloudRepo mysql.WordCloudRepository,
	systemInfoRepo mysql.SystemInfoRepository,
	cache redis.HotThingsCache,
	logger *core.ZapLogger,
) HotThingQueryService {
	return &hotThingQueryService{
		hotThingRepo:    hotThingRepo,
		userEmotionRepo: userEmotionRepo,
		heatRepo:        heatRepo,
		trendRepo:       trendRepo,
		typicalPostRepo: typicalPostRepo,
		populationRepo:  populationRepo,
		provinceRepo:    provinceRepo,
		wordCloudRepo:   wordCloudRepo,
		systemInfoRepo:  systemInfoRepo,
		cache:           cache,
		logger:          logger,
	}
}

// hotThingToItemVO 把事件主实体转成大屏列表条目。
func hotThingToItemVO(thing *entities.HotThing) *vo.HotThingItemVO {
	return &vo.HotThingItemVO{
		ID:       thing.ID,
		Title:    thing.Title,
		URL:      thing.URL,
		Source:   thing.Source,
		Datatime: thing.Date.Format(DatetimeLayout),
		Heat:     thing.Heat,
	}
}

func (s *hotThingQueryService) GetHotThings(ctx context.Context) ([]*vo.HotThingItemVO, error) {
	if s.cache != nil {
		items, err := s.cache.GetLatest(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			// 缓存故障降级为直读数据库，不把 Redis 故障暴露给大屏。
			s.logger.Warn("读取列表缓存出错，降级直读数据库", zap.Error(err))
		}
	}

	things, err := s.hotThingRepo.ListLatest(ctx, constant.HotThingsListSize)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.HotThingItemVO, 0, len(things))
	for _, thing := range things {
		items = append(items, hotThingToItemVO(thing))
	}

	if s.cache != nil {
		if setErr := s.cache.SetLatest(ctx, items); setErr != nil {
			s.logger.Warn("回填列表缓存失败", zap.Error(setErr))
		}
	}
	return items, nil
}

func (s *hotThingQueryService) GetWarningLvByID(ctx context.Context, id uint64) (*vo.WarningLvVO, error) {
	thing, err := s.hotThingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &vo.WarningLvVO{WarningLv: thing.WarningLv}, nil
}

func (s *hotThingQueryService) GetEmotionsByID(ctx context.Context, id uint64) (*vo.EmotionVO, error) {
	emotion, err := s.userEmotionRepo.GetByThingID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &vo.EmotionVO{
		EmotionData: vo.EmotionPolarityVO{
			Positive: emotion.Positive,
			Negative: emotion.Negative,
		},
		MultiEmotionData: vo.MultiEmotionVO{
			Like:      emotion.Like,
			Happiness: emotion.Happiness,
			Sadness:   emotion.Sadness,
			Anger:     emotion.Anger,
			Disgust:   emotion.Disgust,
			Fear:      emotion.Fear,
			Surprise:  emotion.Surprise,
		},
	}, nil
}

func (s *hotThingQueryService) SearchByKeyword(ctx context.Context, keyword string) ([]*vo.HotThingItemVO, error) {
	things, err := s.hotThingRepo.SearchByTitle(ctx, keyword, searchResultLimit)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.HotThingItemVO, 0, len(things))
	for _, thing := range things {
		items = append(items, hotThingToItemVO(thing))
	}
	return items, nil
}

func (s *hotThingQueryService) GetMapDataByID(ctx context.Context, id uint64) ([]*vo.MapItemVO, error) {
	rows, err := s.provinceRepo.ListColorsByThingID(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.MapItemVO, 0, len(rows))
	for _, row := range rows {
		items = append(items, &vo.MapItemVO{
			Name:      row.Name,
			ItemStyle: vo.MapItemStyleVO{AreaColor: row.Color},
		})
	}
	return items, nil
}

func (s *hotThingQueryService) GetWordCloudByID(ctx context.Context, id uint64) (*vo.WordCloudVO, error) {
	wordCloud, err := s.wordCloudRepo.GetByThingID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &vo.WordCloudVO{Img: wordCloud.Img}, nil
}

func (s *hotThingQueryService) GetPlatformMetricsByID(ctx context.Context, id uint64) (*vo.PlatformMetricsVO, error) {
	thing, err := s.hotThingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &vo.PlatformMetricsVO{
		TotalPosts:        thing.TotalPosts,
		TotalUsers:        thing.TotalUsers,
		TotalInteractions: thing.TotalInteractions,
		PostsWithLocation: thing.PostsWithLocation,
	}, nil
}

func (s *hotThingQueryService) GetTrendDataByID(ctx context.Context, id uint64) ([]int64, error) {
	trends, err := s.trendRepo.ListByThingID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(trends) == 0 {
		return nil, nil
	}
	// 按天序落槽：sort 1-7 对应下标 0-6，缺失的天保持 0。
	values := make([]int64, constant.TrendDays)
	for _, t := range trends {
		if t.Sort >= 1 && t.Sort <= constant.TrendDays {
			values[t.Sort-1] = t.Value
		}
	}
	return values, nil
}

func (s *hotThingQueryService) GetTypicalPostsByID(ctx context.Context, id uint64) ([]*vo.HotThingItemVO, error) {
	posts, err := s.typicalPostRepo.ListByThingID(ctx, id, typicalPostsLimit)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.HotThingItemVO, 0, len(posts))
	for _, post := range posts {
		items = append(items, &vo.HotThingItemVO{
			ID:       post.ID,
			Title:    post.Title,
			URL:      post.URL,
			Source:   post.Source,
			Datatime: post.Datetime.Format(DatetimeLayout),
			Heat:     post.Heat,
		})
	}
	return items, nil
}

func (s *hotThingQueryService) GetHeatDataByID(ctx context.Context, id uint64) (*vo.HeatVO, error) {
	heat, err := s.heatRepo.GetByThingID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &vo.HeatVO{
		ForwardCount:        heat.ForwardCount,
		CommentCount:        heat.CommentCount,
		LikeCount:           heat.LikeCount,
		CompositeHotScore:   heat.CompositeHotScore,
		BaseHotValue:        heat.BaseHotValue,
		MediaHotValue:       heat.MediaHotValue,
		InteractionHotValue: heat.InteractionHotValue,
	}, nil
}

func (s *hotThingQueryService) GetTypicalRadarDataByID(ctx context.Context, id uint64) (*vo.RadarVO, error) {
	rows, err := s.typicalPostRepo.ListRadarByThingID(ctx, id, radarPostsLimit)
	if err != nil {
		return nil, err
	}
	radar := &vo.RadarVO{
		Titles: make([]string, 0, len(rows)),
		Values: make([][]float64, 0, len(rows)),
	}
	for _, row := range rows {
		radar.Titles = append(radar.Titles, row.Title)
		radar.Values = append(radar.Values, []float64{
			row.Autonomy, row.Stimulus, row.Fraternity, row.Friendliness, row.Compliance,
			row.Tradition, row.Security, row.Authority, row.Achievement, row.Hedonism,
		})
	}
	return radar, nil
}

func (s *hotThingQueryService) GetPopulationCompositionByID(ctx context.Context, id uint64) ([]*vo.PopulationGroupVO, error) {
	groups, err := s.populationRepo.ListGroupsByThingID(ctx, id)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.PopulationGroupVO, 0, len(groups))
	for _, group := range groups {
		items = append(items, &vo.PopulationGroupVO{
			ID:    group.ID,
			Name:  group.Name,
			Value: group.Value,
		})
	}
	return items, nil
}

func (s *hotThingQueryService) GetPopulationDataByPopID(ctx context.Context, populationID uint64) ([]*vo.PopulationValueVO, error) {
	values, err := s.populationRepo.ListValuesByPopulationID(ctx, populationID)
	if err != nil {
		return nil, err
	}
	items := make([]*vo.PopulationValueVO, 0, len(values))
	for _, value := range values {
		// 入库时的 label 字段在饼图数据项里叫 name。
		items = append(items, &vo.PopulationValueVO{
			Name:  value.Label,
			Value: value.Value,
		})
	}
	return items, nil
}

func (s *hotThingQueryService) GetSystemInfo(ctx context.Context) (*vo.SystemInfoVO, error) {
	info, err := s.systemInfoRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &vo.SystemInfoVO{
		ID:             info.ID,
		StartTime:      info.StartTime.Format("2006-01-02"),
		MonitoredTotal: info.MonitoredTotal,
		ExcludedCount:  info.ExcludedCount,
	}, nil
}
