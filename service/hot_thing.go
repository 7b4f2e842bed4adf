package service

import (
	"context"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/models/entities"
	"github.com/Xushengqwer/opinion_service/models/vo"
	"github.com/Xushengqwer/opinion_service/mq/producer"
	"github.com/Xushengqwer/opinion_service/repo/mysql"
	"github.com/Xushengqwer/opinion_service/repo/redis"
)

// HotThingService 定义热点事件的写路径业务逻辑接口。
type HotThingService interface {
	// AddHotThing 将一份事件聚合体整树入库。
	// - 先做结构化校验（首个违规项即拒绝），再在单个事务内按依赖顺序插入十张表；
	//   任何一步失败整树回滚，不存在半棵树。
	// - 成功后异步失效列表缓存并发布 Kafka 入库事件。
	AddHotThing(ctx context.Context, req *dto.AddHotThingRequest) (*vo.AddHotThingVO, error)

	// DeleteHotThing 级联删除一个热点事件及其全部从属记录。
	// - 单个事务内从叶子表删到主表，雷达/人群明细通过子查询定位。
	// - 事件不存在时返回 commonerrors.ErrRepoNotFound。
	DeleteHotThing(ctx context.Context, id uint64) error

	// ClearAllTables 清空所有业务表，保留 provinces 与 system_info 参考表。
	// - 运维接口，用于演示环境重置；表清单从 information_schema 动态发现。
	ClearAllTables(ctx context.Context) (*vo.ClearTablesVO, error)
}

// hotThingService 是 HotThingService 接口的具体实现。
type hotThingService struct {
	db              *gorm.DB
	hotThingRepo    mysql.HotThingRepository
	userEmotionRepo mysql.UserEmotionRepository
	heatRepo        mysql.HeatRepository
	trendRepo       mysql.TrendRepository
	typicalPostRepo mysql.TypicalPostRepository
	populationRepo  mysql.PopulationRepository
	provinceRepo    mysql.ThingProvinceRepository
	wordCloudRepo   mysql.WordCloudRepository
	maintenanceRepo mysql.MaintenanceRepository
	cache           redis.HotThingsCache
	kafkaSvc        *producer.KafkaProducer
	logger          *core.ZapLogger
}

// NewHotThingService 通过依赖注入初始化服务实例。
// - cache 与 kafkaSvc 允许为 nil（未配置对应组件时降级为纯数据库路径）。
func NewHotThingService(
	db *gorm.DB,
	hotThingRepo mysql.HotThingRepository,
	userEmotionRepo mysql.UserEmotionRepository,
	heatRepo mysql.HeatRepository,
	trendRepo mysql.TrendRepository,
	typicalPostRepo mysql.TypicalPostRepository,
	populationRepo mysql.PopulationRepository,
	provinceRepo mysql.ThingProvinceRepository,
	wordCloudRepo mysql.WordCloudRepository,
	maintenanceRepo mysql.MaintenanceRepository,
	cache redis.HotThingsCache,
	kafkaSvc *producer.KafkaProducer,
	logger *core.ZapLogger,
) HotThingService {
	return &hotThingService{
		db:              db,
		hotThingRepo:    hotThingRepo,
		userEmotionRepo: userEmotionRepo,
		heatRepo:        heatRepo,
		trendRepo:       trendRepo,
		typicalPostRepo: typicalPostRepo,
		populationRepo:  populationRepo,
		provinceRepo:    provinceRepo,
		wordCloudRepo:   wordCloudRepo,
		maintenanceRepo: maintenanceRepo,
		cache:           cache,
		kafkaSvc:        kafkaSvc,
		logger:          logger,
	}
}

func (s *hotThingService) AddHotThing(ctx context.Context, req *dto.AddHotThingRequest) (*vo.AddHotThingVO, error) {
	if err := ValidateAggregate(req); err != nil {
		return nil, err
	}

	hotThing := &entities.HotThing{
		Title:             req.HotThing.Title,
		URL:               req.HotThing.URL,
		Source:            req.HotThing.Source,
		Date:              ParseAggregateDate(req.HotThing.Date),
		Heat:              req.HotThing.Heat,
		WarningLv:         req.HotThing.WarningLv,
		TotalPosts:        int64(req.HotThing.TotalPosts),
		TotalUsers:        int64(req.HotThing.TotalUsers),
		TotalInteractions: int64(req.HotThing.TotalInteractions),
		PostsWithLocation: int64(req.HotThing.PostsWithLocation),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 主记录先行，拿到自增 ID 供整棵子树引用
		if err := s.hotThingRepo.Create(ctx, tx, hotThing); err != nil {
			return fmt.Errorf("插入事件主记录失败: %w", err)
		}

		// 2. 情感画像
		emotion := &entities.UserEmotion{
			ThingsID:  hotThing.ID,
			Positive:  int64(req.UserEmotion.Positive),
			Negative:  int64(req.UserEmotion.Negative),
			Like:      int64(req.UserEmotion.Like),
			Happiness: int64(req.UserEmotion.Happiness),
			Sadness:   int64(req.UserEmotion.Sadness),
			Anger:     int64(req.UserEmotion.Anger),
			Disgust:   int64(req.UserEmotion.Disgust),
			Fear:      int64(req.UserEmotion.Fear),
			Surprise:  int64(req.UserEmotion.Surprise),
		}
		if err := s.userEmotionRepo.Create(ctx, tx, emotion); err != nil {
			return fmt.Errorf("插入情感画像失败: %w", err)
		}

		// 3. 热度指标
		heat := &entities.Heat{
			ThingID:             hotThing.ID,
			ForwardCount:        int64(req.Heat.ForwardCount),
			CommentCount:        int64(req.Heat.CommentCount),
			LikeCount:           int64(req.Heat.LikeCount),
			CompositeHotScore:   req.Heat.CompositeHotScore,
			BaseHotValue:        req.Heat.BaseHotValue,
			MediaHotValue:       req.Heat.MediaHotValue,
			InteractionHotValue: req.Heat.InteractionHotValue,
		}
		if err := s.heatRepo.Create(ctx, tx, heat); err != nil {
			return fmt.Errorf("插入热度指标失败: %w", err)
		}

		// 4. 七天发帖量序列，天序从 1 开始
		trends := make([]*entities.Trend, 0, len(req.Trend))
		for i, v := range req.Trend {
			trends = append(trends, &entities.Trend{
				ThingID: hotThing.ID,
				Sort:    i + 1,
				Value:   int64(v),
			})
		}
		if err := s.trendRepo.BatchCreate(ctx, tx, trends); err != nil {
			return fmt.Errorf("插入发帖量序列失败: %w", err)
		}

		// 5. 典型帖子与价值观雷达，帖子插入后立刻插对应雷达
		for i := range req.TypicalPosts {
			item := &req.TypicalPosts[i]
			post := &entities.TypicalPost{
				ThingID:  hotThing.ID,
				Title:    item.Title,
				URL:      item.URL,
				Source:   item.Source,
				Datetime: ParseAggregateDate(item.Datetime),
				Heat:     item.Heat,
			}
			if err := s.typicalPostRepo.Create(ctx, tx, post); err != nil {
				return fmt.Errorf("插入典型帖子失败: %w", err)
			}
			radar := &entities.TypicalRadar{
				TypicalID:    post.ID,
				Autonomy:     item.Autonomy,
				Stimulus:     item.Stimulus,
				Fraternity:   item.Fraternity,
				Friendliness: item.Friendliness,
				Compliance:   item.Compliance,
				Tradition:    item.Tradition,
				Security:     item.Security,
				Authority:    item.Authority,
				Achievement:  item.Achievement,
				Hedonism:     item.Hedonism,
			}
			if err := s.typicalPostRepo.CreateRadar(ctx, tx, radar); err != nil {
				return fmt.Errorf("插入价值观雷达失败: %w", err)
			}
		}

		// 6. 人群构成分组与标签明细
		for i := range req.PopulationComposition {
			comp := &req.PopulationComposition[i]
			group := &entities.PopulationComposition{
				ThingID: hotThing.ID,
				Name:    comp.Name,
				Value:   comp.Value,
			}
			if err := s.populationRepo.CreateGroup(ctx, tx, group); err != nil {
				return fmt.Errorf("插入人群构成分组失败: %w", err)
			}
			values := make([]*entities.PopulationValue, 0, len(comp.PopulationValues))
			for _, pair := range comp.PopulationValues {
				values = append(values, &entities.PopulationValue{
					PopulationID: group.ID,
					Label:        pair.Label,
					Value:        pair.Value,
				})
			}
			if err := s.populationRepo.BatchCreateValues(ctx, tx, values); err != nil {
				return fmt.Errorf("插入人群构成明细失败: %w", err)
			}
		}

		// 7. 地域分布着色
		provinces := make([]*entities.ThingProvince, 0, len(req.Map))
		for _, p := range req.Map {
			provinces = append(provinces, &entities.ThingProvince{
				ThingID:     hotThing.ID,
				ProvincePID: p.ProvincePID,
				Color:       p.Color,
			})
		}
		if err := s.provinceRepo.BatchCreate(ctx, tx, provinces); err != nil {
			return fmt.Errorf("插入地域分布失败: %w", err)
		}

		// 8. 词云可选，为空时整行缺省
		if req.WordCloud != "" {
			wordCloud := &entities.WordCloud{
				ThingID: hotThing.ID,
				Img:     req.WordCloud,
			}
			if err := s.wordCloudRepo.Create(ctx, tx, wordCloud); err != nil {
				return fmt.Errorf("插入词云失败: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("事件入库事务失败", zap.String("title", req.HotThing.Title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("事件入库成功", zap.Uint64("thingID", hotThing.ID), zap.String("title", hotThing.Title))
	s.invalidateCache()
	if s.kafkaSvc != nil {
		go func() {
			if sendErr := s.kafkaSvc.SendHotThingPersistedEvent(context.Background(), hotThing.ID, hotThing.Title, hotThing.Heat, hotThing.WarningLv); sendErr != nil {
				s.logger.Error("发送事件入库通知失败", zap.Uint64("thingID", hotThing.ID), zap.Error(sendErr))
			}
		}()
	}

	return &vo.AddHotThingVO{ThingID: hotThing.ID}, nil
}

func (s *hotThingService) DeleteHotThing(ctx context.Context, id uint64) error {
	// 先确认存在，删不存在的事件直接返回 NotFound 而不是静默成功。
	if _, err := s.hotThingRepo.GetByID(ctx, id); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 从叶子删到根，子查询必须趁父表还在时执行。
		if err := s.wordCloudRepo.DeleteByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除词云失败: %w", err)
		}
		if err := s.provinceRepo.DeleteByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除地域分布失败: %w", err)
		}
		if err := s.populationRepo.DeleteValuesByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除人群构成明细失败: %w", err)
		}
		if err := s.populationRepo.DeleteGroupsByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除人群构成分组失败: %w", err)
		}
		if err := s.typicalPostRepo.DeleteRadarByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除价值观雷达失败: %w", err)
		}
		if err := s.typicalPostRepo.DeleteByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除典型帖子失败: %w", err)
		}
		if err := s.trendRepo.DeleteByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除发帖量序列失败: %w", err)
		}
		if err := s.heatRepo.DeleteByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除热度指标失败: %w", err)
		}
		if err := s.userEmotionRepo.DeleteByThingID(ctx, tx, id); err != nil {
			return fmt.Errorf("删除情感画像失败: %w", err)
		}
		if err := s.hotThingRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("删除事件主记录失败: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("事件删除事务失败", zap.Uint64("thingID", id), zap.Error(err))
		return err
	}

	s.logger.Info("事件删除成功", zap.Uint64("thingID", id))
	s.invalidateCache()
	if s.kafkaSvc != nil {
		go func() {
			if sendErr := s.kafkaSvc.SendHotThingDeletedEvent(context.Background(), id); sendErr != nil {
				s.logger.Error("发送事件删除通知失败", zap.Uint64("thingID", id), zap.Error(sendErr))
			}
		}()
	}
	return nil
}

func (s *hotThingService) ClearAllTables(ctx context.Context) (*vo.ClearTablesVO, error) {
	tables, err := s.maintenanceRepo.ListBusinessTables(ctx)
	if err != nil {
		s.logger.Error("清空操作发现业务表失败", zap.Error(err))
		return nil, err
	}

	cleared, skipped, err := s.maintenanceRepo.ClearTables(ctx, tables)
	if err != nil {
		s.logger.Error("清空业务表失败", zap.Error(err))
		return nil, err
	}
	if len(skipped) > 0 {
		s.logger.Warn("部分表清空失败，已跳过", zap.Strings("tables", skipped))
	}

	s.logger.Info("业务表清空完成",
		zap.Int("清空数量", len(cleared)),
		zap.Strings("保留表", constant.ReservedTables),
	)
	s.invalidateCache()

	return &vo.ClearTablesVO{
		ClearedTables:   cleared,
		PreservedTables: constant.ReservedTables,
		ClearedCount:    len(cleared),
	}, nil
}

// invalidateCache 尽力失效列表缓存，失败只记日志。
func (s *hotThingService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(context.Background()); err != nil {
		s.logger.Warn("失效热点事件列表缓存失败", zap.Error(err))
	}
}
