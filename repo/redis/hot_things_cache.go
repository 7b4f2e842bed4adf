package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/vo"
	"github.com/Xushengqwer/opinion_service/myErrors"
)

// HotThingsCache 定义大屏热点事件列表的缓存操作接口。
// - 大屏首页每隔数秒轮询列表接口，缓存层挡掉绝大多数数据库读
// - 缓存内容是渲染好的 VO 列表而不是实体，命中后零转换直接返回
type HotThingsCache interface {
	// GetLatest 获取缓存的热点事件列表。
	// - 缓存未命中时返回 myErrors.ErrCacheMiss，上层服务需要回源数据库。
	GetLatest(ctx context.Context) ([]*vo.HotThingItemVO, error)

	// SetLatest 覆盖写入热点事件列表缓存。
	SetLatest(ctx context.Context, items []*vo.HotThingItemVO) error

	// Invalidate 删除列表缓存。
	// - 事件创建、删除、清库之后调用，下一次读取自然回源并重建。
	Invalidate(ctx context.Context) error
}

// hotThingsCache 是 HotThingsCache 接口的 Redis 实现。
type hotThingsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	logger      *core.ZapLogger
}

// NewHotThingsCache 创建 HotThingsCache 实例。
// - ttl <= 0 时不设置过期时间，依赖定时任务与主动失效兜底。
func NewHotThingsCache(redisClient *redis.Client, ttl time.Duration, logger *core.ZapLogger) HotThingsCache {
	return &hotThingsCache{
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

func (c *hotThingsCache) GetLatest(ctx context.Context) ([]*vo.HotThingItemVO, error) {
	raw, err := c.redisClient.Get(ctx, constant.HotThingsListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取热点事件列表缓存失败",
			zap.String("key", constant.HotThingsListKey),
			zap.Error(err),
		)
		return nil, fmt.Errorf("读取热点事件列表缓存失败: %w", err)
	}

	var items []*vo.HotThingItemVO
	if err := json.Unmarshal(raw, &items); err != nil {
		// 缓存内容损坏按未命中处理，同时删掉脏数据。
		c.logger.Warn("热点事件列表缓存内容损坏，按未命中处理",
			zap.String("key", constant.HotThingsListKey),
			zap.Error(err),
		)
		_ = c.redisClient.Del(ctx, constant.HotThingsListKey).Err()
		return nil, myErrors.ErrCacheMiss
	}
	return items, nil
}

func (c *hotThingsCache) SetLatest(ctx context.Context, items []*vo.HotThingItemVO) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("序列化热点事件列表失败: %w", err)
	}

	if err := c.redisClient.Set(ctx, constant.HotThingsListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Error("写入热点事件列表缓存失败",
			zap.String("key", constant.HotThingsListKey),
			zap.Error(err),
		)
		return fmt.Errorf("写入热点事件列表缓存失败: %w", err)
	}
	return nil
}

func (c *hotThingsCache) Invalidate(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, constant.HotThingsListKey).Err(); err != nil {
		c.logger.Error("删除热点事件列表缓存失败",
			zap.String("key", constant.HotThingsListKey),
			zap.Error(err),
		)
		return fmt.Errorf("删除热点事件列表缓存失败: %w", err)
	}
	return nil
}
