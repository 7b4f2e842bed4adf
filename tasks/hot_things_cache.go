// File: tasks/hot_things_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/vo"
	"github.com/Xushengqwer/opinion_service/repo/mysql"
	"github.com/Xushengqwer/opinion_service/repo/redis"
)

// HotThingsCacheTask 负责定时刷新 Redis 中的大屏热点事件列表缓存。
// 事件创建/删除时缓存会被主动失效，这个任务兜底：即使失效通知丢失，
// 缓存与数据库的偏差也不会超过一个刷新周期。
type HotThingsCacheTask struct {
	hotThingRepo mysql.HotThingRepository
	cache        redis.HotThingsCache
	cron         *cron.Cron
	logger       *core.ZapLogger
}

// NewHotThingsCacheTask 初始化并启动列表缓存的定时刷新任务。
func NewHotThingsCacheTask(hotThingRepo mysql.HotThingRepository, cache redis.HotThingsCache, logger *core.ZapLogger) *HotThingsCacheTask {
	task := &HotThingsCacheTask{
		hotThingRepo: hotThingRepo,
		cache:        cache,
		cron:         cron.New(),
		logger:       logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotThingsCacheTask) startCronJob() {
	schedule := constant.HotThingsCacheCronSpec
	t.logger.Info("准备启动热点事件列表缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		// 单次刷新只有一条 LIMIT 4 查询加一次 Redis 写入，1 分钟超时绰绰有余。
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.refresh(ctx)

		t.logger.Info("热点事件列表缓存刷新完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加热点事件列表缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热点事件列表缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refresh 直读数据库重建列表缓存，不经过读路径的回源逻辑。
func (t *HotThingsCacheTask) refresh(ctx context.Context) {
	things, err := t.hotThingRepo.ListLatest(ctx, constant.HotThingsListSize)
	if err != nil {
		t.logger.Error("刷新列表缓存失败：读取数据库出错", zap.Error(err))
		return
	}

	items := make([]*vo.HotThingItemVO, 0, len(things))
	for _, thing := range things {
		items = append(items, &vo.HotThingItemVO{
			ID:       thing.ID,
			Title:    thing.Title,
			URL:      thing.URL,
			Source:   thing.Source,
			Datatime: thing.Date.Format("2006-01-02 15:04:05"),
			Heat:     thing.Heat,
		})
	}

	if err := t.cache.SetLatest(ctx, items); err != nil {
		t.logger.Error("刷新列表缓存失败：写入 Redis 出错", zap.Error(err))
		return
	}
}

// Stop 优雅地停止 cron 调度器，返回的 context 在执行中的任务结束后关闭。
func (t *HotThingsCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热点事件列表缓存刷新定时任务...")
	return t.cron.Stop()
}
