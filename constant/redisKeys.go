package constant

// Redis Key 相关常量 (导出)
const (
	// HotThingsListKey 是大屏首页热点事件列表的缓存 Key。
	// 存储最新 4 条热点事件的 VO 列表 (JSON 序列化)。
	// Redis 类型: String
	HotThingsListKey = "hot_things:latest"

	// HotThingsListSize 是热点事件列表缓存的条目数量，与大屏展示位一致。
	HotThingsListSize = 4

	// HotThingsCacheCronSpec 是热点事件列表缓存刷新任务的 cron 表达式。
	// 每 5 分钟刷新一次；事件创建/删除/清库时还会主动失效缓存。
	HotThingsCacheCronSpec = "*/5 * * * *"
)
