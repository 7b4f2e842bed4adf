package constant

// 服务标识常量，用于链路追踪与日志。
const (
	ServiceName    = "opinion_service"
	ServiceVersion = "1.0.0"
)

// 聚合管线相关常量。
const (
	// ClusterEventsSubDir 是聚类服务在数据源目录下物化候选事件的子目录名。
	// 每个候选事件是其中的一个子目录，内含 <事件名>.csv 与 images/ 目录。
	ClusterEventsSubDir = "cluster_events"

	// AnalyzerDefaultTimeoutSeconds 是调用分析服务的默认超时时间（秒）。
	// 分析调用涉及模型推理，耗时以分钟计，因此默认值设置得很大。
	AnalyzerDefaultTimeoutSeconds = 600

	// CrawlerForwardTimeoutSeconds 是爬虫投递转发算法服务的超时时间（秒）。
	// 该调用在后台任务中执行，不阻塞接口响应，可以使用较短的超时。
	CrawlerForwardTimeoutSeconds = 5

	// TrendDays 是趋势序列的固定长度：近七天帖子数，下标 0-6。
	TrendDays = 7
)

// 预警等级，三级分类，Ⅰ 级最严重。
const (
	WarningLevelSevere   = "Ⅰ"
	WarningLevelModerate = "Ⅱ"
	WarningLevelMinor    = "Ⅲ"
)

// 数据库维护相关常量。
// ReservedTables 中的表为参考/配置表，批量清空操作必须保留它们的数据。
var ReservedTables = []string{"provinces", "system_info"}
