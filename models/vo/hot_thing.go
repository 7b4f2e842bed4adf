package vo

// HotThingItemVO 大屏热点事件列表条目。
// Datatime 字段名沿用大屏前端的历史拼写，格式 "YYYY-MM-DD HH:MM:SS"。
type HotThingItemVO struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url,omitempty"`
	Source   string  `json:"source"`
	Datatime string  `json:"datatime"`
	Heat     float64 `json:"heat"`
}

// WarningLvVO 事件预警等级。
type WarningLvVO struct {
	WarningLv string `json:"warning_lv"`
}

// EmotionVO 事件情感画像，分正负二元与七类离散情绪两组。
type EmotionVO struct {
	EmotionData      EmotionPolarityVO `json:"emotionData"`
	MultiEmotionData MultiEmotionVO    `json:"multiEmotionData"`
}

type EmotionPolarityVO struct {
	Positive int64 `json:"positive"`
	Negative int64 `json:"negative"`
}

type MultiEmotionVO struct {
	Like      int64 `json:"like"`
	Happiness int64 `json:"happiness"`
	Sadness   int64 `json:"sadness"`
	Anger     int64 `json:"anger"`
	Disgust   int64 `json:"disgust"`
	Fear      int64 `json:"fear"`
	Surprise  int64 `json:"surprise"`
}

// MapItemVO 地域分布着色条目，结构与 echarts 地图系列的数据项对齐。
type MapItemVO struct {
	Name      string         `json:"name"`
	ItemStyle MapItemStyleVO `json:"itemStyle"`
}

type MapItemStyleVO struct {
	AreaColor string `json:"areaColor"`
}

// WordCloudVO 词云图，Img 为 base64 编码串。
type WordCloudVO struct {
	Img string `json:"img"`
}

// PlatformMetricsVO 事件的平台级汇总计数。
type PlatformMetricsVO struct {
	TotalPosts        int64 `json:"total_posts"`
	TotalUsers        int64 `json:"total_users"`
	TotalInteractions int64 `json:"total_interactions"`
	PostsWithLocation int64 `json:"posts_with_location"`
}

// HeatVO 事件热度指标。
type HeatVO struct {
	ForwardCount        int64   `json:"forward_count"`
	CommentCount        int64   `json:"comment_count"`
	LikeCount           int64   `json:"like_count"`
	CompositeHotScore   float64 `json:"composite_hot_score"`
	BaseHotValue        float64 `json:"base_hot_value"`
	MediaHotValue       float64 `json:"media_hot_value"`
	InteractionHotValue float64 `json:"interaction_hot_value"`
}

// RadarVO 典型帖子价值观雷达图数据：标题列表 + 每条帖子的十维数值。
type RadarVO struct {
	Titles []string    `json:"titles"`
	Values [][]float64 `json:"values"`
}

// PopulationGroupVO 人群构成分组。
type PopulationGroupVO struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PopulationValueVO 人群构成明细，字段名 name 与前端饼图数据项对齐。
type PopulationValueVO struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SystemInfoVO 系统运行概况。
type SystemInfoVO struct {
	ID             uint64 `json:"id"`
	StartTime      string `json:"start_time"` // "YYYY-MM-DD"
	MonitoredTotal int64  `json:"monitored_total"`
	ExcludedCount  int64  `json:"excluded_count"`
}

// AddHotThingVO 事件入库成功后的响应。
type AddHotThingVO struct {
	ThingID uint64 `json:"thing_id"`
}

// ClearTablesVO 批量清空操作的结果。
type ClearTablesVO struct {
	ClearedTables   []string `json:"cleared_tables"`
	PreservedTables []string `json:"preserved_tables"`
	ClearedCount    int      `json:"tables_cleared_count"`
}
