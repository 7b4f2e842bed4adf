package dto

// AddHotThingRequest 是一次事件入库请求的完整聚合体。
// - 既是整合器 (service.Reconcile) 的输出，也是 /addHotThing 接口的请求体，
//   两条路径共享同一套结构化校验 (service 层 ValidateAggregate)。
// - 各个区块使用指针类型，以区分「区块缺失」与「区块为零值」：
//   缺失的必需区块会在校验阶段被拒绝，而不是静默按零值入库。
type AddHotThingRequest struct {
	HotThing              *HotThingSection       `json:"hot_thing"`
	UserEmotion           *UserEmotionSection    `json:"user_emotion"`
	Heat                  *HeatSection           `json:"heat"`
	Trend                 []float64              `json:"trend"`
	TypicalPosts          []TypicalPostItem      `json:"typical_posts"`
	PopulationComposition []PopulationGroupItem  `json:"population_composition"`
	Map                   []ProvinceColoringItem `json:"map"`
	WordCloud             string                 `json:"word_cloud"` // 可选，base64 编码的词云图
}

// HotThingSection 事件主记录区块。
// Date 为 "YYYY-MM-DD HH:MM:SS" 格式的字符串，入库前校验并解析。
type HotThingSection struct {
	Title             string  `json:"title"`
	URL               string  `json:"url"`
	Source            string  `json:"source"`
	Date              string  `json:"date"`
	Heat              float64 `json:"heat"`
	WarningLv         string  `json:"warning_lv"`
	TotalPosts        float64 `json:"total_posts"`
	TotalUsers        float64 `json:"total_users"`
	TotalInteractions float64 `json:"total_interactions"`
	PostsWithLocation float64 `json:"posts_with_location"`
}

// UserEmotionSection 情感画像区块，九个计数全部必填。
type UserEmotionSection struct {
	Positive  float64 `json:"positive"`
	Negative  float64 `json:"negative"`
	Like      float64 `json:"like"`
	Happiness float64 `json:"happiness"`
	Sadness   float64 `json:"sadness"`
	Anger     float64 `json:"anger"`
	Disgust   float64 `json:"disgust"`
	Fear      float64 `json:"fear"`
	Surprise  float64 `json:"surprise"`
}

// HeatSection 热度指标区块。
type HeatSection struct {
	ForwardCount        float64 `json:"forward_count"`
	CommentCount        float64 `json:"comment_count"`
	LikeCount           float64 `json:"like_count"`
	CompositeHotScore   float64 `json:"composite_hot_score"`
	BaseHotValue        float64 `json:"base_hot_value"`
	MediaHotValue       float64 `json:"media_hot_value"`
	InteractionHotValue float64 `json:"interaction_hot_value"`
}

// TypicalPostItem 典型帖子条目，十个价值观维度与帖子本身一起入库。
type TypicalPostItem struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Source   string  `json:"source"`
	Datetime string  `json:"datetime"` // "YYYY-MM-DD HH:MM:SS"
	Heat     float64 `json:"heat"`

	Autonomy     float64 `json:"autonomy"`
	Stimulus     float64 `json:"stimulus"`
	Fraternity   float64 `json:"fraternity"`
	Friendliness float64 `json:"friendliness"`
	Compliance   float64 `json:"compliance"`
	Tradition    float64 `json:"tradition"`
	Security     float64 `json:"security"`
	Authority    float64 `json:"authority"`
	Achievement  float64 `json:"achievement"`
	Hedonism     float64 `json:"hedonism"`
}

// PopulationGroupItem 人群构成分组及其标签明细。
type PopulationGroupItem struct {
	Name             string                `json:"name"`
	Value            float64               `json:"value"`
	PopulationValues []PopulationValuePair `json:"population_values"`
}

// PopulationValuePair 人群构成明细的标签/数值对。
// 注意字段名是 label：整合阶段已经把价值观服务返回的 name 字段重命名过。
type PopulationValuePair struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ProvinceColoringItem 地域分布着色条目，覆盖全部已知省份。
type ProvinceColoringItem struct {
	ProvincePID  string `json:"province_pid"`
	ProvinceName string `json:"province_name"`
	Color        string `json:"color"`
}
