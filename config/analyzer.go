package config

// AnalyzerConfig 包含各个分析服务（外部协作方）的调用配置。
// - 六个服务各自独立部署、独立版本化，本服务只约定它们的请求/响应契约。
// - 地址均为完整的 HTTP Endpoint，例如 "http://localhost:8001/emotion"。
type AnalyzerConfig struct {
	EmotionURL  string `mapstructure:"emotionUrl" json:"emotionUrl" yaml:"emotionUrl"`    // 情感预测服务
	YuqingURL   string `mapstructure:"yuqingUrl" json:"yuqingUrl" yaml:"yuqingUrl"`       // 舆情（预警等级）预测服务
	HotURL      string `mapstructure:"hotUrl" json:"hotUrl" yaml:"hotUrl"`                // 热度预测服务
	ClusterURL  string `mapstructure:"clusterUrl" json:"clusterUrl" yaml:"clusterUrl"`    // 聚类服务
	ValueURL    string `mapstructure:"valueUrl" json:"valueUrl" yaml:"valueUrl"`          // 价值观预测服务
	BaseinfoURL string `mapstructure:"baseinfoUrl" json:"baseinfoUrl" yaml:"baseinfoUrl"` // 基础信息统计服务

	// AlgorithmURL 是爬虫投递接口在后台转发原始数据的算法服务入口。
	AlgorithmURL string `mapstructure:"algorithmUrl" json:"algorithmUrl" yaml:"algorithmUrl"`

	// TimeoutSeconds 是单次分析调用的超时（秒）。
	// 为 0 时使用 constant.AnalyzerDefaultTimeoutSeconds。
	// 分析调用是长耗时的模型推理，超时应以分钟计。
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}
