package config

// PipelineConfig 是聚合管线的默认调参。
// - 这些值对应聚类服务请求体中的可调字段，运行管线的请求里未显式给出时采用这里的默认值。
type PipelineConfig struct {
	UseSaved           bool   `mapstructure:"useSaved" json:"useSaved" yaml:"useSaved"`                                     // 是否复用已缓存的聚类结果
	Method             string `mapstructure:"method" json:"method" yaml:"method"`                                          // 聚类方法，默认 "traditional"
	MinPosts           int    `mapstructure:"minPosts" json:"minPosts" yaml:"minPosts"`                                    // 每个簇的最小帖子数
	SourceSite         string `mapstructure:"sourceSite" json:"sourceSite" yaml:"sourceSite"`                              // 数据来源平台，例如 "新浪微博"
	UsePrior           bool   `mapstructure:"usePrior" json:"usePrior" yaml:"usePrior"`                                    // 是否使用先验
	MaxSamplesPerEvent int    `mapstructure:"maxSamplesPerEvent" json:"maxSamplesPerEvent" yaml:"maxSamplesPerEvent"`      // 单事件采样上限
	MinSamplesPerEvent int    `mapstructure:"minSamplesPerEvent" json:"minSamplesPerEvent" yaml:"minSamplesPerEvent"`      // 单事件采样下限
	ArchiveArtifacts   bool   `mapstructure:"archiveArtifacts" json:"archiveArtifacts" yaml:"archiveArtifacts"`            // 入库成功后是否归档事件 CSV 到 COS
}
