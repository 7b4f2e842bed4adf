package dto

// RunPipelineRequest 触发一次完整聚合管线的请求体。
// - data_source_path 指向分析集群可访问的数据源目录，必填。
// - 其余为聚类调参，未提供时采用 PipelineConfig 中的默认值；
//   指针类型用于区分「未提供」与「显式置零/置假」。
type RunPipelineRequest struct {
	DataSourcePath     string  `json:"data_source_path" binding:"required"`
	UseSaved           *bool   `json:"use_saved"`
	Method             *string `json:"method"`
	MinPosts           *int    `json:"min_posts"`
	SourceSite         *string `json:"source_site"`
	UsePrior           *bool   `json:"use_prior"`
	MaxSamplesPerEvent *int    `json:"max_samples_per_event"`
	MinSamplesPerEvent *int    `json:"min_samples_per_event"`
}

// ClusterParams 是实际发往聚类服务的完整调参（默认值已填充）。
type ClusterParams struct {
	DataSourcePath     string
	UseSaved           bool
	Method             string
	MinPosts           int
	SourceSite         string
	UsePrior           bool
	MaxSamplesPerEvent int
	MinSamplesPerEvent int
}
