package vo

// EventResultVO 单个候选事件在管线中的最终状态。
// Status 取值: persisted / aborted / persist_failed。
type EventResultVO struct {
	EventName string `json:"event_name"`
	Status    string `json:"status"`
	ThingID   uint64 `json:"thing_id,omitempty"` // 入库成功时为根记录 ID
	Message   string `json:"message,omitempty"`  // 失败时的简要原因
}

// PipelineRunVO 一次完整管线运行的汇总结果。
type PipelineRunVO struct {
	ClusterFolder string          `json:"cluster_folder"` // 候选事件所在目录
	EventTotal    int             `json:"event_total"`    // 发现的候选事件数
	Persisted     int             `json:"persisted"`      // 成功入库数
	Events        []EventResultVO `json:"events"`
}
