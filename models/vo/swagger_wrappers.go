package vo

// 本文件中的结构体仅用于生成 Swagger 文档，
// 让每个接口的响应示例带上具体的 data 类型，代码中不直接使用。

// BaseResponseWrapper 通用响应结构 (data 为空)
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}

// HotThingListResponseWrapper 热点事件列表响应
type HotThingListResponseWrapper struct {
	BaseResponseWrapper
	Data []*HotThingItemVO `json:"data"`
}

// AddHotThingResponseWrapper 事件入库响应
type AddHotThingResponseWrapper struct {
	BaseResponseWrapper
	Data AddHotThingVO `json:"data"`
}

// EmotionResponseWrapper 情感画像响应
type EmotionResponseWrapper struct {
	BaseResponseWrapper
	Data EmotionVO `json:"data"`
}

// MapDataResponseWrapper 地域分布响应
type MapDataResponseWrapper struct {
	BaseResponseWrapper
	Data []*MapItemVO `json:"data"`
}

// RadarResponseWrapper 价值观雷达响应
type RadarResponseWrapper struct {
	BaseResponseWrapper
	Data RadarVO `json:"data"`
}

// ClearTablesResponseWrapper 批量清空响应
type ClearTablesResponseWrapper struct {
	BaseResponseWrapper
	Data ClearTablesVO `json:"data"`
}

// PipelineRunResponseWrapper 管线运行响应
type PipelineRunResponseWrapper struct {
	BaseResponseWrapper
	Data PipelineRunVO `json:"data"`
}
