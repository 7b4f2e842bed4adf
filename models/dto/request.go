package dto

import "encoding/json"

// IDRequest 按事件 ID 查询/删除的通用请求体。
// 大屏前端的历史接口均以 POST + JSON body 传递 id，保持兼容。
type IDRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

// KeywordRequest 标题关键词搜索请求体。
type KeywordRequest struct {
	Keyword string `json:"keyword" binding:"required,max=64"`
}

// CrawlerSubmitRequest 爬虫投递的原始事件数据。
// - title 与 data 为必填；data 的内部结构由下游算法服务约定，
//   本服务原样转发，不做解析。
type CrawlerSubmitRequest struct {
	Title string          `json:"title" binding:"required"`
	Data  json.RawMessage `json:"data" binding:"required"`
}
