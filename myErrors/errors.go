package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrClusterEmpty 表示聚类服务未产出任何簇，整次管线运行按失败处理
var ErrClusterEmpty = errors.New("cluster: no clusters produced")

// ErrAggregateInvalid 表示事件聚合体未通过结构化校验，
// 首个违规项的描述通过 fmt.Errorf("%w: ...") 包装在外层错误信息中
var ErrAggregateInvalid = errors.New("aggregate: validation failed")
