package entities

import "time"

// HotThing 热点事件主实体，是整个事件聚合子树的根。
// - 使用场景: 一条 HotThing 对应聚类产出的一个真实世界事件，携带事件级汇总指标
// - 表名: hot_things
// - 生命周期: 由聚合管线（或爬虫投递路径）一次性整树创建；没有更新操作，
//   修正数据的方式是删除后重建；删除时整棵从属子树级联删除
type HotThing struct {
	// 主键，由数据库自增分配；所有从属表通过 thing_id 引用它
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 事件标题，来源于情感服务回显的事件名
	Title string `gorm:"type:varchar(255);not null"`

	// 最早帖子的链接与来源平台
	URL    string `gorm:"type:varchar(512);not null"`
	Source string `gorm:"type:varchar(64);not null"`

	// 最早帖子的发布时间，即事件的起始时间
	Date time.Time `gorm:"type:datetime;not null"`

	// 热度分数，来源于热度服务的 raw_score
	Heat float64 `gorm:"type:double;not null"`

	// 预警等级: Ⅰ(严重) / Ⅱ(中等) / Ⅲ(轻微)
	WarningLv string `gorm:"type:varchar(8);not null"`

	// 事件级汇总计数
	TotalPosts        int64 `gorm:"type:bigint;not null;default:0"`
	TotalUsers        int64 `gorm:"type:bigint;not null;default:0"`
	TotalInteractions int64 `gorm:"type:bigint;not null;default:0"`
	PostsWithLocation int64 `gorm:"type:bigint;not null;default:0"`
}

// TableName 指定表名，与大屏前端约定保持一致。
func (HotThing) TableName() string {
	return "hot_things"
}
