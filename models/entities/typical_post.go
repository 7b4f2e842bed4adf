package entities

import "time"

// TypicalPost 事件的典型帖子，与 HotThing 一对多。
// - 由价值观服务挑选；读接口只取 id 最大的 10 条
// - 每条典型帖子有且仅有一条对应的 TypicalRadar 价值观雷达记录
type TypicalPost struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	ThingID uint64 `gorm:"column:thing_id;not null;index"`

	Title    string    `gorm:"type:varchar(255);not null"`
	URL      string    `gorm:"type:varchar(512);not null"`
	Source   string    `gorm:"type:varchar(64);not null"`
	Datetime time.Time `gorm:"type:datetime;not null"`
	Heat     float64   `gorm:"type:double;not null;default:0"`
}

func (TypicalPost) TableName() string {
	return "typical_posts"
}
