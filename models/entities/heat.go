package entities

// Heat 事件的热度指标，与 HotThing 一对一。
// - 转/评/赞计数来自热度服务的 event_statistics；四个热度值均派生自 raw_score
type Heat struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	ThingID uint64 `gorm:"column:thing_id;not null;index"`

	ForwardCount int64 `gorm:"type:bigint;not null;default:0"`
	CommentCount int64 `gorm:"type:bigint;not null;default:0"`
	LikeCount    int64 `gorm:"type:bigint;not null;default:0"`

	CompositeHotScore   float64 `gorm:"type:double;not null;default:0"`
	BaseHotValue        float64 `gorm:"type:double;not null;default:0"`
	MediaHotValue       float64 `gorm:"type:double;not null;default:0"`
	InteractionHotValue float64 `gorm:"type:double;not null;default:0"`
}

func (Heat) TableName() string {
	return "heat"
}
