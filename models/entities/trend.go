package entities

// Trend 事件近七天的发帖量序列，与 HotThing 一对多且固定为 7 行。
// - Sort 为天序 1-7；整合阶段对缺失的天补 0，保证序列总是完整的
type Trend struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	ThingID uint64 `gorm:"column:thing_id;not null;index"`
	Sort    int    `gorm:"type:int;not null"`
	Value   int64  `gorm:"type:bigint;not null;default:0"`
}

func (Trend) TableName() string {
	return "trend"
}
