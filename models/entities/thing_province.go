package entities

// ThingProvince 事件的地域分布着色，与 HotThing 一对多。
// - 整合阶段会为 provinces 参考表中的每个省份生成一行，没有数据的省份着中性灰
type ThingProvince struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	ThingID uint64 `gorm:"column:thing_id;not null;index"`

	ProvincePID string `gorm:"column:province_pid;type:char(6);not null"` // 行政区划代码，关联 provinces.pid
	Color       string `gorm:"type:char(7);not null"`                     // "#RRGGBB"
}

func (ThingProvince) TableName() string {
	return "thing_provinces"
}
