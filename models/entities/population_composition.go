package entities

// PopulationComposition 事件的人群构成分组，与 HotThing 一对多。
// - 每个分组（例如某个年龄段/职业群体）携带一个占比值，并拥有若干 PopulationValue 明细
type PopulationComposition struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	ThingID uint64 `gorm:"column:thing_id;not null;index"`

	Name  string  `gorm:"type:varchar(64);not null"`
	Value float64 `gorm:"type:double;not null;default:0"`
}

func (PopulationComposition) TableName() string {
	return "population_composition"
}
