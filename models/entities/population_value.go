package entities

// PopulationValue 人群构成分组下的标签明细，两级从属：
// PopulationValue -> PopulationComposition -> HotThing。
// 分组不存在时明细不允许存在。
type PopulationValue struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	PopulationID uint64 `gorm:"column:population_id;not null;index"`

	Label string  `gorm:"type:varchar(64);not null"`
	Value float64 `gorm:"type:double;not null;default:0"`
}

func (PopulationValue) TableName() string {
	return "population_values"
}
