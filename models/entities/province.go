package entities

// Province 省份参考表，批量清空数据时保留。
// - 行数固定，由 constant.ProvinceIDTable 在启动迁移时播种
type Province struct {
	PID  string `gorm:"column:pid;type:char(6);primaryKey"`
	Name string `gorm:"type:varchar(16);not null"`
}

func (Province) TableName() string {
	return "provinces"
}
