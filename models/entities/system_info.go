package entities

import "time"

// SystemInfo 系统运行概况配置表，批量清空数据时保留。
// - 全表只有一行，大屏顶部展示监测起始时间与监测/排除数量
type SystemInfo struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	StartTime      time.Time `gorm:"type:datetime;not null"`
	MonitoredTotal int64     `gorm:"type:bigint;not null;default:0"`
	ExcludedCount  int64     `gorm:"type:bigint;not null;default:0"`
}

func (SystemInfo) TableName() string {
	return "system_info"
}
