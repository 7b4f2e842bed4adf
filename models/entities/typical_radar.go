package entities

// TypicalRadar 典型帖子的十维价值观评分，与 TypicalPost 一对一。
// - 外键指向 typical_posts.id；帖子不存在时雷达记录也不允许存在
type TypicalRadar struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	TypicalID uint64 `gorm:"column:typical_id;not null;index"`

	Autonomy     float64 `gorm:"type:double;not null;default:0"`
	Stimulus     float64 `gorm:"type:double;not null;default:0"`
	Fraternity   float64 `gorm:"type:double;not null;default:0"`
	Friendliness float64 `gorm:"type:double;not null;default:0"`
	Compliance   float64 `gorm:"type:double;not null;default:0"`
	Tradition    float64 `gorm:"type:double;not null;default:0"`
	Security     float64 `gorm:"type:double;not null;default:0"`
	Authority    float64 `gorm:"type:double;not null;default:0"`
	Achievement  float64 `gorm:"type:double;not null;default:0"`
	Hedonism     float64 `gorm:"type:double;not null;default:0"`
}

func (TypicalRadar) TableName() string {
	return "typical_radar"
}
