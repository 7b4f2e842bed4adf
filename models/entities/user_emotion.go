package entities

// UserEmotion 事件的情感画像，与 HotThing 一对一。
// - 正/负面计数 + 七类离散情绪计数，全部来自情感服务
// - 表名: users_emotion（沿用大屏前端的历史表名）
type UserEmotion struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	ThingsID uint64 `gorm:"column:things_id;not null;index"` // 历史列名为 things_id，保持不变

	Positive  int64 `gorm:"type:bigint;not null;default:0"`
	Negative  int64 `gorm:"type:bigint;not null;default:0"`
	Like      int64 `gorm:"column:like;type:bigint;not null;default:0"` // like 是保留字，GORM 会自动加引号
	Happiness int64 `gorm:"type:bigint;not null;default:0"`
	Sadness   int64 `gorm:"type:bigint;not null;default:0"`
	Anger     int64 `gorm:"type:bigint;not null;default:0"`
	Disgust   int64 `gorm:"type:bigint;not null;default:0"`
	Fear      int64 `gorm:"type:bigint;not null;default:0"`
	Surprise  int64 `gorm:"type:bigint;not null;default:0"`
}

func (UserEmotion) TableName() string {
	return "users_emotion"
}
