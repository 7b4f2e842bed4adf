package entities

// WordCloud 事件词云图，与 HotThing 零或一对一。
// - Img 存 base64 编码后的图片内容；基础信息服务未产出词云时整行缺省
type WordCloud struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	ThingID uint64 `gorm:"column:thing_id;not null;index"`

	Img string `gorm:"type:longtext;not null"`
}

func (WordCloud) TableName() string {
	return "word_cloud"
}
