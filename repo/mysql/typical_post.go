package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

// TypicalRadarRow 是典型帖子与其价值观雷达的联查结果行。
type TypicalRadarRow struct {
	Title        string
	Autonomy     float64
	Stimulus     float64
	Fraternity   float64
	Friendliness float64
	Compliance   float64
	Tradition    float64
	Security     float64
	Authority    float64
	Achievement  float64
	Hedonism     float64
}

type TypicalPostRepository interface {
	// Create 插入一条典型帖子
	// - 输出: 成功后 post.ID 被回填，供雷达记录引用
	Create(ctx context.Context, db *gorm.DB, post *entities.TypicalPost) error

	// CreateRadar 插入典型帖子的价值观雷达记录（与帖子一对一）
	CreateRadar(ctx context.Context, db *gorm.DB, radar *entities.TypicalRadar) error

	// ListByThingID 获取指定事件的典型帖子，id 倒序取最新 limit 条
	ListByThingID(ctx context.Context, thingID uint64, limit int) ([]*entities.TypicalPost, error)

	// ListRadarByThingID 联查典型帖子标题与雷达十维数值
	// - 原生 SQL: SELECT tp.title, tr.* FROM typical_posts tp
	//   JOIN typical_radar tr ON tr.typical_id = tp.id
	//   WHERE tp.thing_id = ? ORDER BY tp.id DESC LIMIT ?
	ListRadarByThingID(ctx context.Context, thingID uint64, limit int) ([]*TypicalRadarRow, error)

	// DeleteRadarByThingID 通过子查询删除指定事件下所有典型帖子的雷达记录
	// - 原生 SQL: DELETE FROM typical_radar WHERE typical_id IN
	//   (SELECT id FROM typical_posts WHERE thing_id = ?)
	// - 注意事项: 必须先于 DeleteByThingID 执行，否则子查询失去目标
	DeleteRadarByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error

	// DeleteByThingID 删除指定事件的全部典型帖子
	DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type typicalPostRepository struct {
	db *gorm.DB
}

// NewTypicalPostRepository 创建 TypicalPostRepository 实例
func NewTypicalPostRepository(db *gorm.DB) TypicalPostRepository {
	return &typicalPostRepository{db: db}
}

func (r *typicalPostRepository) Create(ctx context.Context, db *gorm.DB, post *entities.TypicalPost) error {
	return db.WithContext(ctx).Create(post).Error
}

func (r *typicalPostRepository) CreateRadar(ctx context.Context, db *gorm.DB, radar *entities.TypicalRadar) error {
	return db.WithContext(ctx).Create(radar).Error
}

func (r *typicalPostRepository) ListByThingID(ctx context.Context, thingID uint64, limit int) ([]*entities.TypicalPost, error) {
	var posts []*entities.TypicalPost
	err := r.db.WithContext(ctx).
		Where("thing_id = ?", thingID).
		Order("id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *typicalPostRepository) ListRadarByThingID(ctx context.Context, thingID uint64, limit int) ([]*TypicalRadarRow, error) {
	var rows []*TypicalRadarRow
	err := r.db.WithContext(ctx).
		Table("typical_posts").
		Select("typical_posts.title, typical_radar.autonomy, typical_radar.stimulus, typical_radar.fraternity, typical_radar.friendliness, typical_radar.compliance, typical_radar.tradition, typical_radar.security, typical_radar.authority, typical_radar.achievement, typical_radar.hedonism").
		Joins("JOIN typical_radar ON typical_radar.typical_id = typical_posts.id").
		Where("typical_posts.thing_id = ?", thingID).
		Order("typical_posts.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *typicalPostRepository) DeleteRadarByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	subQuery := db.WithContext(ctx).
		Model(&entities.TypicalPost{}).
		Select("id").
		Where("thing_id = ?", thingID)
	return db.WithContext(ctx).Where("typical_id IN (?)", subQuery).Delete(&entities.TypicalRadar{}).Error
}

func (r *typicalPostRepository) DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("thing_id = ?", thingID).Delete(&entities.TypicalPost{}).Error
}
