package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type TrendRepository interface {
	// BatchCreate 批量插入事件的七天发帖量序列
	// - 注意事项: 调用方保证切片已按 Sort 1-7 补齐，这里不做二次校验
	BatchCreate(ctx context.Context, db *gorm.DB, trends []*entities.Trend) error

	// ListByThingID 获取指定事件的发帖量序列，按天序升序
	// - 原生 SQL: SELECT * FROM trend WHERE thing_id = ? ORDER BY sort ASC
	ListByThingID(ctx context.Context, thingID uint64) ([]*entities.Trend, error)

	// DeleteByThingID 删除指定事件的发帖量序列
	DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type trendRepository struct {
	db *gorm.DB
}

// NewTrendRepository 创建 TrendRepository 实例
func NewTrendRepository(db *gorm.DB) TrendRepository {
	return &trendRepository{db: db}
}

func (r *trendRepository) BatchCreate(ctx context.Context, db *gorm.DB, trends []*entities.Trend) error {
	if len(trends) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&trends).Error
}

func (r *trendRepository) ListByThingID(ctx context.Context, thingID uint64) ([]*entities.Trend, error) {
	var trends []*entities.Trend
	err := r.db.WithContext(ctx).
		Where("thing_id = ?", thingID).
		Order("sort ASC").
		Find(&trends).Error
	if err != nil {
		return nil, err
	}
	return trends, nil
}

func (r *trendRepository) DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("thing_id = ?", thingID).Delete(&entities.Trend{}).Error
}
