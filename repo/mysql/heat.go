package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type HeatRepository interface {
	// Create 插入事件的热度指标（与事件一对一）
	Create(ctx context.Context, db *gorm.DB, heat *entities.Heat) error

	// GetByThingID 获取指定事件的热度指标
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound
	GetByThingID(ctx context.Context, thingID uint64) (*entities.Heat, error)

	// DeleteByThingID 删除指定事件的热度指标
	DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type heatRepository struct {
	db *gorm.DB
}

// NewHeatRepository 创建 HeatRepository 实例
func NewHeatRepository(db *gorm.DB) HeatRepository {
	return &heatRepository{db: db}
}

func (r *heatRepository) Create(ctx context.Context, db *gorm.DB, heat *entities.Heat) error {
	return db.WithContext(ctx).Create(heat).Error
}

func (r *heatRepository) GetByThingID(ctx context.Context, thingID uint64) (*entities.Heat, error) {
	var heat entities.Heat
	err := r.db.WithContext(ctx).Where("thing_id = ?", thingID).First(&heat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &heat, nil
}

func (r *heatRepository) DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("thing_id = ?", thingID).Delete(&entities.Heat{}).Error
}
