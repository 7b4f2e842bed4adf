package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

// ProvinceColorRow 是地域分布与省份参考表的联查结果行。
type ProvinceColorRow struct {
	Name  string
	Color string
}

type ThingProvinceRepository interface {
	// BatchCreate 批量插入事件的地域分布着色（每省一行）
	BatchCreate(ctx context.Context, db *gorm.DB, rows []*entities.ThingProvince) error

	// ListColorsByThingID 联查省份名称与着色
	// - 原生 SQL: SELECT p.name, tp.color FROM thing_provinces tp
	//   JOIN provinces p ON p.pid = tp.province_pid WHERE tp.thing_id = ?
	ListColorsByThingID(ctx context.Context, thingID uint64) ([]*ProvinceColorRow, error)

	// DeleteByThingID 删除指定事件的地域分布着色
	DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type thingProvinceRepository struct {
	db *gorm.DB
}

// NewThingProvinceRepository 创建 ThingProvinceRepository 实例
func NewThingProvinceRepository(db *gorm.DB) ThingProvinceRepository {
	return &thingProvinceRepository{db: db}
}

func (r *thingProvinceRepository) BatchCreate(ctx context.Context, db *gorm.DB, rows []*entities.ThingProvince) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&rows).Error
}

func (r *thingProvinceRepository) ListColorsByThingID(ctx context.Context, thingID uint64) ([]*ProvinceColorRow, error) {
	var rows []*ProvinceColorRow
	err := r.db.WithContext(ctx).
		Table("thing_provinces").
		Select("provinces.name, thing_provinces.color").
		Joins("JOIN provinces ON provinces.pid = thing_provinces.province_pid").
		Where("thing_provinces.thing_id = ?", thingID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *thingProvinceRepository) DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("thing_id = ?", thingID).Delete(&entities.ThingProvince{}).Error
}
