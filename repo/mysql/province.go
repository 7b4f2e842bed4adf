package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type ProvinceRepository interface {
	// BatchUpsert 批量写入省份参考行，主键冲突时忽略
	// - 使用场景: 启动迁移时按行政区划代码表播种，幂等
	BatchUpsert(ctx context.Context, provinces []*entities.Province) error
}

type provinceRepository struct {
	db *gorm.DB
}

// NewProvinceRepository 创建 ProvinceRepository 实例
func NewProvinceRepository(db *gorm.DB) ProvinceRepository {
	return &provinceRepository{db: db}
}

func (r *provinceRepository) BatchUpsert(ctx context.Context, provinces []*entities.Province) error {
	if len(provinces) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&provinces).Error
}
