package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type PopulationRepository interface {
	// CreateGroup 插入一个人群构成分组
	// - 输出: 成功后 group.ID 被回填，供标签明细引用
	CreateGroup(ctx context.Context, db *gorm.DB, group *entities.PopulationComposition) error

	// BatchCreateValues 批量插入分组下的标签明细
	BatchCreateValues(ctx context.Context, db *gorm.DB, values []*entities.PopulationValue) error

	// ListGroupsByThingID 获取指定事件的全部人群构成分组
	ListGroupsByThingID(ctx context.Context, thingID uint64) ([]*entities.PopulationComposition, error)

	// ListValuesByPopulationID 获取指定分组下的全部标签明细
	ListValuesByPopulationID(ctx context.Context, populationID uint64) ([]*entities.PopulationValue, error)

	// DeleteValuesByThingID 通过子查询删除指定事件下所有分组的标签明细
	// - 原生 SQL: DELETE FROM population_values WHERE population_id IN
	//   (SELECT id FROM population_composition WHERE thing_id = ?)
	// - 注意事项: 必须先于 DeleteGroupsByThingID 执行
	DeleteValuesByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error

	// DeleteGroupsByThingID 删除指定事件的全部人群构成分组
	DeleteGroupsByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type populationRepository struct {
	db *gorm.DB
}

// NewPopulationRepository 创建 PopulationRepository 实例
func NewPopulationRepository(db *gorm.DB) PopulationRepository {
	return &populationRepository{db: db}
}

func (r *populationRepository) CreateGroup(ctx context.Context, db *gorm.DB, group *entities.PopulationComposition) error {
	return db.WithContext(ctx).Create(group).Error
}

func (r *populationRepository) BatchCreateValues(ctx context.Context, db *gorm.DB, values []*entities.PopulationValue) error {
	if len(values) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&values).Error
}

func (r *populationRepository) ListGroupsByThingID(ctx context.Context, thingID uint64) ([]*entities.PopulationComposition, error) {
	var groups []*entities.PopulationComposition
	err := r.db.WithContext(ctx).
		Where("thing_id = ?", thingID).
		Order("id ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *populationRepository) ListValuesByPopulationID(ctx context.Context, populationID uint64) ([]*entities.PopulationValue, error) {
	var values []*entities.PopulationValue
	err := r.db.WithContext(ctx).
		Where("population_id = ?", populationID).
		Order("id ASC").
		Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *populationRepository) DeleteValuesByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	subQuery := db.WithContext(ctx).
		Model(&entities.PopulationComposition{}).
		Select("id").
		Where("thing_id = ?", thingID)
	return db.WithContext(ctx).Where("population_id IN (?)", subQuery).Delete(&entities.PopulationValue{}).Error
}

func (r *populationRepository) DeleteGroupsByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("thing_id = ?", thingID).Delete(&entities.PopulationComposition{}).Error
}
