package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type WordCloudRepository interface {
	// Create 插入事件词云图
	// - 注意事项: 基础信息服务未产出词云时调用方直接跳过，不插入空行
	Create(ctx context.Context, db *gorm.DB, wordCloud *entities.WordCloud) error

	// GetByThingID 获取指定事件的词云图
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound
	GetByThingID(ctx context.Context, thingID uint64) (*entities.WordCloud, error)

	// DeleteByThingID 删除指定事件的词云图
	DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type wordCloudRepository struct {
	db *gorm.DB
}

// NewWordCloudRepository 创建 WordCloudRepository 实例
func NewWordCloudRepository(db *gorm.DB) WordCloudRepository {
	return &wordCloudRepository{db: db}
}

func (r *wordCloudRepository) Create(ctx context.Context, db *gorm.DB, wordCloud *entities.WordCloud) error {
	return db.WithContext(ctx).Create(wordCloud).Error
}

func (r *wordCloudRepository) GetByThingID(ctx context.Context, thingID uint64) (*entities.WordCloud, error) {
	var wordCloud entities.WordCloud
	err := r.db.WithContext(ctx).Where("thing_id = ?", thingID).First(&wordCloud).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &wordCloud, nil
}

func (r *wordCloudRepository) DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("thing_id = ?", thingID).Delete(&entities.WordCloud{}).Error
}
