package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type UserEmotionRepository interface {
	// Create 插入事件的情感画像（与事件一对一）
	Create(ctx context.Context, db *gorm.DB, emotion *entities.UserEmotion) error

	// GetByThingID 获取指定事件的情感画像
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound
	GetByThingID(ctx context.Context, thingID uint64) (*entities.UserEmotion, error)

	// DeleteByThingID 删除指定事件的情感画像
	// - 原生 SQL: DELETE FROM users_emotion WHERE things_id = ?
	DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error
}

type userEmotionRepository struct {
	db *gorm.DB
}

// NewUserEmotionRepository 创建 UserEmotionRepository 实例
func NewUserEmotionRepository(db *gorm.DB) UserEmotionRepository {
	return &userEmotionRepository{db: db}
}

func (r *userEmotionRepository) Create(ctx context.Context, db *gorm.DB, emotion *entities.UserEmotion) error {
	return db.WithContext(ctx).Create(emotion).Error
}

func (r *userEmotionRepository) GetByThingID(ctx context.Context, thingID uint64) (*entities.UserEmotion, error) {
	var emotion entities.UserEmotion
	err := r.db.WithContext(ctx).Where("things_id = ?", thingID).First(&emotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &emotion, nil
}

func (r *userEmotionRepository) DeleteByThingID(ctx context.Context, db *gorm.DB, thingID uint64) error {
	return db.WithContext(ctx).Where("things_id = ?", thingID).Delete(&entities.UserEmotion{}).Error
}
