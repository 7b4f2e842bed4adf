package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type SystemInfoRepository interface {
	// Get 获取系统运行概况（全表唯一一行）
	// - 注意事项: 不存在时返回 commonerrors.ErrRepoNotFound
	Get(ctx context.Context) (*entities.SystemInfo, error)

	// Create 插入系统运行概况行，仅在启动迁移发现表为空时调用
	Create(ctx context.Context, info *entities.SystemInfo) error

	// Count 统计行数，迁移播种时用来判断是否已初始化
	Count(ctx context.Context) (int64, error)
}

type systemInfoRepository struct {
	db *gorm.DB
}

// NewSystemInfoRepository 创建 SystemInfoRepository 实例
func NewSystemInfoRepository(db *gorm.DB) SystemInfoRepository {
	return &systemInfoRepository{db: db}
}

func (r *systemInfoRepository) Get(ctx context.Context) (*entities.SystemInfo, error) {
	var info entities.SystemInfo
	err := r.db.WithContext(ctx).Order("id ASC").First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &info, nil
}

func (r *systemInfoRepository) Create(ctx context.Context, info *entities.SystemInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *systemInfoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.SystemInfo{}).Count(&count).Error
	return count, err
}
