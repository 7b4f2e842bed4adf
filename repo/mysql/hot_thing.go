package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

type HotThingRepository interface {
	// Create 插入热点事件主记录
	// - 意图: 事件聚合子树的根记录，必须最先插入，拿到自增 ID 后其余从属表才能引用
	// - 输入: ctx, db（事务句柄）, hotThing
	// - 输出: error；成功后 hotThing.ID 被回填
	Create(ctx context.Context, db *gorm.DB, hotThing *entities.HotThing) error

	// GetByID 根据 ID 获取热点事件
	// - 注意事项: 记录不存在时返回 commonerrors.ErrRepoNotFound
	GetByID(ctx context.Context, id uint64) (*entities.HotThing, error)

	// ListLatest 获取最新的 limit 条热点事件
	// - 原生 SQL: SELECT * FROM hot_things ORDER BY id DESC LIMIT ?
	// - 大屏列表固定取 4 条，id 越大表示入库越晚
	ListLatest(ctx context.Context, limit int) ([]*entities.HotThing, error)

	// SearchByTitle 按标题模糊搜索热点事件
	// - 原生 SQL: SELECT * FROM hot_things WHERE title LIKE %?% ORDER BY id DESC LIMIT ?
	SearchByTitle(ctx context.Context, keyword string, limit int) ([]*entities.HotThing, error)

	// Delete 硬删除热点事件主记录
	// - 注意事项: 必须在从属子树全部删除之后、同一事务的最后一步执行
	Delete(ctx context.Context, db *gorm.DB, id uint64) error
}

type hotThingRepository struct {
	db *gorm.DB
}

// NewHotThingRepository 创建 HotThingRepository 实例
func NewHotThingRepository(db *gorm.DB) HotThingRepository {
	return &hotThingRepository{db: db}
}

func (r *hotThingRepository) Create(ctx context.Context, db *gorm.DB, hotThing *entities.HotThing) error {
	return db.WithContext(ctx).Create(hotThing).Error
}

func (r *hotThingRepository) GetByID(ctx context.Context, id uint64) (*entities.HotThing, error) {
	var hotThing entities.HotThing
	err := r.db.WithContext(ctx).First(&hotThing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}
	return &hotThing, nil
}

func (r *hotThingRepository) ListLatest(ctx context.Context, limit int) ([]*entities.HotThing, error) {
	var things []*entities.HotThing
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&things).Error
	if err != nil {
		return nil, err
	}
	return things, nil
}

func (r *hotThingRepository) SearchByTitle(ctx context.Context, keyword string, limit int) ([]*entities.HotThing, error) {
	var things []*entities.HotThing
	err := r.db.WithContext(ctx).
		Where("title LIKE ?", "%"+keyword+"%").
		Order("id DESC").
		Limit(limit).
		Find(&things).Error
	if err != nil {
		return nil, err
	}
	return things, nil
}

func (r *hotThingRepository) Delete(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Delete(&entities.HotThing{}, id).Error
}
