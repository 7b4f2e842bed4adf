package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Xushengqwer/opinion_service/constant"
)

type MaintenanceRepository interface {
	// ListBusinessTables 从 information_schema 动态发现当前库的业务表
	// - 原生 SQL: SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES
	//   WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE'
	//   AND TABLE_NAME NOT IN (保留表)
	// - 动态发现而非硬编码表名，新增业务表后无需改动这里
	ListBusinessTables(ctx context.Context) ([]string, error)

	// ClearTables 在单个事务内清空给定的表
	// - 清空前禁用外键检查，结束时无条件恢复（包括出错路径）
	// - 单表优先 TRUNCATE，失败则退回 DELETE；两者都失败时跳过该表继续，
	//   不让单表失败中断整个清空
	// - 输出: 成功清空的表名列表、跳过的表名列表
	ClearTables(ctx context.Context, tables []string) (cleared []string, skipped []string, err error)
}

type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository 创建 MaintenanceRepository 实例
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) ListBusinessTables(ctx context.Context) ([]string, error) {
	query := `SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = DATABASE()
		AND TABLE_TYPE = 'BASE TABLE'
		AND TABLE_NAME NOT IN (?)`

	var tables []string
	err := r.db.WithContext(ctx).Raw(query, constant.ReservedTables).Scan(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("发现业务表失败: %w", err)
	}
	return tables, nil
}

func (r *maintenanceRepository) ClearTables(ctx context.Context, tables []string) (cleared []string, skipped []string, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if execErr := tx.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; execErr != nil {
			return fmt.Errorf("禁用外键检查失败: %w", execErr)
		}
		// 无论下面发生什么，外键检查都要恢复。
		defer tx.Exec("SET FOREIGN_KEY_CHECKS = 1")

		for _, table := range tables {
			if truncErr := tx.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error; truncErr == nil {
				cleared = append(cleared, table)
				continue
			}
			// TRUNCATE 是 DDL，权限或锁都可能让它失败，退回 DELETE 再试。
			if delErr := tx.Exec(fmt.Sprintf("DELETE FROM `%s`", table)).Error; delErr == nil {
				cleared = append(cleared, table)
				continue
			}
			skipped = append(skipped, table)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return cleared, skipped, nil
}
