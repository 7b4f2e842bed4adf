// dependencies/mysql.go
package dependencies

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/entities"
	repoMysql "github.com/Xushengqwer/opinion_service/repo/mysql"
)

// InitMySQL 初始化 MySQL 连接，并配置读写分离 (如果配置了从库)。
// 迁移完成后会播种两张参考表：provinces 按行政区划代码表补齐，
// system_info 保证存在唯一一行。两者都是幂等操作，重启不会重复写入。
func InitMySQL(cfg *appConfig.OpinionConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	gormLogCfg := cfg.GormLogConfig

	// --- 主库连接 ---
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysql.write.dsn) 未配置")
	}
	gormLogger := core.NewGormLogger(logger, gormLogCfg)
	gormConfig := &gorm.Config{
		Logger: gormLogger,
	}

	var db *gorm.DB
	var err error
	maxRetries := 5
	retryInterval := 2 * time.Second

	// 重试连接主库
	logger.Info("开始连接主数据库...")
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.Open(mysqlCfg.Write.DSN), gormConfig)
		if err == nil {
			var sqlDB *sql.DB
			var dbErr error
			sqlDB, dbErr = db.DB()
			if dbErr == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					err = nil
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", maxRetries), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}
	if err != nil {
		logger.Error("无法连接到主数据库", zap.Error(err))
		return nil, fmt.Errorf("无法连接到主数据库: %w", err)
	}
	logger.Info("成功连接到主数据库")

	// --- 配置读写分离 (dbresolver) ---
	// 大屏轮询是典型的读多写少负载，配置从库后读请求轮询分摊。
	readReplicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replicaCfg := range mysqlCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		readReplicas = append(readReplicas, mysql.Open(replicaCfg.DSN))
		logger.Info("发现并准备配置从数据库", zap.Int("index", i))
	}

	if len(readReplicas) > 0 {
		resolverConfig := dbresolver.Config{
			Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
			Replicas: readReplicas,
			Policy:   dbresolver.StrictRoundRobinPolicy(),
		}
		err = db.Use(dbresolver.Register(resolverConfig))
		if err != nil {
			logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
			return nil, fmt.Errorf("配置 GORM 读写分离失败: %w", err)
		}
		logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(readReplicas)))
	} else {
		logger.Info("未配置有效的从数据库，不启用读写分离")
	}

	// --- 配置连接池 ---
	sqlDB, dbErr := db.DB()
	if dbErr != nil {
		logger.Error("无法获取数据库对象以配置连接池", zap.Error(dbErr))
		return nil, fmt.Errorf("无法获取数据库对象: %w", dbErr)
	}

	maxIdle := mysqlCfg.SharedMaxIdleConns
	maxOpen := mysqlCfg.SharedMaxOpenConns
	maxLife := mysqlCfg.SharedConnMaxLifetime

	// 主库可以覆盖共享设置
	if mysqlCfg.Write.MaxIdleConns != nil {
		maxIdle = *mysqlCfg.Write.MaxIdleConns
	}
	if mysqlCfg.Write.MaxOpenConns != nil {
		maxOpen = *mysqlCfg.Write.MaxOpenConns
	}
	if mysqlCfg.Write.ConnMaxLifetime != nil {
		maxLife = *mysqlCfg.Write.ConnMaxLifetime
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)

	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)
	if pingErr := sqlDB.Ping(); pingErr != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(pingErr))
		return nil, fmt.Errorf("配置连接池后 Ping 失败: %w", pingErr)
	}

	// --- 自动迁移 ---
	// AutoMigrate 默认发送到主库 (Source)
	logger.Info("开始执行数据库自动迁移...")
	migrateErr := db.AutoMigrate(
		&entities.HotThing{},
		&entities.UserEmotion{},
		&entities.Heat{},
		&entities.Trend{},
		&entities.TypicalPost{},
		&entities.TypicalRadar{},
		&entities.PopulationComposition{},
		&entities.PopulationValue{},
		&entities.ThingProvince{},
		&entities.WordCloud{},
		&entities.Province{},
		&entities.SystemInfo{},
	)
	if migrateErr != nil {
		logger.Error("数据库自动迁移失败", zap.Error(migrateErr))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", migrateErr)
	}
	logger.Info("数据库自动迁移完成")

	// --- 播种参考表 ---
	if seedErr := seedReferenceTables(db, logger); seedErr != nil {
		return nil, seedErr
	}

	logger.Info("成功初始化 MySQL 连接 (包括读写分离、自动迁移和参考表播种)")
	return db, nil
}

// seedReferenceTables 播种 provinces 与 system_info 两张参考表。
// 批量清空操作会刻意保留这两张表，所以正常情况下只有首次启动会真正写入。
func seedReferenceTables(db *gorm.DB, logger *core.ZapLogger) error {
	ctx := context.Background()

	provinces := make([]*entities.Province, 0, len(constant.ProvinceIDTable))
	for name, pid := range constant.ProvinceIDTable {
		provinces = append(provinces, &entities.Province{PID: pid, Name: name})
	}
	if err := repoMysql.NewProvinceRepository(db).BatchUpsert(ctx, provinces); err != nil {
		logger.Error("播种省份参考表失败", zap.Error(err))
		return fmt.Errorf("播种省份参考表失败: %w", err)
	}

	infoRepo := repoMysql.NewSystemInfoRepository(db)
	count, err := infoRepo.Count(ctx)
	if err != nil {
		logger.Error("检查系统概况表失败", zap.Error(err))
		return fmt.Errorf("检查系统概况表失败: %w", err)
	}
	if count == 0 {
		if err := infoRepo.Create(ctx, &entities.SystemInfo{StartTime: time.Now()}); err != nil {
			logger.Error("初始化系统概况行失败", zap.Error(err))
			return fmt.Errorf("初始化系统概况行失败: %w", err)
		}
		logger.Info("系统概况表为空，已写入初始行")
	}

	logger.Info("参考表播种完成", zap.Int("省份数量", len(provinces)))
	return nil
}
