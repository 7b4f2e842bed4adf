package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/dependencies"
	"github.com/Xushengqwer/opinion_service/mq/producer"
	"github.com/Xushengqwer/opinion_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/opinion_service/repo/redis"
	opinionService "github.com/Xushengqwer/opinion_service/service"
)

// seeder 往数据库灌入假的热点事件整树数据，走正式的服务层入库路径，
// 用于大屏演示环境和本地联调。
func main() {
	// --- 0. 解析命令行参数 ---
	var numThings int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numThings, "n", 20, "要生成的热点事件数量 (默认: 20)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步 Kafka 消息发送完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 条热点事件...\n", absConfigFile, numThings)

	if numThings <= 0 {
		fmt.Println("错误: 生成的事件数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.OpinionConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 (可选) ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	} else {
		logger.Warn("未配置 Kafka brokers，跳过入库事件通知 (Seeder)")
	}

	// --- 5. 初始化 Redis 缓存 (可选) ---
	var hotThingsCache redisRepo.HotThingsCache
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，列表缓存失效通知将被跳过", zap.Error(redisErr))
	} else {
		cacheTTL := time.Duration(cfg.RedisConfig.TTLSeconds) * time.Second
		hotThingsCache = redisRepo.NewHotThingsCache(rdb, cacheTTL, logger)
	}

	// --- 6. 初始化 Repositories ---
	hotThingRepo := mysql.NewHotThingRepository(db)
	userEmotionRepo := mysql.NewUserEmotionRepository(db)
	heatRepo := mysql.NewHeatRepository(db)
	trendRepo := mysql.NewTrendRepository(db)
	typicalPostRepo := mysql.NewTypicalPostRepository(db)
	populationRepo := mysql.NewPopulationRepository(db)
	thingProvinceRepo := mysql.NewThingProvinceRepository(db)
	wordCloudRepo := mysql.NewWordCloudRepository(db)
	maintenanceRepo := mysql.NewMaintenanceRepository(db)

	// --- 7. 初始化 Service ---
	hotThingSvc := opinionService.NewHotThingService(
		db,
		hotThingRepo,
		userEmotionRepo,
		heatRepo,
		trendRepo,
		typicalPostRepo,
		populationRepo,
		thingProvinceRepo,
		wordCloudRepo,
		maintenanceRepo,
		hotThingsCache,
		kafkaProducer,
		logger,
	)
	logger.Info("HotThingService 已初始化 (Seeder)")

	// --- 8. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("预计数量", numThings))

	Seed(ctx, hotThingSvc, logger, numThings)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成", zap.Duration("耗时", duration))

	// --- 9. 等待异步 Kafka 消息发送 ---
	if waitSeconds > 0 && kafkaProducer != nil {
		logger.Info(fmt.Sprintf("Seeder: 等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(startTime))
}
