package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/opinion_service/docs" // swag 生成的 Swagger 文档

	"github.com/Xushengqwer/opinion_service/analyzer"
	appConfig "github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/controller"
	"github.com/Xushengqwer/opinion_service/dependencies"
	"github.com/Xushengqwer/opinion_service/mq/producer"
	"github.com/Xushengqwer/opinion_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/opinion_service/repo/redis"
	"github.com/Xushengqwer/opinion_service/router"
	"github.com/Xushengqwer/opinion_service/service"
	"github.com/Xushengqwer/opinion_service/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.uber.org/zap"
)

// @title           Opinion Service API
// @version         1.0
// @description     舆情监测服务：事件聚合管线、大屏读接口与爬虫投递入口。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.OpinionConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("配置加载成功，最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS 客户端 (可选，用于归档入库成功事件的原始 CSV)
	var cosClient dependencies.COSClientInterface
	if cfg.COSConfig.BucketName != "" {
		cos, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
		if cosErr != nil {
			logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
		}
		cosClient = cos
		logger.Info("COS 客户端已初始化")
	} else {
		logger.Warn("未配置 COS Bucket，事件 CSV 归档能力关闭")
	}

	// 4.4 Kafka 生产者 (可选)
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，事件变更通知能力关闭")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	hotThingRepo := mysql.NewHotThingRepository(db)
	userEmotionRepo := mysql.NewUserEmotionRepository(db)
	heatRepo := mysql.NewHeatRepository(db)
	trendRepo := mysql.NewTrendRepository(db)
	typicalPostRepo := mysql.NewTypicalPostRepository(db)
	populationRepo := mysql.NewPopulationRepository(db)
	thingProvinceRepo := mysql.NewThingProvinceRepository(db)
	wordCloudRepo := mysql.NewWordCloudRepository(db)
	systemInfoRepo := mysql.NewSystemInfoRepository(db)
	maintenanceRepo := mysql.NewMaintenanceRepository(db)
	logger.Debug("MySQL Repositories 初始化完成")

	cacheTTL := time.Duration(cfg.RedisConfig.TTLSeconds) * time.Second
	hotThingsCache := redisrepo.NewHotThingsCache(rdb, cacheTTL, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	hotThingService := service.NewHotThingService(
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
	queryService := service.NewHotThingQueryService(
		hotThingRepo,
		userEmotionRepo,
		heatRepo,
		trendRepo,
		typicalPostRepo,
		populationRepo,
		thingProvinceRepo,
		wordCloudRepo,
		systemInfoRepo,
		hotThingsCache,
		logger,
	)
	invoker := analyzer.NewInvoker(cfg.AnalyzerConfig, logger.Logger())
	aggregationService := service.NewAggregationService(invoker, hotThingService, cfg.PipelineConfig, cosClient, logger)
	crawlerService := service.NewCrawlerService(cfg.AnalyzerConfig, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	dashboardController := controller.NewDashboardController(queryService)
	hotThingController := controller.NewHotThingController(hotThingService, crawlerService)
	pipelineController := controller.NewPipelineController(aggregationService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化定时任务 ---
	cacheTask := tasks.NewHotThingsCacheTask(hotThingRepo, hotThingsCache, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 9. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, dashboardController, hotThingController, pipelineController)
	logger.Info("Gin 路由器已设置")

	// --- 10. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 11. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 停止定时任务调度器 (等待执行中的任务结束)
	logger.Info("正在停止定时任务...")
	select {
	case <-cacheTask.Stop().Done():
		logger.Info("列表缓存刷新任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// c. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者时出错", zap.Error(err))
		} else {
			logger.Info("Kafka 生产者已关闭")
		}
	}

	logger.Info("服务已成功关闭")
}
