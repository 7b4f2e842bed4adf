package router

import (
	"net/http"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/opinion_service/config"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/controller"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
// 历史接口统一挂在 /api 下，路由名沿用大屏前端的既有约定。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.OpinionConfig,
	dashboardController *controller.DashboardController,
	hotThingController *controller.HotThingController,
	pipelineController *controller.PipelineController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，Recovery 与访问日志由公共中间件接管。
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	// 注意：管线触发接口耗时以分钟计，RequestTimeout 配置需要覆盖最长的一次管线运行。
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 5. User Context (提取用户信息)
	router.Use(commonMiddleware.UserContextMiddleware())

	logger.Debug("已注册全局中间件")

	// --- 历史接口分组 ---
	api := router.Group("/api")
	logger.Debug("已创建 /api 分组")

	// --- 注册控制器路由 ---
	dashboardController.RegisterRoutes(api)
	hotThingController.RegisterRoutes(api)
	pipelineController.RegisterRoutes(api)
	logger.Info("所有控制器路由已注册到 /api 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
