package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/myErrors"
	"github.com/Xushengqwer/opinion_service/service"
)

// HotThingController 承载热点事件的写接口：入库、删除、批量清空，
// 以及爬虫投递的即发即弃转发入口。
type HotThingController struct {
	hotThingService service.HotThingService
	crawlerService  service.CrawlerService
}

// NewHotThingController 构造函数，注入服务层依赖
func NewHotThingController(hotThingService service.HotThingService, crawlerService service.CrawlerService) *HotThingController {
	return &HotThingController{
		hotThingService: hotThingService,
		crawlerService:  crawlerService,
	}
}

// AddHotThing 处理事件聚合体入库的 HTTP 请求
// @Summary      事件聚合体入库
// @Description  接收完整的事件聚合体（主记录、情感、热度、趋势、典型帖子、人群构成、地域分布、词云），在单个事务内整树入库。校验失败返回首个违规项。
// @Tags         hot-things (热点事件)
// @Accept       json
// @Produce      json
// @Param        request body dto.AddHotThingRequest true "事件聚合体"
// @Success      200 {object} vo.AddHotThingResponseWrapper "事件入库成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求体无效或聚合体未通过结构化校验"
// @Failure      500 {object} vo.BaseResponseWrapper "事件入库时发生内部服务器错误"
// @Router       /api/addHotThing [post]
func (ctrl *HotThingController) AddHotThing(c *gin.Context) {
	var req dto.AddHotThingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	created, err := ctrl.hotThingService.AddHotThing(c.Request.Context(), &req)
	if err != nil {
		// 校验失败属于客户端问题，把首个违规项原样透出，方便上游修数据。
		if errors.Is(err, myErrors.ErrAggregateInvalid) {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "事件入库失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, created, "事件入库成功")
}

// AddHotThingByCrawler 处理爬虫投递原始数据的 HTTP 请求
// @Summary      爬虫投递原始事件数据
// @Description  即发即弃接口：校验必填字段后立即返回成功，向算法服务的转发在后台执行，转发结果只体现在服务端日志里。
// @Tags         hot-things (热点事件)
// @Accept       json
// @Produce      json
// @Param        request body dto.CrawlerSubmitRequest true "爬虫原始数据"
// @Success      200 {object} vo.BaseResponseWrapper "已接收，转发在后台执行"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少 title 或 data 字段"
// @Router       /api/addHotThingByCrawler [post]
func (ctrl *HotThingController) AddHotThingByCrawler(c *gin.Context) {
	var req dto.CrawlerSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	ctrl.crawlerService.Submit(&req)
	response.RespondSuccess[any](c, nil, "已接收，转发在后台执行")
}

// DelHotThingByID 处理删除热点事件的 HTTP 请求
// @Summary      删除热点事件
// @Description  按事件 ID 级联删除事件及其全部从属记录，在单个事务内从叶子表删到主表。
// @Tags         hot-things (热点事件)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "事件删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      404 {object} vo.BaseResponseWrapper "事件不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "删除事件时发生内部服务器错误"
// @Router       /api/delHotThingById [post]
func (ctrl *HotThingController) DelHotThingByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	if err := ctrl.hotThingService.DeleteHotThing(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "事件不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "删除事件失败: "+err.Error())
		return
	}
	response.RespondSuccess[any](c, nil, "事件删除成功")
}

// ClearAllTables 处理批量清空业务表的 HTTP 请求
// @Summary      清空所有业务表
// @Description  运维接口：清空全部业务表，保留 provinces 与 system_info 参考表。返回实际清空与保留的表清单。
// @Tags         hot-things (热点事件)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.ClearTablesResponseWrapper "业务表清空成功"
// @Failure      500 {object} vo.BaseResponseWrapper "清空业务表时发生内部服务器错误"
// @Router       /api/clearAllTables [post]
func (ctrl *HotThingController) ClearAllTables(c *gin.Context) {
	result, err := ctrl.hotThingService.ClearAllTables(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "清空业务表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, result, "业务表清空成功")
}

// RegisterRoutes 注册 HotThingController 的路由
func (ctrl *HotThingController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/addHotThing", ctrl.AddHotThing)
	group.POST("/addHotThingByCrawler", ctrl.AddHotThingByCrawler)
	group.POST("/delHotThingById", ctrl.DelHotThingByID)
	group.POST("/clearAllTables", ctrl.ClearAllTables)
}
