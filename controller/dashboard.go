package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/service"
)

// noDataMessage 是大屏读接口在查无数据时的约定响应文案。
// 大屏前端靠这个文案切换面板的空态展示，不能改。
const noDataMessage = "no data"

// DashboardController 承载大屏前端的全部读接口。
// 路由名与请求方式（POST + JSON body）沿用大屏前端的历史约定，保持兼容。
type DashboardController struct {
	queryService service.HotThingQueryService
}

// NewDashboardController 构造函数，注入服务层依赖
func NewDashboardController(queryService service.HotThingQueryService) *DashboardController {
	return &DashboardController{
		queryService: queryService,
	}
}

// respondNotFoundAsNoData 把「记录不存在」折叠成约定的 no data 成功响应。
// 大屏各面板独立渲染，单面板查不到数据不应让整页报错。
// 返回 true 表示错误已被处理。
func respondNotFoundAsNoData(c *gin.Context, err error) bool {
	if errors.Is(err, commonerrors.ErrRepoNotFound) {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return true
	}
	return false
}

// GetHotThings 处理获取最新热点事件列表的 HTTP 请求
// @Summary      获取最新热点事件列表
// @Description  返回最新入库的 4 条热点事件，供大屏首页轮播展示。优先读缓存。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.HotThingListResponseWrapper "热点事件列表检索成功"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热点事件列表时发生内部服务器错误"
// @Router       /api/getHotThings [post]
func (ctrl *DashboardController) GetHotThings(c *gin.Context) {
	items, err := ctrl.queryService.GetHotThings(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索热点事件列表失败: "+err.Error())
		return
	}
	if len(items) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, items, "热点事件列表检索成功")
}

// GetSysInfo 处理获取系统运行概况的 HTTP 请求
// @Summary      获取系统运行概况
// @Description  返回系统启动日期、监测事件总数等运行概况。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.BaseResponseWrapper "系统概况检索成功"
// @Failure      500 {object} vo.BaseResponseWrapper "检索系统概况时发生内部服务器错误"
// @Router       /api/getSysInfo [post]
func (ctrl *DashboardController) GetSysInfo(c *gin.Context) {
	info, err := ctrl.queryService.GetSystemInfo(c.Request.Context())
	if err != nil {
		if respondNotFoundAsNoData(c, err) {
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索系统概况失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, info, "系统概况检索成功")
}

// GetLvByID 处理获取事件预警等级的 HTTP 请求
// @Summary      获取事件预警等级
// @Description  按事件 ID 返回预警等级（Ⅰ/Ⅱ/Ⅲ）。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "预警等级检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索预警等级时发生内部服务器错误"
// @Router       /api/getLvById [post]
func (ctrl *DashboardController) GetLvByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	lv, err := ctrl.queryService.GetWarningLvByID(c.Request.Context(), req.ID)
	if err != nil {
		if respondNotFoundAsNoData(c, err) {
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索预警等级失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, lv, "预警等级检索成功")
}

// GetEmotionsByID 处理获取事件情感画像的 HTTP 请求
// @Summary      获取事件情感画像
// @Description  按事件 ID 返回正负二元情感与七类离散情绪的计数。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.EmotionResponseWrapper "情感画像检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索情感画像时发生内部服务器错误"
// @Router       /api/getEmotionsById [post]
func (ctrl *DashboardController) GetEmotionsByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	emotions, err := ctrl.queryService.GetEmotionsByID(c.Request.Context(), req.ID)
	if err != nil {
		if respondNotFoundAsNoData(c, err) {
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索情感画像失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, emotions, "情感画像检索成功")
}

// SearchByKeyword 处理按关键字搜索事件的 HTTP 请求
// @Summary      按标题关键字搜索事件
// @Description  对事件标题做模糊匹配，按 ID 倒序最多返回 5 条。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.KeywordRequest true "搜索关键字"
// @Success      200 {object} vo.HotThingListResponseWrapper "搜索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "搜索事件时发生内部服务器错误"
// @Router       /api/searchByKeyword [post]
func (ctrl *DashboardController) SearchByKeyword(c *gin.Context) {
	var req dto.KeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	items, err := ctrl.queryService.SearchByKeyword(c.Request.Context(), req.Keyword)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "搜索事件失败: "+err.Error())
		return
	}
	if len(items) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, items, "搜索成功")
}

// GetMapDataByID 处理获取事件地域分布的 HTTP 请求
// @Summary      获取事件地域分布着色
// @Description  按事件 ID 返回全部省份的地图着色数据，结构与 echarts 地图系列对齐。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.MapDataResponseWrapper "地域分布检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索地域分布时发生内部服务器错误"
// @Router       /api/getMapDataById [post]
func (ctrl *DashboardController) GetMapDataByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	items, err := ctrl.queryService.GetMapDataByID(c.Request.Context(), req.ID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索地域分布失败: "+err.Error())
		return
	}
	if len(items) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, items, "地域分布检索成功")
}

// GetWordCloudByID 处理获取事件词云图的 HTTP 请求
// @Summary      获取事件词云图
// @Description  按事件 ID 返回 base64 编码的词云图。词云为可选面板，无数据时返回 no data。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "词云图检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索词云图时发生内部服务器错误"
// @Router       /api/getWordCloudById [post]
func (ctrl *DashboardController) GetWordCloudByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	wordCloud, err := ctrl.queryService.GetWordCloudByID(c.Request.Context(), req.ID)
	if err != nil {
		if respondNotFoundAsNoData(c, err) {
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索词云图失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, wordCloud, "词云图检索成功")
}

// GetPlatformMetricsByID 处理获取事件平台汇总计数的 HTTP 请求
// @Summary      获取事件平台级汇总计数
// @Description  按事件 ID 返回总帖子数、总用户数、总互动量与带定位帖子数。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "平台汇总计数检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索平台汇总计数时发生内部服务器错误"
// @Router       /api/getPlatformMetricsById [post]
func (ctrl *DashboardController) GetPlatformMetricsByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	metrics, err := ctrl.queryService.GetPlatformMetricsByID(c.Request.Context(), req.ID)
	if err != nil {
		if respondNotFoundAsNoData(c, err) {
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索平台汇总计数失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, metrics, "平台汇总计数检索成功")
}

// GetTrendDataByID 处理获取事件发帖趋势的 HTTP 请求
// @Summary      获取事件七天发帖量序列
// @Description  按事件 ID 返回长度固定为 7 的每日帖子数序列，缺失的天补 0。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "发帖趋势检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索发帖趋势时发生内部服务器错误"
// @Router       /api/getTrendDataById [post]
func (ctrl *DashboardController) GetTrendDataByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	values, err := ctrl.queryService.GetTrendDataByID(c.Request.Context(), req.ID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索发帖趋势失败: "+err.Error())
		return
	}
	if values == nil {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, values, "发帖趋势检索成功")
}

// GetTypicalPostsByID 处理获取事件典型帖子的 HTTP 请求
// @Summary      获取事件典型帖子列表
// @Description  按事件 ID 返回典型帖子，按入库顺序倒序最多 10 条。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.HotThingListResponseWrapper "典型帖子检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索典型帖子时发生内部服务器错误"
// @Router       /api/getTypicalPostsById [post]
func (ctrl *DashboardController) GetTypicalPostsByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	posts, err := ctrl.queryService.GetTypicalPostsByID(c.Request.Context(), req.ID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索典型帖子失败: "+err.Error())
		return
	}
	if len(posts) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, posts, "典型帖子检索成功")
}

// GetHeatDataByID 处理获取事件热度指标的 HTTP 请求
// @Summary      获取事件热度指标
// @Description  按事件 ID 返回转发/评论/点赞计数与各项热度分值。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "热度指标检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索热度指标时发生内部服务器错误"
// @Router       /api/getHeatDataById [post]
func (ctrl *DashboardController) GetHeatDataByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	heat, err := ctrl.queryService.GetHeatDataByID(c.Request.Context(), req.ID)
	if err != nil {
		if respondNotFoundAsNoData(c, err) {
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索热度指标失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, heat, "热度指标检索成功")
}

// GetTypicalRadarDataByID 处理获取价值观雷达图数据的 HTTP 请求
// @Summary      获取价值观雷达图数据
// @Description  按事件 ID 返回最新 3 条典型帖子的标题及十维价值观数值。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.RadarResponseWrapper "雷达图数据检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索雷达图数据时发生内部服务器错误"
// @Router       /api/getTypicalRadarDataById [post]
func (ctrl *DashboardController) GetTypicalRadarDataByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	radar, err := ctrl.queryService.GetTypicalRadarDataByID(c.Request.Context(), req.ID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索雷达图数据失败: "+err.Error())
		return
	}
	if radar == nil || len(radar.Titles) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, radar, "雷达图数据检索成功")
}

// GetPopulationCompositionByID 处理获取事件人群构成的 HTTP 请求
// @Summary      获取事件人群构成分组
// @Description  按事件 ID 返回人群构成分组列表，分组 ID 可用于查询标签明细。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "事件 ID"
// @Success      200 {object} vo.BaseResponseWrapper "人群构成检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索人群构成时发生内部服务器错误"
// @Router       /api/getPopulationCompositonById [post]
func (ctrl *DashboardController) GetPopulationCompositionByID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	groups, err := ctrl.queryService.GetPopulationCompositionByID(c.Request.Context(), req.ID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索人群构成失败: "+err.Error())
		return
	}
	if len(groups) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, groups, "人群构成检索成功")
}

// GetPopulationDataByPopID 处理获取人群构成明细的 HTTP 请求
// @Summary      获取人群构成标签明细
// @Description  按分组 ID 返回该分组下的标签/数值明细，供饼图下钻展示。
// @Tags         dashboard (大屏读接口)
// @Accept       json
// @Produce      json
// @Param        request body dto.IDRequest true "人群分组 ID"
// @Success      200 {object} vo.BaseResponseWrapper "人群明细检索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求体"
// @Failure      500 {object} vo.BaseResponseWrapper "检索人群明细时发生内部服务器错误"
// @Router       /api/getPopulationDataByPopId [post]
func (ctrl *DashboardController) GetPopulationDataByPopID(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	values, err := ctrl.queryService.GetPopulationDataByPopID(c.Request.Context(), req.ID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "检索人群明细失败: "+err.Error())
		return
	}
	if len(values) == 0 {
		response.RespondSuccess[any](c, nil, noDataMessage)
		return
	}
	response.RespondSuccess(c, values, "人群明细检索成功")
}

// RegisterRoutes 注册 DashboardController 的路由
// 历史接口统一用 POST，路由名保持与大屏前端一致（含 getPopulationCompositonById 的历史拼写）。
func (ctrl *DashboardController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/getHotThings", ctrl.GetHotThings)
	group.POST("/getSysInfo", ctrl.GetSysInfo)
	group.POST("/getLvById", ctrl.GetLvByID)
	group.POST("/getEmotionsById", ctrl.GetEmotionsByID)
	group.POST("/searchByKeyword", ctrl.SearchByKeyword)
	group.POST("/getMapDataById", ctrl.GetMapDataByID)
	group.POST("/getWordCloudById", ctrl.GetWordCloudByID)
	group.POST("/getPlatformMetricsById", ctrl.GetPlatformMetricsByID)
	group.POST("/getTrendDataById", ctrl.GetTrendDataByID)
	group.POST("/getTypicalPostsById", ctrl.GetTypicalPostsByID)
	group.POST("/getHeatDataById", ctrl.GetHeatDataByID)
	group.POST("/getTypicalRadarDataById", ctrl.GetTypicalRadarDataByID)
	group.POST("/getPopulationCompositonById", ctrl.GetPopulationCompositionByID)
	group.POST("/getPopulationDataByPopId", ctrl.GetPopulationDataByPopID)
}
