package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/myErrors"
	"github.com/Xushengqwer/opinion_service/service"
)

// PipelineController 承载事件聚合管线的触发接口。
type PipelineController struct {
	aggregationService service.AggregationService
}

// NewPipelineController 构造函数，注入服务层依赖
func NewPipelineController(aggregationService service.AggregationService) *PipelineController {
	return &PipelineController{
		aggregationService: aggregationService,
	}
}

// RunPipeline 处理触发完整聚合管线的 HTTP 请求
// @Summary      触发一次完整的事件聚合管线
// @Description  同步执行 聚类 → 逐事件五路分析扇出 → 整合 → 校验入库 的完整流程，返回每个候选事件的终态。分析服务为重推理负载，本接口耗时可能以分钟计。
// @Tags         pipeline (聚合管线)
// @Accept       json
// @Produce      json
// @Param        request body dto.RunPipelineRequest true "数据源路径与可选的聚类调参"
// @Success      200 {object} vo.PipelineRunResponseWrapper "管线运行完成（事件级失败体现在 events 列表里）"
// @Failure      400 {object} vo.BaseResponseWrapper "请求体无效或聚类未产出任何簇"
// @Failure      500 {object} vo.BaseResponseWrapper "管线运行时发生内部服务器错误"
// @Router       /api/runPipeline [post]
func (ctrl *PipelineController) RunPipeline(c *gin.Context) {
	var req dto.RunPipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	run, err := ctrl.aggregationService.RunPipeline(c.Request.Context(), &req)
	if err != nil {
		// 聚类没产出任何簇通常意味着数据源路径或调参有问题，归为客户端错误。
		if errors.Is(err, myErrors.ErrClusterEmpty) {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "管线运行失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, run, "管线运行完成")
}

// RegisterRoutes 注册 PipelineController 的路由
func (ctrl *PipelineController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/runPipeline", ctrl.RunPipeline)
}
