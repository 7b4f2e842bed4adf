package service

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/myErrors"
)

// DatetimeLayout 是聚合体内所有时间字符串的约定格式。
const DatetimeLayout = "2006-01-02 15:04:05"

// ValidateAggregate 对事件聚合体做结构化校验，命中第一个违规项即返回。
// - /addHotThing 接口与聚合管线共用：无论聚合体来自整合器还是外部调用方，
//   入库前都走同一套校验
// - 错误信息沿用大屏 API 的英文文案，客户端据此提示
// - 返回的错误包装 myErrors.ErrAggregateInvalid，调用方可用 errors.Is 识别
func ValidateAggregate(req *dto.AddHotThingRequest) error {
	if req == nil {
		return invalid("No data provided")
	}

	if req.HotThing == nil {
		return invalid("Missing required section: hot_thing")
	}
	if req.UserEmotion == nil {
		return invalid("Missing required section: user_emotion")
	}
	if req.Heat == nil {
		return invalid("Missing required section: heat")
	}
	// 切片区块区分「缺失」(nil) 与「为空」(非 nil 空切片)：空数组是合法输入。
	if req.Trend == nil {
		return invalid("Missing required section: trend")
	}
	if req.TypicalPosts == nil {
		return invalid("Missing required section: typical_posts")
	}
	if req.PopulationComposition == nil {
		return invalid("Missing required section: population_composition")
	}
	if req.Map == nil {
		return invalid("Missing required section: map")
	}

	// 事件起始时间必须是完整的 "YYYY-MM-DD HH:MM:SS"。
	// 没有典型帖子时整合器产出空串，同样在这里被拒绝。
	if _, err := time.Parse(DatetimeLayout, req.HotThing.Date); err != nil {
		return invalid("Invalid datetime format, should be YYYY-MM-DD HH:MM:SS")
	}

	for _, post := range req.TypicalPosts {
		if _, err := time.Parse(DatetimeLayout, post.Datetime); err != nil {
			return invalid("Invalid datetime format in post, should be YYYY-MM-DD HH:MM:SS")
		}
	}

	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", myErrors.ErrAggregateInvalid, msg)
}

// ParseAggregateDate 解析校验过的时间字符串。
// 只应在 ValidateAggregate 通过后调用，此时解析不会失败。
func ParseAggregateDate(value string) time.Time {
	t, _ := time.Parse(DatetimeLayout, value)
	return t
}
