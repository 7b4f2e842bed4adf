package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/myErrors"
)

// validAggregate 构造一份能通过全部校验的最小聚合体。
func validAggregate() *dto.AddHotThingRequest {
	return &dto.AddHotThingRequest{
		HotThing: &dto.HotThingSection{
			Title: "事件", Date: "2024-05-01 09:00:00",
		},
		UserEmotion:           &dto.UserEmotionSection{},
		Heat:                  &dto.HeatSection{},
		Trend:                 []float64{},
		TypicalPosts:          []dto.TypicalPostItem{},
		PopulationComposition: []dto.PopulationGroupItem{},
		Map:                   []dto.ProvinceColoringItem{},
	}
}

func TestValidateAggregateAccepts(t *testing.T) {
	if err := ValidateAggregate(validAggregate()); err != nil {
		t.Fatalf("合法聚合体不应被拒绝: %v", err)
	}
}

func TestValidateAggregateNil(t *testing.T) {
	err := ValidateAggregate(nil)
	if err == nil || !strings.Contains(err.Error(), "No data provided") {
		t.Fatalf("nil 请求应返回 No data provided, 实际: %v", err)
	}
	if !errors.Is(err, myErrors.ErrAggregateInvalid) {
		t.Fatalf("校验错误应包装 ErrAggregateInvalid")
	}
}

func TestValidateAggregateMissingSections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.AddHotThingRequest)
		message string
	}{
		{"hot_thing", func(r *dto.AddHotThingRequest) { r.HotThing = nil }, "Missing required section: hot_thing"},
		{"user_emotion", func(r *dto.AddHotThingRequest) { r.UserEmotion = nil }, "Missing required section: user_emotion"},
		{"heat", func(r *dto.AddHotThingRequest) { r.Heat = nil }, "Missing required section: heat"},
		{"trend", func(r *dto.AddHotThingRequest) { r.Trend = nil }, "Missing required section: trend"},
		{"typical_posts", func(r *dto.AddHotThingRequest) { r.TypicalPosts = nil }, "Missing required section: typical_posts"},
		{"population_composition", func(r *dto.AddHotThingRequest) { r.PopulationComposition = nil }, "Missing required section: population_composition"},
		{"map", func(r *dto.AddHotThingRequest) { r.Map = nil }, "Missing required section: map"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAggregate()
			tc.mutate(req)
			err := ValidateAggregate(req)
			if err == nil || !strings.Contains(err.Error(), tc.message) {
				t.Fatalf("期望错误 %q, 实际: %v", tc.message, err)
			}
		})
	}
}

func TestValidateAggregateFirstViolationWins(t *testing.T) {
	// 同时缺失多个区块时只报告第一个。
	req := validAggregate()
	req.HotThing = nil
	req.Heat = nil
	err := ValidateAggregate(req)
	if err == nil || !strings.Contains(err.Error(), "hot_thing") {
		t.Fatalf("应优先报告 hot_thing 缺失, 实际: %v", err)
	}
}

func TestValidateAggregateDatetime(t *testing.T) {
	req := validAggregate()
	req.HotThing.Date = "2024-05-01"
	err := ValidateAggregate(req)
	if err == nil || !strings.Contains(err.Error(), "Invalid datetime format, should be YYYY-MM-DD HH:MM:SS") {
		t.Fatalf("不完整的时间串应被拒绝, 实际: %v", err)
	}

	req = validAggregate()
	req.HotThing.Date = ""
	if ValidateAggregate(req) == nil {
		t.Fatalf("空时间串应被拒绝")
	}

	req = validAggregate()
	req.TypicalPosts = []dto.TypicalPostItem{
		{Title: "帖子", Datetime: "2024-05-01 09:00:00"},
		{Title: "坏帖子", Datetime: "bad"},
	}
	err = ValidateAggregate(req)
	if err == nil || !strings.Contains(err.Error(), "Invalid datetime format in post, should be YYYY-MM-DD HH:MM:SS") {
		t.Fatalf("帖子时间串非法应被拒绝, 实际: %v", err)
	}
}

func TestParseAggregateDate(t *testing.T) {
	parsed := ParseAggregateDate("2024-05-01 09:30:15")
	if parsed.Year() != 2024 || parsed.Month() != 5 || parsed.Hour() != 9 || parsed.Second() != 15 {
		t.Fatalf("解析结果错误: %v", parsed)
	}
}
