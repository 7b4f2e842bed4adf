package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/service"
)

// 假数据用的取值池，贴近真实分析产出的形态。
var (
	seedSources    = []string{"新浪微博", "抖音", "知乎", "今日头条", "哔哩哔哩"}
	seedWarningLvs = []string{"Ⅰ", "Ⅱ", "Ⅲ"}
	seedColors     = []string{"#E0E0E0", "#BBDEFB", "#64B5F6", "#2196F3", "#1976D2", "#0D47A1"}
	seedPopGroups  = []string{"性别", "年龄", "职业", "地域属性"}
	seedPopLabels  = []string{"男", "女", "18-25", "26-35", "36-45", "学生", "上班族", "自由职业", "城市", "乡镇"}
)

// Seed 通过正式的服务层入库路径生成假的热点事件整树数据。
func Seed(ctx context.Context, hotThingSvc service.HotThingService, logger *core.ZapLogger, numThings int) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numThings))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numThings; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			req := fakeHotThingRequest()

			created, err := hotThingSvc.AddHotThing(ctx, req)
			if err != nil {
				logger.Error(fmt.Sprintf("创建事件 %d/%d 失败", itemIndex+1, numThings),
					zap.Error(err),
					zap.String("title", req.HotThing.Title))
			} else {
				logger.Info(fmt.Sprintf("成功创建事件 %d/%d", itemIndex+1, numThings),
					zap.Uint64("thing_id", created.ThingID),
					zap.String("title", req.HotThing.Title))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

// fakeHotThingRequest 构造一份能通过结构化校验的完整事件聚合体。
func fakeHotThingRequest() *dto.AddHotThingRequest {
	date := gofakeit.DateRange(
		gofakeit.Date().AddDate(-1, 0, 0),
		gofakeit.Date(),
	).Format(service.DatetimeLayout)

	totalPosts := float64(gofakeit.Number(200, 50000))

	req := &dto.AddHotThingRequest{
		HotThing: &dto.HotThingSection{
			Title:             gofakeit.Sentence(gofakeit.Number(4, 10)),
			URL:               gofakeit.URL(),
			Source:            gofakeit.RandomString(seedSources),
			Date:              date,
			Heat:              gofakeit.Float64Range(10, 100),
			WarningLv:         gofakeit.RandomString(seedWarningLvs),
			TotalPosts:        totalPosts,
			TotalUsers:        float64(gofakeit.Number(100, 30000)),
			TotalInteractions: float64(gofakeit.Number(1000, 500000)),
			PostsWithLocation: float64(gofakeit.Number(0, int(totalPosts))),
		},
		UserEmotion: &dto.UserEmotionSection{
			Positive:  float64(gofakeit.Number(0, 10000)),
			Negative:  float64(gofakeit.Number(0, 10000)),
			Like:      float64(gofakeit.Number(0, 3000)),
			Happiness: float64(gofakeit.Number(0, 3000)),
			Sadness:   float64(gofakeit.Number(0, 3000)),
			Anger:     float64(gofakeit.Number(0, 3000)),
			Disgust:   float64(gofakeit.Number(0, 3000)),
			Fear:      float64(gofakeit.Number(0, 3000)),
			Surprise:  float64(gofakeit.Number(0, 3000)),
		},
		Heat: &dto.HeatSection{
			ForwardCount:        float64(gofakeit.Number(0, 100000)),
			CommentCount:        float64(gofakeit.Number(0, 100000)),
			LikeCount:           float64(gofakeit.Number(0, 500000)),
			CompositeHotScore:   gofakeit.Float64Range(0, 100),
			BaseHotValue:        gofakeit.Float64Range(0, 100),
			MediaHotValue:       gofakeit.Float64Range(0, 100),
			InteractionHotValue: gofakeit.Float64Range(0, 100),
		},
	}

	trend := make([]float64, constant.TrendDays)
	for i := range trend {
		trend[i] = float64(gofakeit.Number(0, 2000))
	}
	req.Trend = trend

	numPosts := gofakeit.Number(3, 8)
	posts := make([]dto.TypicalPostItem, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		posts = append(posts, dto.TypicalPostItem{
			Title:        gofakeit.Sentence(gofakeit.Number(4, 12)),
			URL:          gofakeit.URL(),
			Source:       gofakeit.RandomString(seedSources),
			Datetime:     date,
			Heat:         gofakeit.Float64Range(1, 100),
			Autonomy:     gofakeit.Float64Range(0, 1),
			Stimulus:     gofakeit.Float64Range(0, 1),
			Fraternity:   gofakeit.Float64Range(0, 1),
			Friendliness: gofakeit.Float64Range(0, 1),
			Compliance:   gofakeit.Float64Range(0, 1),
			Tradition:    gofakeit.Float64Range(0, 1),
			Security:     gofakeit.Float64Range(0, 1),
			Authority:    gofakeit.Float64Range(0, 1),
			Achievement:  gofakeit.Float64Range(0, 1),
			Hedonism:     gofakeit.Float64Range(0, 1),
		})
	}
	req.TypicalPosts = posts

	groups := make([]dto.PopulationGroupItem, 0, len(seedPopGroups))
	for _, groupName := range seedPopGroups {
		numValues := gofakeit.Number(2, 4)
		values := make([]dto.PopulationValuePair, 0, numValues)
		for i := 0; i < numValues; i++ {
			values = append(values, dto.PopulationValuePair{
				Label: gofakeit.RandomString(seedPopLabels),
				Value: gofakeit.Float64Range(0, 1),
			})
		}
		groups = append(groups, dto.PopulationGroupItem{
			Name:             groupName,
			Value:            gofakeit.Float64Range(0, 1),
			PopulationValues: values,
		})
	}
	req.PopulationComposition = groups

	coloring := make([]dto.ProvinceColoringItem, 0, len(constant.ProvinceIDTable))
	for name, pid := range constant.ProvinceIDTable {
		coloring = append(coloring, dto.ProvinceColoringItem{
			ProvincePID:  pid,
			ProvinceName: name,
			Color:        gofakeit.RandomString(seedColors),
		})
	}
	req.Map = coloring

	return req
}
