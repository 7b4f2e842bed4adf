package service

import (
	"math"
	"sort"

	"github.com/Xushengqwer/opinion_service/analyzer"
	"github.com/Xushengqwer/opinion_service/constant"
	"github.com/Xushengqwer/opinion_service/models/dto"
)

// 价值观服务给缺失发布时间的帖子排序时用的哨兵值，
// 任何合法的 "YYYY-MM-DD ..." 字符串都排在它前面。
const datetimeSentinel = "9999-99-99"

// yuqingLabelMap 把舆情服务的中文预测标签映射为三级预警等级。
var yuqingLabelMap = map[string]string{
	"严重": constant.WarningLevelSevere,
	"中等": constant.WarningLevelModerate,
	"轻微": constant.WarningLevelMinor,
}

// Reconcile 把五个分析服务的原始响应整合成一份入库聚合体。
// - 纯函数：不访问网络与数据库，给定同样的五个响应总是产出同样的聚合体
// - 整合是宽容的：缺失的字段折叠为零值，由后续的结构化校验决定聚合体是否可入库
func Reconcile(emotion, yuqing, hot, value, baseinfo analyzer.Outcome) *dto.AddHotThingRequest {
	emoData := analyzer.Get(emotion.Data, nil, "data")
	emoOutputs := analyzer.Get(emoData, nil, "outputs")
	yuqingOutputs := analyzer.Get(yuqing.Data, nil, "data", "outputs")
	hotOutputs := analyzer.Get(hot.Data, nil, "data", "outputs")
	baseinfoOutputs := analyzer.Get(baseinfo.Data, nil, "data", "outputs")

	// 价值观服务的 outputs 形如 [文件路径, {事件名: {...}}]，取第二个元素里唯一的事件键。
	var valueEventData interface{}
	valueOutputs := analyzer.GetSlice(value.Data, "data", "outputs")
	if len(valueOutputs) >= 2 {
		if eventMap, ok := valueOutputs[1].(map[string]interface{}); ok {
			for _, v := range eventMap {
				valueEventData = v
				break
			}
		}
	}

	// 典型帖子列表在 typical_posts 下再嵌一层数组。
	typicalRaw := analyzer.GetSlice(valueEventData, "typical_posts", 0)

	// 找最早的帖子作为事件的起点；缺失 datetime 的帖子用哨兵值垫底。
	var earliest map[string]interface{}
	earliestKey := datetimeSentinel
	for _, item := range typicalRaw {
		post, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		key := analyzer.GetString(post, datetimeSentinel, "datetime")
		if earliest == nil || key < earliestKey {
			earliest = post
			earliestKey = key
		}
	}

	warningLv := constant.WarningLevelMinor
	if lv, ok := yuqingLabelMap[analyzer.GetString(yuqingOutputs, "轻微", "predicted_label")]; ok {
		warningLv = lv
	}

	hotScore := analyzer.GetFloat(hotOutputs, 0, "hot_score", "raw_score")
	totalPosts := analyzer.GetFloat(baseinfoOutputs, 0, "总帖子数")
	locationRatio := analyzer.GetFloat(baseinfoOutputs, 0, "有定位帖子占比")

	hotThing := &dto.HotThingSection{
		Title:             analyzer.GetString(emoData, "", "event_name"),
		URL:               analyzer.GetString(earliest, "", "url"),
		Source:            analyzer.GetString(earliest, "", "source"),
		Date:              analyzer.GetString(earliest, "", "datetime"),
		Heat:              hotScore,
		WarningLv:         warningLv,
		TotalPosts:        totalPosts,
		TotalUsers:        analyzer.GetFloat(baseinfoOutputs, 0, "总用户数"),
		TotalInteractions: math.Trunc(analyzer.GetFloat(baseinfoOutputs, 0, "总互动数")),
		PostsWithLocation: math.Round(totalPosts * locationRatio),
	}

	emotionCounts := analyzer.Get(emoOutputs, nil, "emotion_counts")
	userEmotion := &dto.UserEmotionSection{
		Positive:  analyzer.GetFloat(emoOutputs, 0, "positive", "count"),
		Negative:  analyzer.GetFloat(emoOutputs, 0, "negative", "count"),
		Like:      analyzer.GetFloat(emotionCounts, 0, "like"),
		Happiness: analyzer.GetFloat(emotionCounts, 0, "happiness"),
		Sadness:   analyzer.GetFloat(emotionCounts, 0, "sadness"),
		Anger:     analyzer.GetFloat(emotionCounts, 0, "anger"),
		Disgust:   analyzer.GetFloat(emotionCounts, 0, "disgust"),
		Fear:      analyzer.GetFloat(emotionCounts, 0, "fear"),
		Surprise:  analyzer.GetFloat(emotionCounts, 0, "surprise"),
	}

	// 热度服务暂时只产出一个综合分，四个分项热度值先统一取综合分。
	eventStats := analyzer.Get(hotOutputs, nil, "event_statistics")
	heat := &dto.HeatSection{
		ForwardCount:        analyzer.GetFloat(eventStats, 0, "total_posts"),
		CommentCount:        analyzer.GetFloat(eventStats, 0, "total_comments"),
		LikeCount:           analyzer.GetFloat(eventStats, 0, "total_likes"),
		CompositeHotScore:   hotScore,
		BaseHotValue:        hotScore,
		MediaHotValue:       hotScore,
		InteractionHotValue: hotScore,
	}

	// 近七天帖子数按 "第1天".."第7天" 逐槽取值，缺失的天补 0，序列总是 7 个元素。
	trendData := analyzer.Get(baseinfoOutputs, nil, "近七天帖子数")
	trend := make([]float64, 0, constant.TrendDays)
	dayKeys := []string{"第1天", "第2天", "第3天", "第4天", "第5天", "第6天", "第7天"}
	for _, day := range dayKeys {
		trend = append(trend, analyzer.GetFloat(trendData, 0, day))
	}

	typicalPosts := make([]dto.TypicalPostItem, 0, len(typicalRaw))
	for _, item := range typicalRaw {
		post, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		typicalPosts = append(typicalPosts, dto.TypicalPostItem{
			Title:        analyzer.GetString(post, "", "title"),
			URL:          analyzer.GetString(post, "", "url"),
			Source:       analyzer.GetString(post, "", "source"),
			Datetime:     analyzer.GetString(post, "", "datetime"),
			Heat:         analyzer.GetFloat(post, 0, "heat"),
			Autonomy:     analyzer.GetFloat(post, 0, "autonomy"),
			Stimulus:     analyzer.GetFloat(post, 0, "stimulus"),
			Fraternity:   analyzer.GetFloat(post, 0, "fraternity"),
			Friendliness: analyzer.GetFloat(post, 0, "friendliness"),
			Compliance:   analyzer.GetFloat(post, 0, "compliance"),
			Tradition:    analyzer.GetFloat(post, 0, "tradition"),
			Security:     analyzer.GetFloat(post, 0, "security"),
			Authority:    analyzer.GetFloat(post, 0, "authority"),
			Achievement:  analyzer.GetFloat(post, 0, "achievement"),
			Hedonism:     analyzer.GetFloat(post, 0, "hedonism"),
		})
	}

	// 人群构成：明细的 name 字段在入库语义里叫 label，这里完成重命名。
	populationRaw := analyzer.GetSlice(valueEventData, "population_composition")
	population := make([]dto.PopulationGroupItem, 0, len(populationRaw))
	for _, item := range populationRaw {
		group, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		valuesRaw := analyzer.GetSlice(group, "population_values")
		values := make([]dto.PopulationValuePair, 0, len(valuesRaw))
		for _, vi := range valuesRaw {
			pair, ok := vi.(map[string]interface{})
			if !ok {
				continue
			}
			values = append(values, dto.PopulationValuePair{
				Label: analyzer.GetString(pair, "", "name"),
				Value: analyzer.GetFloat(pair, 0, "value"),
			})
		}
		population = append(population, dto.PopulationGroupItem{
			Name:             analyzer.GetString(group, "", "name"),
			Value:            analyzer.GetFloat(group, 0, "value"),
			PopulationValues: values,
		})
	}

	// 地域分布：为每个已知省份生成一行，没有数据的省份着中性灰。
	// 按行政区划代码排序，保证输出顺序稳定。
	regionData := analyzer.GetMap(baseinfoOutputs, "地域分布")
	provinceNames := make([]string, 0, len(constant.ProvinceIDTable))
	for name := range constant.ProvinceIDTable {
		provinceNames = append(provinceNames, name)
	}
	sort.Slice(provinceNames, func(i, j int) bool {
		return constant.ProvinceIDTable[provinceNames[i]] < constant.ProvinceIDTable[provinceNames[j]]
	})
	mapItems := make([]dto.ProvinceColoringItem, 0, len(provinceNames))
	for _, name := range provinceNames {
		ratio := analyzer.GetFloat(regionData, 0, name)
		mapItems = append(mapItems, dto.ProvinceColoringItem{
			ProvincePID:  constant.ProvinceIDTable[name],
			ProvinceName: name,
			Color:        colorByRatio(ratio),
		})
	}

	return &dto.AddHotThingRequest{
		HotThing:              hotThing,
		UserEmotion:           userEmotion,
		Heat:                  heat,
		Trend:                 trend,
		TypicalPosts:          typicalPosts,
		PopulationComposition: population,
		Map:                   mapItems,
		WordCloud:             analyzer.GetString(baseinfoOutputs, "", "词云编码"),
	}
}

// colorByRatio 按发帖占比返回地图着色，占比越高颜色越深。
func colorByRatio(ratio float64) string {
	switch {
	case ratio <= 0:
		return "#E0E0E0" // 无数据灰
	case ratio < 0.05:
		return "#BBDEFB"
	case ratio < 0.1:
		return "#64B5F6"
	case ratio < 0.15:
		return "#2196F3"
	case ratio < 0.2:
		return "#1976D2"
	default:
		return "#0D47A1"
	}
}
