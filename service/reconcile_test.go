package service

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/Xushengqwer/opinion_service/analyzer"
	"github.com/Xushengqwer/opinion_service/constant"
)

func mustJSON(t *testing.T, raw string) analyzer.Outcome {
	t.Helper()
	var data interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("解析测试 JSON 失败: %v", err)
	}
	return analyzer.Outcome{OK: true, StatusCode: 200, Data: data}
}

func TestReconcileFullAggregate(t *testing.T) {
	emotion := mustJSON(t, `{
		"data": {
			"event_name": "测试事件",
			"outputs": {
				"positive": {"count": 120},
				"negative": {"count": 80},
				"emotion_counts": {
					"like": 30, "happiness": 25, "sadness": 10,
					"anger": 8, "disgust": 4, "fear": 2, "surprise": 1
				}
			}
		}
	}`)
	yuqing := mustJSON(t, `{"data": {"outputs": {"predicted_label": "严重"}}}`)
	hot := mustJSON(t, `{
		"data": {
			"outputs": {
				"hot_score": {"raw_score": 87.5},
				"event_statistics": {"total_posts": 200, "total_comments": 450, "total_likes": 900}
			}
		}
	}`)
	value := mustJSON(t, `{
		"data": {
			"outputs": [
				"/tmp/result.json",
				{
					"测试事件": {
						"typical_posts": [[
							{"title": "帖子A", "url": "http://a", "source": "新浪微博",
							 "datetime": "2024-05-02 10:00:00", "heat": 60,
							 "autonomy": 0.1, "stimulus": 0.2, "fraternity": 0.3,
							 "friendliness": 0.4, "compliance": 0.5, "tradition": 0.6,
							 "security": 0.7, "authority": 0.8, "achievement": 0.9, "hedonism": 1.0},
							{"title": "帖子B", "url": "http://b", "source": "知乎",
							 "datetime": "2024-05-01 09:00:00", "heat": 40}
						]],
						"population_composition": [
							{"name": "性别", "value": 0.6,
							 "population_values": [
								{"name": "男", "value": 0.7},
								{"name": "女", "value": 0.3}
							 ]}
						]
					}
				}
			]
		}
	}`)
	baseinfo := mustJSON(t, `{
		"data": {
			"outputs": {
				"总帖子数": 100,
				"总用户数": 88,
				"总互动数": 1234.9,
				"有定位帖子占比": 0.305,
				"近七天帖子数": {"第1天": 5, "第3天": 7},
				"地域分布": {"北京": 0.25, "上海": 0.08},
				"词云编码": "aW1hZ2U="
			}
		}
	}`)

	req := Reconcile(emotion, yuqing, hot, value, baseinfo)

	if req.HotThing.Title != "测试事件" {
		t.Fatalf("标题 = %q, 期望 %q", req.HotThing.Title, "测试事件")
	}
	// 起始时间应取 datetime 最早的典型帖子。
	if req.HotThing.Date != "2024-05-01 09:00:00" || req.HotThing.URL != "http://b" || req.HotThing.Source != "知乎" {
		t.Fatalf("最早帖子提取错误: date=%q url=%q source=%q", req.HotThing.Date, req.HotThing.URL, req.HotThing.Source)
	}
	if req.HotThing.WarningLv != constant.WarningLevelSevere {
		t.Fatalf("预警等级 = %q, 期望 %q", req.HotThing.WarningLv, constant.WarningLevelSevere)
	}
	if req.HotThing.Heat != 87.5 || req.Heat.CompositeHotScore != 87.5 {
		t.Fatalf("热度分提取错误: %v / %v", req.HotThing.Heat, req.Heat.CompositeHotScore)
	}
	// 总互动数向零截断，带定位帖子数四舍五入。
	if req.HotThing.TotalInteractions != 1234 {
		t.Fatalf("总互动数 = %v, 期望 1234", req.HotThing.TotalInteractions)
	}
	if req.HotThing.PostsWithLocation != 31 {
		t.Fatalf("带定位帖子数 = %v, 期望 round(100*0.305)=31", req.HotThing.PostsWithLocation)
	}

	if req.UserEmotion.Positive != 120 || req.UserEmotion.Negative != 80 || req.UserEmotion.Like != 30 {
		t.Fatalf("情感计数提取错误: %+v", req.UserEmotion)
	}
	if req.Heat.ForwardCount != 200 || req.Heat.CommentCount != 450 || req.Heat.LikeCount != 900 {
		t.Fatalf("热度计数提取错误: %+v", req.Heat)
	}

	wantTrend := []float64{5, 0, 7, 0, 0, 0, 0}
	if !reflect.DeepEqual(req.Trend, wantTrend) {
		t.Fatalf("趋势序列 = %v, 期望 %v", req.Trend, wantTrend)
	}

	if len(req.TypicalPosts) != 2 {
		t.Fatalf("典型帖子数 = %d, 期望 2", len(req.TypicalPosts))
	}
	if req.TypicalPosts[0].Hedonism != 1.0 || req.TypicalPosts[0].Autonomy != 0.1 {
		t.Fatalf("价值观维度提取错误: %+v", req.TypicalPosts[0])
	}

	if len(req.PopulationComposition) != 1 {
		t.Fatalf("人群分组数 = %d, 期望 1", len(req.PopulationComposition))
	}
	// 明细的 name 字段应重命名为 label。
	values := req.PopulationComposition[0].PopulationValues
	if len(values) != 2 || values[0].Label != "男" || values[1].Label != "女" {
		t.Fatalf("人群明细重命名错误: %+v", values)
	}

	if len(req.Map) != len(constant.ProvinceIDTable) {
		t.Fatalf("地域分布条目数 = %d, 期望覆盖全部 %d 个省份", len(req.Map), len(constant.ProvinceIDTable))
	}
	colors := make(map[string]string, len(req.Map))
	for _, item := range req.Map {
		colors[item.ProvinceName] = item.Color
	}
	if colors["北京"] != "#0D47A1" {
		t.Fatalf("北京着色 = %q, 期望最深色", colors["北京"])
	}
	if colors["上海"] != "#64B5F6" {
		t.Fatalf("上海着色 = %q, 期望 #64B5F6", colors["上海"])
	}
	if colors["西藏"] != "#E0E0E0" {
		t.Fatalf("无数据省份着色 = %q, 期望中性灰", colors["西藏"])
	}
	// 输出按行政区划代码排序。
	for i := 1; i < len(req.Map); i++ {
		if req.Map[i-1].ProvincePID >= req.Map[i].ProvincePID {
			t.Fatalf("地域分布未按行政区划代码排序: %q >= %q", req.Map[i-1].ProvincePID, req.Map[i].ProvincePID)
		}
	}

	if req.WordCloud != "aW1hZ2U=" {
		t.Fatalf("词云编码 = %q", req.WordCloud)
	}
}

func TestReconcileEmptyOutcomes(t *testing.T) {
	empty := analyzer.Outcome{OK: true, StatusCode: 200, Data: map[string]interface{}{}}

	req := Reconcile(empty, empty, empty, empty, empty)

	if req.HotThing.Title != "" || req.HotThing.Date != "" {
		t.Fatalf("空响应不应产出标题或时间: %+v", req.HotThing)
	}
	// 舆情标签缺失时按最轻级别兜底。
	if req.HotThing.WarningLv != constant.WarningLevelMinor {
		t.Fatalf("预警等级兜底 = %q, 期望 %q", req.HotThing.WarningLv, constant.WarningLevelMinor)
	}
	if len(req.Trend) != constant.TrendDays {
		t.Fatalf("趋势序列长度 = %d, 期望 %d", len(req.Trend), constant.TrendDays)
	}
	for i, v := range req.Trend {
		if v != 0 {
			t.Fatalf("趋势第 %d 槽 = %v, 期望 0", i, v)
		}
	}
	if len(req.TypicalPosts) != 0 || len(req.PopulationComposition) != 0 {
		t.Fatalf("空响应不应产出典型帖子或人群分组")
	}
	if len(req.Map) != len(constant.ProvinceIDTable) {
		t.Fatalf("地域分布仍应覆盖全部省份, 实际 %d", len(req.Map))
	}
	for _, item := range req.Map {
		if item.Color != "#E0E0E0" {
			t.Fatalf("%s 着色 = %q, 期望中性灰", item.ProvinceName, item.Color)
		}
	}
}

func TestReconcileDeterministic(t *testing.T) {
	baseinfo := mustJSON(t, `{"data": {"outputs": {"地域分布": {"广东": 0.12, "湖南": 0.03}}}}`)
	empty := analyzer.Outcome{OK: true}

	first := Reconcile(empty, empty, empty, empty, baseinfo)
	second := Reconcile(empty, empty, empty, empty, baseinfo)

	if !reflect.DeepEqual(first.Map, second.Map) {
		t.Fatalf("同样的输入应产出同样顺序的地域分布")
	}
}

func TestColorByRatio(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{0, "#E0E0E0"},
		{-0.1, "#E0E0E0"},
		{0.01, "#BBDEFB"},
		{0.05, "#64B5F6"},
		{0.1, "#2196F3"},
		{0.15, "#1976D2"},
		{0.2, "#0D47A1"},
		{0.9, "#0D47A1"},
	}
	for _, tc := range cases {
		if got := colorByRatio(tc.ratio); got != tc.want {
			t.Errorf("colorByRatio(%v) = %q, 期望 %q", tc.ratio, got, tc.want)
		}
	}
}
