package mysql

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Xushengqwer/opinion_service/models/entities"
)

// newTestDB 建一个内存 SQLite 库并建好全部业务表。
// 仓库层的 SQL 都是方言无关的（批量清空除外），用 SQLite 验证足够。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	// 内存库随连接而生，限制单连接保证所有会话看到同一份数据。
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&entities.HotThing{},
		&entities.UserEmotion{},
		&entities.Heat{},
		&entities.Trend{},
		&entities.TypicalPost{},
		&entities.TypicalRadar{},
		&entities.PopulationComposition{},
		&entities.PopulationValue{},
		&entities.ThingProvince{},
		&entities.WordCloud{},
		&entities.Province{},
		&entities.SystemInfo{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func newHotThing(title string) *entities.HotThing {
	return &entities.HotThing{
		Title:     title,
		URL:       "http://example.com/" + title,
		Source:    "新浪微博",
		Date:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Heat:      50,
		WarningLv: "Ⅱ",
	}
}

func TestHotThingRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewHotThingRepository(db)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := repo.Create(ctx, db, newHotThing(fmt.Sprintf("演习事件%d", i))); err != nil {
			t.Fatalf("创建事件失败: %v", err)
		}
	}

	// 列表按 id 倒序且受 limit 约束。
	latest, err := repo.ListLatest(ctx, 4)
	if err != nil {
		t.Fatalf("ListLatest 失败: %v", err)
	}
	if len(latest) != 4 {
		t.Fatalf("最新列表条数 = %d, 期望 4", len(latest))
	}
	for i := 1; i < len(latest); i++ {
		if latest[i-1].ID <= latest[i].ID {
			t.Fatalf("最新列表未按 id 倒序: %d <= %d", latest[i-1].ID, latest[i].ID)
		}
	}
	if latest[0].Title != "演习事件5" {
		t.Fatalf("最新事件 = %q, 期望演习事件5", latest[0].Title)
	}

	// 标题模糊搜索。
	found, err := repo.SearchByTitle(ctx, "事件3", 5)
	if err != nil {
		t.Fatalf("SearchByTitle 失败: %v", err)
	}
	if len(found) != 1 || found[0].Title != "演习事件3" {
		t.Fatalf("搜索结果 = %+v", found)
	}
	none, err := repo.SearchByTitle(ctx, "不存在的关键词", 5)
	if err != nil || len(none) != 0 {
		t.Fatalf("无匹配时应返回空列表: %v %v", none, err)
	}

	// 不存在的 id 映射为 ErrRepoNotFound。
	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("GetByID 未命中应返回 ErrRepoNotFound, 实际: %v", err)
	}

	// 硬删除。
	if err := repo.Delete(ctx, db, latest[0].ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := repo.GetByID(ctx, latest[0].ID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("删除后应查不到记录, 实际: %v", err)
	}
}

func TestUserEmotionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserEmotionRepository(db)
	ctx := context.Background()

	emotion := &entities.UserEmotion{ThingsID: 7, Positive: 10, Negative: 3, Like: 5}
	if err := repo.Create(ctx, db, emotion); err != nil {
		t.Fatalf("创建情感记录失败: %v", err)
	}

	got, err := repo.GetByThingID(ctx, 7)
	if err != nil {
		t.Fatalf("GetByThingID 失败: %v", err)
	}
	if got.Positive != 10 || got.Like != 5 {
		t.Fatalf("情感记录读取错误: %+v", got)
	}

	if _, err := repo.GetByThingID(ctx, 8); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("未命中应返回 ErrRepoNotFound, 实际: %v", err)
	}

	if err := repo.DeleteByThingID(ctx, db, 7); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := repo.GetByThingID(ctx, 7); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("删除后应查不到记录")
	}
}

func TestTrendRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTrendRepository(db)
	ctx := context.Background()

	// 乱序写入，读取时应按天序排好。
	trends := []*entities.Trend{
		{ThingID: 1, Sort: 3, Value: 30},
		{ThingID: 1, Sort: 1, Value: 10},
		{ThingID: 1, Sort: 2, Value: 20},
		{ThingID: 2, Sort: 1, Value: 99},
	}
	if err := repo.BatchCreate(ctx, db, trends); err != nil {
		t.Fatalf("批量创建失败: %v", err)
	}

	got, err := repo.ListByThingID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByThingID 失败: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("趋势行数 = %d, 期望 3", len(got))
	}
	for i, want := range []int64{10, 20, 30} {
		if got[i].Sort != i+1 || got[i].Value != want {
			t.Fatalf("第 %d 行 = {sort:%d value:%d}, 期望 {%d %d}", i, got[i].Sort, got[i].Value, i+1, want)
		}
	}

	if err := repo.DeleteByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	remaining, _ := repo.ListByThingID(ctx, 2)
	if len(remaining) != 1 {
		t.Fatalf("删除不应波及其他事件的趋势, 剩余 %d 行", len(remaining))
	}
}

func TestTypicalPostRadar(t *testing.T) {
	db := newTestDB(t)
	repo := NewTypicalPostRepository(db)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		post := &entities.TypicalPost{
			ThingID:  1,
			Title:    fmt.Sprintf("帖子%d", i),
			URL:      "http://example.com",
			Source:   "知乎",
			Datetime: time.Date(2024, 5, i, 0, 0, 0, 0, time.UTC),
			Heat:     float64(i),
		}
		if err := repo.Create(ctx, db, post); err != nil {
			t.Fatalf("创建典型帖子失败: %v", err)
		}
		radar := &entities.TypicalRadar{TypicalID: post.ID, Autonomy: float64(i) / 10}
		if err := repo.CreateRadar(ctx, db, radar); err != nil {
			t.Fatalf("创建雷达记录失败: %v", err)
		}
	}
	// 其他事件的帖子不应被查出。
	other := &entities.TypicalPost{ThingID: 2, Title: "别的事件", URL: "u", Source: "s", Datetime: time.Now()}
	if err := repo.Create(ctx, db, other); err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}

	// 雷达数据取最新 3 条，按帖子 id 倒序。
	rows, err := repo.ListRadarByThingID(ctx, 1, 3)
	if err != nil {
		t.Fatalf("ListRadarByThingID 失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("雷达行数 = %d, 期望 3", len(rows))
	}
	if rows[0].Title != "帖子4" || rows[2].Title != "帖子2" {
		t.Fatalf("雷达排序错误: %q .. %q", rows[0].Title, rows[2].Title)
	}
	if rows[0].Autonomy != 0.4 {
		t.Fatalf("雷达维度 = %v, 期望 0.4", rows[0].Autonomy)
	}

	posts, err := repo.ListByThingID(ctx, 1, 10)
	if err != nil || len(posts) != 4 {
		t.Fatalf("典型帖子列表 = %d 条 (%v), 期望 4", len(posts), err)
	}
	if posts[0].Title != "帖子4" {
		t.Fatalf("典型帖子应按 id 倒序, 首条 = %q", posts[0].Title)
	}

	// 先删雷达再删帖子，且只影响目标事件。
	if err := repo.DeleteRadarByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除雷达失败: %v", err)
	}
	var radarCount int64
	db.Model(&entities.TypicalRadar{}).Count(&radarCount)
	if radarCount != 0 {
		t.Fatalf("雷达记录应全部删除, 剩余 %d", radarCount)
	}
	if err := repo.DeleteByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除帖子失败: %v", err)
	}
	var postCount int64
	db.Model(&entities.TypicalPost{}).Count(&postCount)
	if postCount != 1 {
		t.Fatalf("其他事件的帖子不应被删除, 剩余 %d", postCount)
	}
}

func TestPopulationRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPopulationRepository(db)
	ctx := context.Background()

	group := &entities.PopulationComposition{ThingID: 1, Name: "性别", Value: 0.6}
	if err := repo.CreateGroup(ctx, db, group); err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	values := []*entities.PopulationValue{
		{PopulationID: group.ID, Label: "男", Value: 0.7},
		{PopulationID: group.ID, Label: "女", Value: 0.3},
	}
	if err := repo.BatchCreateValues(ctx, db, values); err != nil {
		t.Fatalf("批量创建明细失败: %v", err)
	}
	otherGroup := &entities.PopulationComposition{ThingID: 2, Name: "年龄", Value: 0.4}
	if err := repo.CreateGroup(ctx, db, otherGroup); err != nil {
		t.Fatalf("创建分组失败: %v", err)
	}
	otherValues := []*entities.PopulationValue{{PopulationID: otherGroup.ID, Label: "18-25", Value: 0.5}}
	if err := repo.BatchCreateValues(ctx, db, otherValues); err != nil {
		t.Fatalf("批量创建明细失败: %v", err)
	}

	groups, err := repo.ListGroupsByThingID(ctx, 1)
	if err != nil || len(groups) != 1 || groups[0].Name != "性别" {
		t.Fatalf("分组列表 = %+v (%v)", groups, err)
	}
	gotValues, err := repo.ListValuesByPopulationID(ctx, group.ID)
	if err != nil || len(gotValues) != 2 {
		t.Fatalf("明细列表 = %d 条 (%v), 期望 2", len(gotValues), err)
	}

	// 通过子查询按事件删除明细，不应波及其他事件的分组。
	if err := repo.DeleteValuesByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除明细失败: %v", err)
	}
	var valueCount int64
	db.Model(&entities.PopulationValue{}).Count(&valueCount)
	if valueCount != 1 {
		t.Fatalf("只应删除目标事件的明细, 剩余 %d", valueCount)
	}
	if err := repo.DeleteGroupsByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除分组失败: %v", err)
	}
	remaining, _ := repo.ListGroupsByThingID(ctx, 2)
	if len(remaining) != 1 {
		t.Fatalf("其他事件的分组不应被删除")
	}
}

func TestThingProvinceColors(t *testing.T) {
	db := newTestDB(t)
	repo := NewThingProvinceRepository(db)
	ctx := context.Background()

	provinces := []*entities.Province{
		{PID: "110000", Name: "北京"},
		{PID: "310000", Name: "上海"},
	}
	provinceRepo := NewProvinceRepository(db)
	if err := provinceRepo.BatchUpsert(ctx, provinces); err != nil {
		t.Fatalf("写入省份参考数据失败: %v", err)
	}
	// 播种是幂等的，重复写入不报错也不翻倍。
	if err := provinceRepo.BatchUpsert(ctx, provinces); err != nil {
		t.Fatalf("重复播种失败: %v", err)
	}
	var provinceCount int64
	db.Model(&entities.Province{}).Count(&provinceCount)
	if provinceCount != 2 {
		t.Fatalf("省份参考行数 = %d, 期望 2", provinceCount)
	}
	rows := []*entities.ThingProvince{
		{ThingID: 1, ProvincePID: "110000", Color: "#0D47A1"},
		{ThingID: 1, ProvincePID: "310000", Color: "#E0E0E0"},
	}
	if err := repo.BatchCreate(ctx, db, rows); err != nil {
		t.Fatalf("批量创建着色失败: %v", err)
	}

	colors, err := repo.ListColorsByThingID(ctx, 1)
	if err != nil {
		t.Fatalf("ListColorsByThingID 失败: %v", err)
	}
	if len(colors) != 2 {
		t.Fatalf("着色行数 = %d, 期望 2", len(colors))
	}
	byName := map[string]string{}
	for _, row := range colors {
		byName[row.Name] = row.Color
	}
	if byName["北京"] != "#0D47A1" || byName["上海"] != "#E0E0E0" {
		t.Fatalf("着色联表结果错误: %v", byName)
	}

	if err := repo.DeleteByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	empty, _ := repo.ListColorsByThingID(ctx, 1)
	if len(empty) != 0 {
		t.Fatalf("删除后不应再有着色行")
	}
}

func TestWordCloudRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewWordCloudRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByThingID(ctx, 1); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("词云缺失应返回 ErrRepoNotFound, 实际: %v", err)
	}

	if err := repo.Create(ctx, db, &entities.WordCloud{ThingID: 1, Img: "aW1hZ2U="}); err != nil {
		t.Fatalf("创建词云失败: %v", err)
	}
	got, err := repo.GetByThingID(ctx, 1)
	if err != nil || got.Img != "aW1hZ2U=" {
		t.Fatalf("词云读取错误: %+v (%v)", got, err)
	}

	if err := repo.DeleteByThingID(ctx, db, 1); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if _, err := repo.GetByThingID(ctx, 1); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("删除后应查不到词云")
	}
}

func TestSystemInfoRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSystemInfoRepository(db)
	ctx := context.Background()

	if _, err := repo.Get(ctx); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("空表应返回 ErrRepoNotFound, 实际: %v", err)
	}

	if err := repo.Create(ctx, &entities.SystemInfo{StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), MonitoredTotal: 12}); err != nil {
		t.Fatalf("创建系统概况失败: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil || count != 1 {
		t.Fatalf("Count = %d (%v), 期望 1", count, err)
	}
	got, err := repo.Get(ctx)
	if err != nil || got.MonitoredTotal != 12 {
		t.Fatalf("系统概况读取错误: %+v (%v)", got, err)
	}
}
