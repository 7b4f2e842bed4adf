package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Xushengqwer/opinion_service/models/dto"
	"github.com/Xushengqwer/opinion_service/models/entities"
	"github.com/Xushengqwer/opinion_service/repo/mysql"
)

// newWriteTestDB 建一个内存 SQLite 库并建好全部业务表。
// 内存库随连接而生，限制单连接，保证事务内外看到的是同一份数据。
func newWriteTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
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

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	zl, err := core.NewZapLogger(commonConfig.ZapConfig{Level: "fatal", Encoding: "json"})
	if err != nil {
		t.Fatalf("创建测试日志器失败: %v", err)
	}
	return zl
}

// newWriteService 把写路径服务接在真实仓库与内存库上，缓存与 Kafka 不配置。
func newWriteService(t *testing.T, db *gorm.DB) HotThingService {
	t.Helper()
	return NewHotThingService(
		db,
		mysql.NewHotThingRepository(db),
		mysql.NewUserEmotionRepository(db),
		mysql.NewHeatRepository(db),
		mysql.NewTrendRepository(db),
		mysql.NewTypicalPostRepository(db),
		mysql.NewPopulationRepository(db),
		mysql.NewThingProvinceRepository(db),
		mysql.NewWordCloudRepository(db),
		mysql.NewMaintenanceRepository(db),
		nil,
		nil,
		newTestLogger(t),
	)
}

// fullAggregate 构造一份覆盖全部十张表的聚合体。
func fullAggregate(title string) *dto.AddHotThingRequest {
	return &dto.AddHotThingRequest{
		HotThing: &dto.HotThingSection{
			Title:             title,
			URL:               "http://weibo.com/" + title,
			Source:            "新浪微博",
			Date:              "2024-05-01 09:00:00",
			Heat:              87.5,
			WarningLv:         "Ⅱ",
			TotalPosts:        100,
			TotalUsers:        88,
			TotalInteractions: 1234,
			PostsWithLocation: 31,
		},
		UserEmotion: &dto.UserEmotionSection{Positive: 120, Negative: 80, Like: 30},
		Heat:        &dto.HeatSection{ForwardCount: 200, CommentCount: 450, LikeCount: 900, CompositeHotScore: 87.5},
		Trend:       []float64{5, 0, 7, 0, 0, 0, 0},
		TypicalPosts: []dto.TypicalPostItem{
			{Title: title + "-帖子A", URL: "http://a", Source: "新浪微博", Datetime: "2024-05-02 10:00:00", Heat: 60, Autonomy: 0.4},
			{Title: title + "-帖子B", URL: "http://b", Source: "知乎", Datetime: "2024-05-01 09:00:00", Heat: 40},
		},
		PopulationComposition: []dto.PopulationGroupItem{
			{Name: "性别", Value: 0.6, PopulationValues: []dto.PopulationValuePair{
				{Label: "男", Value: 0.7},
				{Label: "女", Value: 0.3},
			}},
		},
		Map: []dto.ProvinceColoringItem{
			{ProvincePID: "110000", ProvinceName: "北京", Color: "#0D47A1"},
			{ProvincePID: "310000", ProvinceName: "上海", Color: "#64B5F6"},
		},
		WordCloud: "aW1hZ2U=",
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("统计 %T 行数失败: %v", model, err)
	}
	return count
}

func TestAddHotThingPersistsWholeTree(t *testing.T) {
	db := newWriteTestDB(t)
	svc := newWriteService(t, db)
	ctx := context.Background()

	created, err := svc.AddHotThing(ctx, fullAggregate("整树入库"))
	if err != nil {
		t.Fatalf("入库失败: %v", err)
	}
	if created.ThingID == 0 {
		t.Fatalf("入库后应返回主记录 ID")
	}

	cases := []struct {
		model interface{}
		want  int64
	}{
		{&entities.HotThing{}, 1},
		{&entities.UserEmotion{}, 1},
		{&entities.Heat{}, 1},
		{&entities.Trend{}, 7},
		{&entities.TypicalPost{}, 2},
		{&entities.TypicalRadar{}, 2},
		{&entities.PopulationComposition{}, 1},
		{&entities.PopulationValue{}, 2},
		{&entities.ThingProvince{}, 2},
		{&entities.WordCloud{}, 1},
	}
	for _, tc := range cases {
		if got := countRows(t, db, tc.model); got != tc.want {
			t.Errorf("%T 行数 = %d, 期望 %d", tc.model, got, tc.want)
		}
	}
}

func TestAddHotThingAllOrNothing(t *testing.T) {
	db := newWriteTestDB(t)
	svc := newWriteService(t, db)
	ctx := context.Background()

	// 删掉事务中段依赖的表，制造第五步写入失败。
	if err := db.Migrator().DropTable(&entities.TypicalRadar{}); err != nil {
		t.Fatalf("删除 typical_radar 表失败: %v", err)
	}

	if _, err := svc.AddHotThing(ctx, fullAggregate("半途失败")); err == nil {
		t.Fatalf("雷达表缺失时入库应失败")
	}

	// 失败前已插入的主记录、情感、热度、趋势、帖子必须全部回滚。
	for _, model := range []interface{}{
		&entities.HotThing{},
		&entities.UserEmotion{},
		&entities.Heat{},
		&entities.Trend{},
		&entities.TypicalPost{},
		&entities.PopulationComposition{},
		&entities.PopulationValue{},
		&entities.ThingProvince{},
		&entities.WordCloud{},
	} {
		if got := countRows(t, db, model); got != 0 {
			t.Errorf("回滚后 %T 仍有 %d 行", model, got)
		}
	}
}

func TestDeleteHotThingCascade(t *testing.T) {
	db := newWriteTestDB(t)
	svc := newWriteService(t, db)
	ctx := context.Background()

	first, err := svc.AddHotThing(ctx, fullAggregate("待删除"))
	if err != nil {
		t.Fatalf("入库第一个事件失败: %v", err)
	}
	second, err := svc.AddHotThing(ctx, fullAggregate("幸存者"))
	if err != nil {
		t.Fatalf("入库第二个事件失败: %v", err)
	}

	if err := svc.DeleteHotThing(ctx, first.ThingID); err != nil {
		t.Fatalf("级联删除失败: %v", err)
	}

	// 被删事件的整棵子树消失，幸存事件的从属记录原封不动。
	cases := []struct {
		model interface{}
		want  int64
	}{
		{&entities.HotThing{}, 1},
		{&entities.UserEmotion{}, 1},
		{&entities.Heat{}, 1},
		{&entities.Trend{}, 7},
		{&entities.TypicalPost{}, 2},
		{&entities.TypicalRadar{}, 2},
		{&entities.PopulationComposition{}, 1},
		{&entities.PopulationValue{}, 2},
		{&entities.ThingProvince{}, 2},
		{&entities.WordCloud{}, 1},
	}
	for _, tc := range cases {
		if got := countRows(t, db, tc.model); got != tc.want {
			t.Errorf("删除后 %T 行数 = %d, 期望幸存事件保留 %d 行", tc.model, got, tc.want)
		}
	}

	var survivorTrends int64
	if err := db.Model(&entities.Trend{}).Where("thing_id = ?", second.ThingID).Count(&survivorTrends).Error; err != nil {
		t.Fatalf("统计幸存趋势行失败: %v", err)
	}
	if survivorTrends != 7 {
		t.Fatalf("幸存事件的趋势行 = %d, 期望 7", survivorTrends)
	}

	// 重复删除同一事件应报不存在。
	if err := svc.DeleteHotThing(ctx, first.ThingID); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("删除不存在的事件应返回 ErrRepoNotFound, 实际: %v", err)
	}
}

func TestDeleteHotThingNotFound(t *testing.T) {
	db := newWriteTestDB(t)
	svc := newWriteService(t, db)

	err := svc.DeleteHotThing(context.Background(), 9999)
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Fatalf("期望 ErrRepoNotFound, 实际: %v", err)
	}
}
