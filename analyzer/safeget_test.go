package analyzer

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("测试数据解析失败: %v", err)
	}
	return v
}

func TestGetTraversesMixedPath(t *testing.T) {
	v := decode(t, `{"data":{"outputs":{"events":[{"name":"高校食堂卫生事件","heat":87.5}]}}}`)

	if got := GetString(v, "", "data", "outputs", "events", 0, "name"); got != "高校食堂卫生事件" {
		t.Fatalf("字符串取值错误: %q", got)
	}
	if got := GetFloat(v, 0, "data", "outputs", "events", 0, "heat"); got != 87.5 {
		t.Fatalf("数值取值错误: %v", got)
	}
}

func TestGetMissingPathReturnsDefault(t *testing.T) {
	v := decode(t, `{"data":{"outputs":{}}}`)

	if got := GetString(v, "兜底", "data", "outputs", "title"); got != "兜底" {
		t.Fatalf("缺失键应返回默认值，实际 %q", got)
	}
	if got := GetFloat(v, -1, "data", "missing", 3, "x"); got != -1 {
		t.Fatalf("中途断链应返回默认值，实际 %v", got)
	}
	if got := GetInt64(v, 42, "nope"); got != 42 {
		t.Fatalf("缺失整数应返回默认值，实际 %v", got)
	}
}

func TestGetTypeMismatchReturnsDefault(t *testing.T) {
	v := decode(t, `{"count":"十","items":{"k":1}}`)

	// 值存在但类型不符，同样走默认值。
	if got := GetFloat(v, 0, "count"); got != 0 {
		t.Fatalf("类型不符应返回默认值，实际 %v", got)
	}
	// 对 map 用下标、对非切片取下标都不恐慌。
	if got := Get(v, nil, "items", 0); got != nil {
		t.Fatalf("map 上用下标应返回默认值，实际 %v", got)
	}
	if got := Get(v, nil, "count", 2); got != nil {
		t.Fatalf("字符串上取下标应返回默认值，实际 %v", got)
	}
}

func TestGetIndexOutOfRange(t *testing.T) {
	v := decode(t, `{"list":[1,2]}`)

	if got := GetInt64(v, -1, "list", 5); got != -1 {
		t.Fatalf("下标越界应返回默认值，实际 %v", got)
	}
	if got := GetInt64(v, -1, "list", -1); got != -1 {
		t.Fatalf("负下标应返回默认值，实际 %v", got)
	}
	if got := GetInt64(v, 0, "list", 1); got != 2 {
		t.Fatalf("合法下标取值错误: %v", got)
	}
}

func TestGetMapAndSliceNeverNilMap(t *testing.T) {
	v := decode(t, `{"region":{"北京":0.4}}`)

	m := GetMap(v, "region")
	if m["北京"] != 0.4 {
		t.Fatalf("GetMap 取值错误: %v", m)
	}
	if m := GetMap(v, "missing"); m == nil {
		t.Fatal("GetMap 缺失路径应返回空 map 而非 nil")
	}
	if s := GetSlice(v, "region"); s != nil {
		t.Fatalf("对象不应当作切片返回，实际 %v", s)
	}
}

func TestGetNullCollapsesToDefault(t *testing.T) {
	v := decode(t, `{"word_cloud":null}`)

	if got := GetString(v, "", "word_cloud"); got != "" {
		t.Fatalf("JSON null 应折叠为默认值，实际 %q", got)
	}
}
