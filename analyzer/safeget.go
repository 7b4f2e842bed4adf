package analyzer

// 分析服务的响应是弱契约 JSON：字段可能缺失、类型可能漂移。
// 本文件提供按路径容错取值的辅助函数，任何一步取不到都返回默认值，
// 调和阶段借此把「缺字段」统一折叠为零值而不是中断整个事件。

// Get 沿 steps 逐级深入解码后的 JSON 树。
// step 为 string 时按 map 键取值，为 int 时按切片下标取值；
// 类型不匹配、键不存在、下标越界均返回 def。
func Get(v interface{}, def interface{}, steps ...interface{}) interface{} {
	cur := v
	for _, step := range steps {
		switch key := step.(type) {
		case string:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return def
			}
			cur, ok = m[key]
			if !ok {
				return def
			}
		case int:
			s, ok := cur.([]interface{})
			if !ok || key < 0 || key >= len(s) {
				return def
			}
			cur = s[key]
		default:
			return def
		}
	}
	if cur == nil {
		return def
	}
	return cur
}

// GetString 按路径取字符串，非字符串按 def 处理。
func GetString(v interface{}, def string, steps ...interface{}) string {
	if s, ok := Get(v, nil, steps...).(string); ok {
		return s
	}
	return def
}

// GetFloat 按路径取数值。
// encoding/json 把数字统一解码为 float64，这里额外兼容显式的 int。
func GetFloat(v interface{}, def float64, steps ...interface{}) float64 {
	switch n := Get(v, nil, steps...).(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return def
	}
}

// GetInt64 按路径取整数，浮点值直接截断。
func GetInt64(v interface{}, def int64, steps ...interface{}) int64 {
	switch n := Get(v, nil, steps...).(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	default:
		return def
	}
}

// GetMap 按路径取对象，取不到时返回空 map（调用方可以直接 range）。
func GetMap(v interface{}, steps ...interface{}) map[string]interface{} {
	if m, ok := Get(v, nil, steps...).(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// GetSlice 按路径取数组，取不到时返回空切片。
func GetSlice(v interface{}, steps ...interface{}) []interface{} {
	if s, ok := Get(v, nil, steps...).([]interface{}); ok {
		return s
	}
	return nil
}
