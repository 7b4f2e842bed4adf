package config

// RedisConfig Redis 连接配置。
// - 本服务仅把 Redis 用作大屏读接口的缓存层，连接配置保持最小化。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 为空表示无密码
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号

	// TTLSeconds 是热点事件列表缓存的过期时间（秒），0 表示使用 10 分钟默认值。
	TTLSeconds int `mapstructure:"ttlSeconds" json:"ttlSeconds" yaml:"ttlSeconds"`
}
