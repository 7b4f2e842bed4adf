package config

// SourceConfig 描述一个 MySQL 实例（主库或某个从库）的接入方式。
// 连接池三项是可选覆盖：留空时沿用 MySQLConfig 里的共享默认值，
// 用指针是为了区分「没配」和「配成了 0」。
type SourceConfig struct {
	DSN             string `mapstructure:"dsn" yaml:"dsn"`
	MaxIdleConns    *int   `mapstructure:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int   `mapstructure:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int   `mapstructure:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 是本服务的数据库拓扑配置。
// 写路径（聚合管线入库、级联删除）永远走主库；
// Read 配了从库时，大屏轮询那类读请求由 dbresolver 轮询分摊，
// 留空则读写都落在主库上。
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" yaml:"write"`
	Read  []SourceConfig `mapstructure:"read" yaml:"read"`

	// 共享连接池默认值，单个源可以用自己的指针字段覆盖。
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" yaml:"max_idle_conn"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conn" yaml:"max_open_conn"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒
}
