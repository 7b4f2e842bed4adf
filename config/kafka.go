package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

type Topics struct {
	HotThingPersisted string `mapstructure:"hotThingPersisted" yaml:"hotThingPersisted"` // 事件入库完成主题
	HotThingDeleted   string `mapstructure:"hotThingDeleted" yaml:"hotThingDeleted"`     // 事件删除主题
}
