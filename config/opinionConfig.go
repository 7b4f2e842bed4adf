package config

import "github.com/Xushengqwer/go-common/config"

type OpinionConfig struct {
	ZapConfig      config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig  config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig   config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig   config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig    MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig    RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig    KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	AnalyzerConfig AnalyzerConfig       `mapstructure:"analyzerConfig" json:"analyzerConfig" yaml:"analyzerConfig"`
	PipelineConfig PipelineConfig       `mapstructure:"pipelineConfig" json:"pipelineConfig" yaml:"pipelineConfig"`
	COSConfig      COSConfig            `mapstructure:"eventArchiveCosConfig" json:"eventArchiveCosConfig" yaml:"eventArchiveCosConfig"`
}
