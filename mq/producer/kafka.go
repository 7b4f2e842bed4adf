package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/opinion_service/config"
)

// HotThingPersistedEvent 事件入库完成后发布的通知，供下游（告警推送、全文索引）消费。
type HotThingPersistedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	ThingID   uint64    `json:"thing_id"`
	Title     string    `json:"title"`
	Heat      float64   `json:"heat"`
	WarningLv string    `json:"warning_lv"`
}

// HotThingDeletedEvent 事件删除后发布的通知。
type HotThingDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	ThingID   uint64    `json:"thing_id"`
}

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(cfg config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: cfg.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Kafka 事件序列化失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Kafka 消息发送失败", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Kafka 消息发送成功", zap.String("topic", topic))
	}
	return err
}

// SendHotThingPersistedEvent 发送事件入库完成通知
// - 在聚合管线/爬虫路径成功落库之后异步调用，失败只记日志不影响主流程
func (p *KafkaProducer) SendHotThingPersistedEvent(ctx context.Context, thingID uint64, title string, heat float64, warningLv string) error {
	event := HotThingPersistedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		ThingID:   thingID,
		Title:     title,
		Heat:      heat,
		WarningLv: warningLv,
	}
	return p.SendEvent(ctx, p.topics.HotThingPersisted, event)
}

// SendHotThingDeletedEvent 发送事件删除通知
func (p *KafkaProducer) SendHotThingDeletedEvent(ctx context.Context, thingID uint64) error {
	event := HotThingDeletedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		ThingID:   thingID,
	}
	return p.SendEvent(ctx, p.topics.HotThingDeleted, event)
}

// Close 关闭底层 writer，进程退出前调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
