// Package notification публикует события смены статуса доставки в Kafka.
// Потребители — внешние каналы уведомлений (email, push), сам сервис на
// эти события не подписан.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"cargoflash/internal/entities"
	"cargoflash/pkg/logger"
)

type statusChangedEvent struct {
	EventID        string    `json:"event_id"`
	DeliveryID     int64     `json:"delivery_id"`
	TrackingCode   string    `json:"tracking_code"`
	RecipientName  string    `json:"recipient_name"`
	RecipientPhone string    `json:"recipient_phone"`
	OldStatus      string    `json:"old_status"`
	NewStatus      string    `json:"new_status"`
	Location       string    `json:"location"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

// New собирает продюсер уведомлений. Пустой список брокеров — валидная
// конфигурация: возвращается no-op продюсер, и HTTP-сервис работает
// без Kafka.
func New(log logger.Logger, brokers string, topic string) (*Producer, error) {
	if brokers == "" {
		log.Info("kafka notifications disabled: no brokers configured")
		return &Producer{log: log}, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *Producer) NotifyStatusChange(ctx context.Context, delivery *entities.Delivery, oldStatus, newStatus entities.DeliveryStatusType) error {
	if p.producer == nil {
		return nil
	}

	event := statusChangedEvent{
		EventID:        uuid.New().String(),
		DeliveryID:     delivery.ID,
		TrackingCode:   delivery.TrackingCode,
		RecipientName:  delivery.RecipientName,
		RecipientPhone: delivery.RecipientPhone,
		OldStatus:      oldStatus.String(),
		NewStatus:      newStatus.String(),
		Location:       delivery.CurrentLoc,
		OccurredAt:     time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(delivery.TrackingCode),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte("delivery.status.changed"),
			},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send notification to topic %s: %w", p.topic, err)
	}

	p.log.With(
		logger.NewField("tracking_code", delivery.TrackingCode),
		logger.NewField("new_status", newStatus.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("delivery.status.changed published")

	return nil
}

func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
