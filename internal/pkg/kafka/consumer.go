// Package kafka оборачивает sarama consumer group: сборка конфига,
// ожидание доступности брокеров и цикл потребления.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"cargoflash/internal/pkg/config"
	"cargoflash/pkg/logger"
	"cargoflash/pkg/retrier"
	"cargoflash/pkg/retrier/backoff_adapter"
)

var pingRetryConfig = retrier.Config{
	InitialInterval: 1 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
	ShouldRetry:     nil,
}

type Consumer struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}

	cfg := sarama.NewConfig()
	cfg.Version = version
	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.Strategy = rebalanceStrategy

	return cfg, nil
}

func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	brokers []string,
	groupID string,
	topics []string,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	group, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	consumerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	if err := waitForBrokers(ctx, consumerLog, brokers, saramaConfig); err != nil {
		if closeErr := group.Close(); closeErr != nil {
			return nil, fmt.Errorf("kafka connection: %w (close consumer group: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	return &Consumer{
		log:     consumerLog,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx. Consume возвращается на каждом
// ребалансе группы, поэтому крутится в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	for {
		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("consumer group session failed")
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

// waitForBrokers пингует кластер запросом метаданных: сервис в compose
// обычно стартует раньше брокеров.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	r := backoff_adapter.New(pingRetryConfig)

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting kafka connection")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("close kafka client",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("kafka connection failed after retries")
		return fmt.Errorf("connect to kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("kafka connection established")
	return nil
}
