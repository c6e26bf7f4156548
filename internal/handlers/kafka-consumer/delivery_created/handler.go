package delivery_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"cargoflash/internal/entities"
	deliveryservice "cargoflash/internal/service/delivery"
	"cargoflash/pkg/logger"
)

// createdEvent — сообщение от внешних интеграций (плагин магазина),
// запрашивающее создание доставки.
type createdEvent struct {
	SenderName     string `json:"sender_name"`
	SenderPhone    string `json:"sender_phone"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	OriginAddress  string `json:"origin_address"`
	DestAddress    string `json:"destination_address"`
	PackageInfo    string `json:"package_info"`
	AutoSimulate   bool   `json:"auto_simulate"`
}

type Handler struct {
	deliveryService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, deliveryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		deliveryService:          deliveryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("delivery.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("recipient", event.RecipientName),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.created processing")

	deliveryModify := entities.DeliveryModify{
		SenderName:     &event.SenderName,
		SenderPhone:    &event.SenderPhone,
		RecipientName:  &event.RecipientName,
		RecipientPhone: &event.RecipientPhone,
		OriginAddress:  &event.OriginAddress,
		DestAddress:    &event.DestAddress,
		PackageInfo:    &event.PackageInfo,
		AutoSimulate:   &event.AutoSimulate,
	}

	delivery, err := h.deliveryService.CreateDelivery(ctx, deliveryModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.created handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, deliveryservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.created handler received incomplete delivery")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.created handler failed to create delivery")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("delivery", delivery.ID),
		logger.NewField("tracking_code", delivery.TrackingCode),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.created: processed")

	sess.MarkMessage(message, "")
	return false
}
