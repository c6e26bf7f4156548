package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargoflash/internal/entities"
)

// maxCodeAttempts ограничивает ретраи генерации трек-кода при коллизии
// уникального констрейнта.
const maxCodeAttempts = 5

type Delivery struct {
	repository  Repository
	events      EventRepository
	history     HistoryRepository
	codeFactory CodeFactory
	planFactory PlanFactory
	txManager   TxManager
}

func New(
	repository Repository,
	events EventRepository,
	history HistoryRepository,
	codeFactory CodeFactory,
	planFactory PlanFactory,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:  repository,
		events:      events,
		history:     history,
		codeFactory: codeFactory,
		planFactory: planFactory,
		txManager:   txManager,
	}
}

// CreateDelivery заводит доставку со свежим трек-кодом и, если включена
// симуляция, сразу генерирует и сохраняет очередь будущих событий.
func (d *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if err := validateCreate(&deliveryModify); err != nil {
		return nil, err
	}

	status := entities.DefaultDeliveryStatus
	deliveryModify.Status = &status
	deliveryModify.DeliveredAt = nil

	var created *entities.Delivery
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := d.codeFactory.NewTrackingCode()
		deliveryModify.TrackingCode = &code

		err := d.txManager.Do(ctx, func(ctx context.Context) error {
			delivery, err := d.repository.Create(ctx, deliveryModify)
			if err != nil {
				return fmt.Errorf("create delivery: %w", err)
			}

			if delivery.AutoSimulate {
				plan := d.planFactory.Plan(delivery, time.Now().UTC())
				if _, err := d.events.BulkInsert(ctx, plan); err != nil {
					return fmt.Errorf("insert scheduled events: %w", err)
				}
			}

			created = delivery
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrTrackingCodeTaken) {
				continue
			}
			return nil, err
		}
		return created, nil
	}

	return nil, fmt.Errorf("generate unique tracking code after %d attempts: %w", maxCodeAttempts, ErrTrackingCodeTaken)
}

// Duplicate копирует описательные поля существующей доставки в новую:
// свежий трек-код, статус pending, без истории и без старых событий.
// Новая доставка начинает жизненный цикл с нуля.
func (d *Delivery) Duplicate(ctx context.Context, id int64) (*entities.Delivery, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	source, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source delivery: %w", err)
	}

	copyModify := entities.DeliveryModify{
		SenderName:     &source.SenderName,
		SenderPhone:    &source.SenderPhone,
		RecipientName:  &source.RecipientName,
		RecipientPhone: &source.RecipientPhone,
		OriginAddress:  &source.OriginAddress,
		DestAddress:    &source.DestAddress,
		PackageInfo:    &source.PackageInfo,
		CurrentLoc:     &source.OriginAddress,
		AutoSimulate:   &source.AutoSimulate,
	}

	return d.CreateDelivery(ctx, copyModify)
}

func (d *Delivery) GetDelivery(ctx context.Context, id int64) (*entities.Delivery, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

// Track — публичный поиск по трек-коду: доставка плюс её история,
// новые записи первыми.
func (d *Delivery) Track(ctx context.Context, code string) (*entities.Delivery, []entities.DeliveryHistory, error) {
	normalized := NormalizeTrackingCode(code)
	if !isValidTrackingCode(normalized) {
		return nil, nil, ErrInvalidTrackingCode
	}

	delivery, err := d.repository.GetByTrackingCode(ctx, normalized)
	if err != nil {
		return nil, nil, fmt.Errorf("get delivery by tracking code: %w", err)
	}

	history, err := d.history.ListByDelivery(ctx, delivery.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list delivery history: %w", err)
	}

	return delivery, history, nil
}

func (d *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	deliveries, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// UpdateStatus — ручная админская смена статуса, в том числе в
// исключительные failed/returned. Пишет историю в той же транзакции.
func (d *Delivery) UpdateStatus(ctx context.Context, id int64, status entities.DeliveryStatusType, note string) (*entities.Delivery, error) {
	if id <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	deliveryModify := entities.DeliveryModify{
		ID:     &id,
		Status: &status,
	}
	if status == entities.DeliveryDelivered {
		now := time.Now().UTC()
		deliveryModify.DeliveredAt = &now
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		historyModify := entities.HistoryModify{
			DeliveryID:  &delivery.ID,
			Status:      &status,
			Location:    &delivery.CurrentLoc,
			Description: &note,
		}
		if _, err := d.history.Insert(ctx, historyModify); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}

		updated = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteDelivery удаляет доставку; события и история уходят каскадом
// (FK ON DELETE CASCADE).
func (d *Delivery) DeleteDelivery(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDeliveryID
	}

	if err := d.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

// StatusCounts — сводка для дашборда, агрегация на стороне хранилища.
func (d *Delivery) StatusCounts(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	counts, err := d.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count deliveries by status: %w", err)
	}
	return counts, nil
}

func validateCreate(deliveryModify *entities.DeliveryModify) error {
	if deliveryModify.SenderName == nil ||
		deliveryModify.RecipientName == nil ||
		deliveryModify.OriginAddress == nil ||
		deliveryModify.DestAddress == nil {
		return ErrMissingRequiredFields
	}

	if !isValidRequiredText(*deliveryModify.SenderName) ||
		!isValidRequiredText(*deliveryModify.RecipientName) ||
		!isValidRequiredText(*deliveryModify.OriginAddress) ||
		!isValidRequiredText(*deliveryModify.DestAddress) {
		return ErrMissingRequiredFields
	}

	if deliveryModify.CurrentLoc == nil {
		deliveryModify.CurrentLoc = deliveryModify.OriginAddress
	}

	return nil
}
