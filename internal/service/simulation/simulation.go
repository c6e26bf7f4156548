package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargoflash/internal/entities"
	"cargoflash/pkg/logger"
)

const DefaultSweepLimit = 50

// Simulation — движок выполнения запланированных событий. Продвигает
// доставку по заранее сгенерированной очереди событий: вручную по одному
// (AdvanceOne) или пачкой по всем созревшим (ProcessAllDue).
type Simulation struct {
	log        logger.Logger
	deliveries DeliveryRepository
	events     EventRepository
	history    HistoryRepository
	notifier   NotificationDispatcher
	txManager  TxManager
}

func New(
	log logger.Logger,
	deliveries DeliveryRepository,
	events EventRepository,
	history HistoryRepository,
	notifier NotificationDispatcher,
	txManager TxManager,
) *Simulation {
	return &Simulation{
		log:        log,
		deliveries: deliveries,
		events:     events,
		history:    history,
		notifier:   notifier,
		txManager:  txManager,
	}
}

// AdvanceOne применяет к доставке её ближайшее невыполненное событие.
// Возвращает ErrNoPendingEvent, если очередь пуста, и
// ErrEventAlreadyExecuted, если событие забрал конкурентный вызов.
func (s *Simulation) AdvanceOne(ctx context.Context, deliveryID int64) (*entities.EventApplication, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := s.deliveries.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	event, err := s.events.GetNextPending(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, ErrNoPendingEvent) {
			return nil, ErrNoPendingEvent
		}
		return nil, fmt.Errorf("get next pending event: %w", err)
	}

	now := time.Now().UTC()
	updated, err := s.applyEvent(ctx, delivery, event, now)
	if err != nil {
		return nil, err
	}

	remaining, err := s.events.CountPending(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("count pending events: %w", err)
	}

	return &entities.EventApplication{
		EventID:         event.ID,
		EventType:       event.EventType,
		Status:          updated.Status,
		Location:        event.Location,
		Description:     event.Description,
		ProgressPercent: event.ProgressPercent,
		RemainingCount:  remaining,
	}, nil
}

// ProcessAllDue выполняет до limit созревших событий по всем доставкам,
// в глобальном порядке scheduled_for. Каждое событие обрабатывается
// независимо: сбой одного не останавливает остальные, упавшие события
// попадают в FailedEventIDs. Повторные и конкурентные запуски безопасны:
// уже забранные события молча пропускаются.
func (s *Simulation) ProcessAllDue(ctx context.Context, now time.Time, limit int) (*entities.SweepResult, error) {
	if limit <= 0 {
		limit = DefaultSweepLimit
	}

	events, err := s.events.ListDue(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due events: %w", err)
	}

	result := &entities.SweepResult{
		TotalCandidates: len(events),
	}

	for i := range events {
		event := events[i]

		err := s.processDueEvent(ctx, &event, now)
		switch {
		case err == nil:
			result.Processed++
		case errors.Is(err, ErrEventAlreadyExecuted):
			// параллельный sweep или ручной advance успел раньше
			continue
		default:
			result.FailedEventIDs = append(result.FailedEventIDs, event.ID)
			s.log.With(
				logger.NewField("event_id", event.ID),
				logger.NewField("delivery_id", event.DeliveryID),
				logger.NewField("error", err),
			).Error("due event processing failed")
		}
	}

	return result, nil
}

func (s *Simulation) processDueEvent(ctx context.Context, event *entities.ScheduledEvent, now time.Time) error {
	delivery, err := s.deliveries.GetByID(ctx, event.DeliveryID)
	if err != nil {
		return fmt.Errorf("get delivery: %w", err)
	}

	_, err = s.applyEvent(ctx, delivery, event, now)
	return err
}

// applyEvent атомарно забирает событие и обновляет доставку, затем
// best-effort дописывает историю и шлет уведомление. Локация обновляется
// всегда; статус — только если событие его несет и доставка не находится
// в исключительном статусе (failed/returned поглощающие: запланированные
// события их не перетирают, для них пишется только location-история).
func (s *Simulation) applyEvent(
	ctx context.Context,
	delivery *entities.Delivery,
	event *entities.ScheduledEvent,
	now time.Time,
) (*entities.Delivery, error) {
	deliveryModify := entities.DeliveryModify{
		ID:         &delivery.ID,
		CurrentLoc: &event.Location,
	}
	if event.Lat != nil {
		deliveryModify.CurrentLat = event.Lat
	}
	if event.Lng != nil {
		deliveryModify.CurrentLng = event.Lng
	}

	statusChanged := false
	newStatus := delivery.Status
	if event.NewStatus != nil && !delivery.Status.IsException() {
		newStatus = *event.NewStatus
		deliveryModify.Status = &newStatus
		statusChanged = newStatus != delivery.Status

		if newStatus == entities.DeliveryDelivered {
			deliveryModify.DeliveredAt = &now
		}
	}

	var updated *entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// condition-update по executed=false: проигравший конкурент
		// получает ErrEventAlreadyExecuted и откатывается целиком
		if err := s.events.MarkExecuted(ctx, event.ID, now); err != nil {
			return fmt.Errorf("mark event executed: %w", err)
		}

		deliveryUpdated, err := s.deliveries.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}

		updated = deliveryUpdated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.appendHistory(ctx, delivery.ID, newStatus, event)

	if statusChanged && s.notifier != nil {
		if err := s.notifier.NotifyStatusChange(ctx, updated, delivery.Status, newStatus); err != nil {
			s.log.With(
				logger.NewField("delivery_id", delivery.ID),
				logger.NewField("status", newStatus),
				logger.NewField("error", err),
			).Warn("status change notification failed")
		}
	}

	return updated, nil
}

// appendHistory пишет запись истории best-effort: сбой логируется и не
// прерывает уже выполненный переход. Статус/локация доставки и флаг
// executed авторитетны, история — вторичный след.
func (s *Simulation) appendHistory(
	ctx context.Context,
	deliveryID int64,
	status entities.DeliveryStatusType,
	event *entities.ScheduledEvent,
) {
	historyModify := entities.HistoryModify{
		DeliveryID:      &deliveryID,
		Status:          &status,
		Location:        &event.Location,
		City:            &event.City,
		State:           &event.State,
		Lat:             event.Lat,
		Lng:             event.Lng,
		Description:     &event.Description,
		ProgressPercent: &event.ProgressPercent,
	}

	if _, err := s.history.Insert(ctx, historyModify); err != nil {
		s.log.With(
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("event_id", event.ID),
			logger.NewField("error", err),
		).Error("history append failed, transition already applied")
	}
}
