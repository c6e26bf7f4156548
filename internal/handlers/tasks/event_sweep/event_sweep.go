package event_sweep

import (
	"context"
	"time"

	"cargoflash/internal/entities"
	"cargoflash/pkg/logger"
)

type Service interface {
	ProcessAllDue(ctx context.Context, now time.Time, limit int) (*entities.SweepResult, error)
}

// EventSweep периодически выполняет созревшие события симуляции.
// Ручное продвижение и REST-триггер работают через тот же сервис,
// задача лишь придает симуляции "ход времени" без участия клиента.
type EventSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	limit    int
}

func NewEventSweep(log logger.Logger, service Service, interval time.Duration, limit int) *EventSweep {
	return &EventSweep{
		log:      log,
		service:  service,
		interval: interval,
		limit:    limit,
	}
}

func (e *EventSweep) TTL() time.Duration {
	return e.interval
}

func (e *EventSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	result, err := e.service.ProcessAllDue(ctxWithTimeout, time.Now(), e.limit)
	if err != nil {
		return err
	}

	eventsProcessedTotal.Add(float64(result.Processed))
	eventsFailedTotal.Add(float64(len(result.FailedEventIDs)))

	if result.TotalCandidates > 0 {
		e.log.With(
			logger.NewField("processed", result.Processed),
			logger.NewField("candidates", result.TotalCandidates),
			logger.NewField("failed", len(result.FailedEventIDs)),
		).Info("event sweep")
	}

	return nil
}

func (e *EventSweep) Info() string {
	return "event sweep"
}
