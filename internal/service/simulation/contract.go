//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=simulation_test
package simulation

import (
	"context"
	"time"

	"cargoflash/internal/entities"
)

type DeliveryRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
}

type EventRepository interface {
	GetNextPending(ctx context.Context, deliveryID int64) (*entities.ScheduledEvent, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]entities.ScheduledEvent, error)
	MarkExecuted(ctx context.Context, eventID int64, executedAt time.Time) error
	CountPending(ctx context.Context, deliveryID int64) (int64, error)
}

type HistoryRepository interface {
	Insert(ctx context.Context, historyModify entities.HistoryModify) (*entities.DeliveryHistory, error)
}

// NotificationDispatcher шлет получателю уведомление о смене статуса.
// Вызов fire-and-forget: ошибки логируются и никогда не прерывают
// применение события.
type NotificationDispatcher interface {
	NotifyStatusChange(ctx context.Context, delivery *entities.Delivery, oldStatus, newStatus entities.DeliveryStatusType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
