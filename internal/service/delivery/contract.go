//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"cargoflash/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetByTrackingCode(ctx context.Context, code string) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}

type EventRepository interface {
	BulkInsert(ctx context.Context, events []entities.ScheduledEventModify) (int64, error)
}

type HistoryRepository interface {
	Insert(ctx context.Context, historyModify entities.HistoryModify) (*entities.DeliveryHistory, error)
	ListByDelivery(ctx context.Context, deliveryID int64) ([]entities.DeliveryHistory, error)
}

// CodeFactory генерирует трек-коды формата CF + 9 цифр + BR. Уникальность
// обеспечивает констрейнт в хранилище, сервис ретраит коллизии.
type CodeFactory interface {
	NewTrackingCode() string
}

// PlanFactory строит упорядоченную очередь будущих событий для доставки.
type PlanFactory interface {
	Plan(delivery *entities.Delivery, now time.Time) []entities.ScheduledEventModify
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
