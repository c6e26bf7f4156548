package entities

import "time"

type ScheduledEventType string

const (
	EventCollection     ScheduledEventType = "collection"
	EventTransit        ScheduledEventType = "transit"
	EventLocationPing   ScheduledEventType = "location_ping"
	EventOutForDelivery ScheduledEventType = "out_for_delivery"
	EventDelivered      ScheduledEventType = "delivered"
)

func (t ScheduledEventType) String() string {
	return string(t)
}

// ScheduledEvent — заранее сгенерированный будущий шаг доставки.
// NewStatus == nil означает чистый location ping без смены статуса.
type ScheduledEvent struct {
	ID              int64
	DeliveryID      int64
	EventType       ScheduledEventType
	ScheduledFor    time.Time
	Executed        bool
	ExecutedAt      *time.Time
	NewStatus       *DeliveryStatusType
	Location        string
	City            string
	State           string
	Lat             *float64
	Lng             *float64
	Description     string
	ProgressPercent int
	CreatedAt       time.Time
}

type ScheduledEventModify struct {
	DeliveryID      *int64
	EventType       *ScheduledEventType
	ScheduledFor    *time.Time
	NewStatus       *DeliveryStatusType
	Location        *string
	City            *string
	State           *string
	Lat             *float64
	Lng             *float64
	Description     *string
	ProgressPercent *int
}

// EventApplication — результат ручного продвижения доставки на один шаг.
type EventApplication struct {
	EventID         int64
	EventType       ScheduledEventType
	Status          DeliveryStatusType
	Location        string
	Description     string
	ProgressPercent int
	RemainingCount  int64
}

// SweepResult — итог одного прохода обработки всех созревших событий.
type SweepResult struct {
	Processed       int
	TotalCandidates int
	FailedEventIDs  []int64
}
