package event

import "time"

type ScheduledEventDB struct {
	ID              int64
	DeliveryID      int64
	EventType       string
	ScheduledFor    time.Time
	Executed        bool
	ExecutedAt      *time.Time
	NewStatus       *string
	Location        string
	City            string
	State           string
	Lat             *float64
	Lng             *float64
	Description     string
	ProgressPercent int
	CreatedAt       time.Time
}
