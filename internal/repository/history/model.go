package history

import "time"

type DeliveryHistoryDB struct {
	ID              int64
	DeliveryID      int64
	Status          string
	Location        string
	City            string
	State           string
	Lat             *float64
	Lng             *float64
	Description     string
	ProgressPercent int
	CreatedAt       time.Time
}
