package entities

import "time"

// DeliveryHistory — append-only запись перехода статуса/локации.
// Записи никогда не обновляются и удаляются только каскадом вместе с доставкой.
type DeliveryHistory struct {
	ID          int64
	DeliveryID  int64
	Status      DeliveryStatusType
	Location    string
	City        string
	State       string
	Lat         *float64
	Lng         *float64
	Description string
	// ProgressPercent — прогресс события на момент выполнения;
	// 0 для ручных смен статуса вне плана.
	ProgressPercent int
	CreatedAt       time.Time
}

type HistoryModify struct {
	DeliveryID      *int64
	Status          *DeliveryStatusType
	Location        *string
	City            *string
	State           *string
	Lat             *float64
	Lng             *float64
	Description     *string
	ProgressPercent *int
}
