package entities

import "time"

type Delivery struct {
	ID             int64
	TrackingCode   string
	Status         DeliveryStatusType
	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string
	OriginAddress  string
	DestAddress    string
	PackageInfo    string
	CurrentLoc     string
	CurrentLat     *float64
	CurrentLng     *float64
	AutoSimulate   bool
	DeliveredAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DeliveryModify struct {
	ID             *int64
	TrackingCode   *string
	Status         *DeliveryStatusType
	SenderName     *string
	SenderPhone    *string
	RecipientName  *string
	RecipientPhone *string
	OriginAddress  *string
	DestAddress    *string
	PackageInfo    *string
	CurrentLoc     *string
	CurrentLat     *float64
	CurrentLng     *float64
	AutoSimulate   *bool
	DeliveredAt    *time.Time
}

// DeliveryFilter ограничивает выборку списка доставок.
type DeliveryFilter struct {
	Status *DeliveryStatusType
	Limit  int
	Offset int
}
