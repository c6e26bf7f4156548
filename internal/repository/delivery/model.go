package delivery

import "time"

type DeliveryDB struct {
	ID             int64
	TrackingCode   string
	Status         string
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
