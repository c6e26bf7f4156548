// Package dto описывает JSON-формы REST-хендлеров. Формы намеренно
// плоские: доменные типы наружу не утекают.
package dto

import "time"

type DeliveryCreate struct {
	SenderName     string `json:"sender_name"`
	SenderPhone    string `json:"sender_phone"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	OriginAddress  string `json:"origin_address"`
	DestAddress    string `json:"destination_address"`
	PackageInfo    string `json:"package_info"`
	AutoSimulate   bool   `json:"auto_simulate"`
}

type Delivery struct {
	ID             int64      `json:"id"`
	TrackingCode   string     `json:"tracking_code"`
	Status         string     `json:"status"`
	SenderName     string     `json:"sender_name"`
	SenderPhone    string     `json:"sender_phone"`
	RecipientName  string     `json:"recipient_name"`
	RecipientPhone string     `json:"recipient_phone"`
	OriginAddress  string     `json:"origin_address"`
	DestAddress    string     `json:"destination_address"`
	PackageInfo    string     `json:"package_info"`
	CurrentLoc     string     `json:"current_location"`
	CurrentLat     *float64   `json:"current_lat,omitempty"`
	CurrentLng     *float64   `json:"current_lng,omitempty"`
	AutoSimulate   bool       `json:"auto_simulate"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type HistoryRecord struct {
	Status          string    `json:"status"`
	Location        string    `json:"location"`
	City            string    `json:"city,omitempty"`
	State           string    `json:"state,omitempty"`
	Lat             *float64  `json:"lat,omitempty"`
	Lng             *float64  `json:"lng,omitempty"`
	Description     string    `json:"description"`
	ProgressPercent int       `json:"progress_percent"`
	CreatedAt       time.Time `json:"created_at"`
}

type TrackingResponse struct {
	Delivery Delivery        `json:"delivery"`
	History  []HistoryRecord `json:"history"`
}

type DeliveryStatusUpdate struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

type EventApplication struct {
	EventID         int64  `json:"event_id"`
	EventType       string `json:"event_type"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	ProgressPercent int    `json:"progress_percent"`
	RemainingEvents int64  `json:"remaining_events"`
}

type SweepResult struct {
	Processed       int     `json:"processed"`
	TotalCandidates int     `json:"total_candidates"`
	FailedEventIDs  []int64 `json:"failed_event_ids,omitempty"`
}

type StatusCountsResponse struct {
	Counts map[string]int64 `json:"counts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
