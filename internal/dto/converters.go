package dto

import "cargoflash/internal/entities"

func FromDelivery(d *entities.Delivery) Delivery {
	return Delivery{
		ID:             d.ID,
		TrackingCode:   d.TrackingCode,
		Status:         d.Status.String(),
		SenderName:     d.SenderName,
		SenderPhone:    d.SenderPhone,
		RecipientName:  d.RecipientName,
		RecipientPhone: d.RecipientPhone,
		OriginAddress:  d.OriginAddress,
		DestAddress:    d.DestAddress,
		PackageInfo:    d.PackageInfo,
		CurrentLoc:     d.CurrentLoc,
		CurrentLat:     d.CurrentLat,
		CurrentLng:     d.CurrentLng,
		AutoSimulate:   d.AutoSimulate,
		DeliveredAt:    d.DeliveredAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromHistory(records []entities.DeliveryHistory) []HistoryRecord {
	result := make([]HistoryRecord, 0, len(records))
	for i := range records {
		r := records[i]
		result = append(result, HistoryRecord{
			Status:          r.Status.String(),
			Location:        r.Location,
			City:            r.City,
			State:           r.State,
			Lat:             r.Lat,
			Lng:             r.Lng,
			Description:     r.Description,
			ProgressPercent: r.ProgressPercent,
			CreatedAt:       r.CreatedAt,
		})
	}
	return result
}
