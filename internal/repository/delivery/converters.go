package delivery

import "cargoflash/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:             d.ID,
		TrackingCode:   d.TrackingCode,
		Status:         entities.DeliveryStatusType(d.Status),
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
