package history

import "cargoflash/internal/entities"

func ToDomain(h *DeliveryHistoryDB) *entities.DeliveryHistory {
	if h == nil {
		return nil
	}

	return &entities.DeliveryHistory{
		ID:              h.ID,
		DeliveryID:      h.DeliveryID,
		Status:          entities.DeliveryStatusType(h.Status),
		Location:        h.Location,
		City:            h.City,
		State:           h.State,
		Lat:             h.Lat,
		Lng:             h.Lng,
		Description:     h.Description,
		ProgressPercent: h.ProgressPercent,
		CreatedAt:       h.CreatedAt,
	}
}
