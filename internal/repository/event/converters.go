package event

import "cargoflash/internal/entities"

func ToDomain(e *ScheduledEventDB) *entities.ScheduledEvent {
	if e == nil {
		return nil
	}

	var newStatus *entities.DeliveryStatusType
	if e.NewStatus != nil {
		status := entities.DeliveryStatusType(*e.NewStatus)
		newStatus = &status
	}

	return &entities.ScheduledEvent{
		ID:              e.ID,
		DeliveryID:      e.DeliveryID,
		EventType:       entities.ScheduledEventType(e.EventType),
		ScheduledFor:    e.ScheduledFor,
		Executed:        e.Executed,
		ExecutedAt:      e.ExecutedAt,
		NewStatus:       newStatus,
		Location:        e.Location,
		City:            e.City,
		State:           e.State,
		Lat:             e.Lat,
		Lng:             e.Lng,
		Description:     e.Description,
		ProgressPercent: e.ProgressPercent,
		CreatedAt:       e.CreatedAt,
	}
}
