package event_plan

import (
	"fmt"
	"math/rand/v2"
	"time"

	"cargoflash/internal/entities"
	"cargoflash/internal/pkg/config"
)

// waypoint — промежуточный хаб маршрута симуляции.
type waypoint struct {
	city  string
	state string
	lat   float64
	lng   float64
}

// Маршрутная сетка хабов: транзитные события выбирают из неё
// последовательные точки.
var hubs = []waypoint{
	{city: "São Paulo", state: "SP", lat: -23.5505, lng: -46.6333},
	{city: "Campinas", state: "SP", lat: -22.9099, lng: -47.0626},
	{city: "Curitiba", state: "PR", lat: -25.4284, lng: -49.2733},
	{city: "Belo Horizonte", state: "MG", lat: -19.9167, lng: -43.9345},
	{city: "Rio de Janeiro", state: "RJ", lat: -22.9068, lng: -43.1729},
	{city: "Porto Alegre", state: "RS", lat: -30.0346, lng: -51.2177},
	{city: "Salvador", state: "BA", lat: -12.9714, lng: -38.5014},
	{city: "Brasília", state: "DF", lat: -15.7939, lng: -47.8828},
}

// PlanFactory генерирует очередь будущих событий новой доставки:
// collection → транзитные хабы → out_for_delivery → delivered.
// Временные метки монотонно растут с шагом HopInterval и прижимаются к
// рабочему окну; progress_percent неубывающий 0..100.
type PlanFactory struct {
	cfg config.Simulation
}

func New(cfg config.Simulation) *PlanFactory {
	return &PlanFactory{cfg: cfg}
}

func (f *PlanFactory) Plan(delivery *entities.Delivery, now time.Time) []entities.ScheduledEventModify {
	hops := f.cfg.MinTransitHops
	if spread := f.cfg.MaxTransitHops - f.cfg.MinTransitHops; spread > 0 {
		hops += rand.IntN(spread + 1)
	}

	total := hops + 3 // collection + hops + out_for_delivery + delivered
	plan := make([]entities.ScheduledEventModify, 0, total)

	at := f.nextSlot(now)

	plan = append(plan, f.newEvent(
		delivery.ID,
		entities.EventCollection,
		at,
		statusPtr(entities.DeliveryCollected),
		delivery.OriginAddress,
		waypoint{},
		fmt.Sprintf("Objeto coletado em %s", delivery.OriginAddress),
		progressAt(1, total),
	))

	firstHub := rand.IntN(len(hubs))
	for i := 0; i < hops; i++ {
		at = f.nextSlot(at.Add(f.cfg.HopInterval))
		hub := hubs[(firstHub+i)%len(hubs)]

		// статус меняет только первый хаб, остальные — чистые location ping
		var newStatus *entities.DeliveryStatusType
		eventType := entities.EventLocationPing
		if i == 0 {
			newStatus = statusPtr(entities.DeliveryInTransit)
			eventType = entities.EventTransit
		}

		plan = append(plan, f.newEvent(
			delivery.ID,
			eventType,
			at,
			newStatus,
			fmt.Sprintf("Centro de distribuição %s/%s", hub.city, hub.state),
			hub,
			fmt.Sprintf("Objeto em trânsito, passagem por %s/%s", hub.city, hub.state),
			progressAt(i+2, total),
		))
	}

	at = f.nextSlot(at.Add(f.cfg.HopInterval))
	plan = append(plan, f.newEvent(
		delivery.ID,
		entities.EventOutForDelivery,
		at,
		statusPtr(entities.DeliveryOutForDelivery),
		delivery.DestAddress,
		waypoint{},
		"Objeto saiu para entrega ao destinatário",
		progressAt(total-1, total),
	))

	at = f.nextSlot(at.Add(f.cfg.HopInterval))
	plan = append(plan, f.newEvent(
		delivery.ID,
		entities.EventDelivered,
		at,
		statusPtr(entities.DeliveryDelivered),
		delivery.DestAddress,
		waypoint{},
		"Objeto entregue ao destinatário",
		100,
	))

	return plan
}

func (f *PlanFactory) newEvent(
	deliveryID int64,
	eventType entities.ScheduledEventType,
	at time.Time,
	newStatus *entities.DeliveryStatusType,
	location string,
	hub waypoint,
	description string,
	progress int,
) entities.ScheduledEventModify {
	event := entities.ScheduledEventModify{
		DeliveryID:      &deliveryID,
		EventType:       &eventType,
		ScheduledFor:    &at,
		NewStatus:       newStatus,
		Location:        &location,
		Description:     &description,
		ProgressPercent: &progress,
	}
	if hub.city != "" {
		event.City = &hub.city
		event.State = &hub.state
		lat, lng := hub.lat, hub.lng
		event.Lat = &lat
		event.Lng = &lng
	}
	return event
}

// nextSlot сдвигает метку вперед внутрь рабочего окна: до начала окна —
// к началу, после конца — к началу следующего дня.
func (f *PlanFactory) nextSlot(t time.Time) time.Time {
	start, end := f.cfg.BusinessHourStart, f.cfg.BusinessHourEnd

	switch {
	case t.Hour() < start:
		return time.Date(t.Year(), t.Month(), t.Day(), start, t.Minute(), 0, 0, t.Location())
	case t.Hour() >= end:
		next := t.AddDate(0, 0, 1)
		return time.Date(next.Year(), next.Month(), next.Day(), start, t.Minute(), 0, 0, t.Location())
	default:
		return t
	}
}

// progressAt равномерно раскладывает прогресс шага step из total по 0..100.
func progressAt(step, total int) int {
	if total <= 0 {
		return 0
	}
	progress := step * 100 / total
	if progress > 100 {
		progress = 100
	}
	return progress
}

func statusPtr(s entities.DeliveryStatusType) *entities.DeliveryStatusType {
	return &s
}
