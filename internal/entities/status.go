package entities

type DeliveryStatusType string

const (
	DeliveryPending        DeliveryStatusType = "pending"
	DeliveryCollected      DeliveryStatusType = "collected"
	DeliveryInTransit      DeliveryStatusType = "in_transit"
	DeliveryOutForDelivery DeliveryStatusType = "out_for_delivery"
	DeliveryDelivered      DeliveryStatusType = "delivered"

	// Исключительные статусы, вне линейного порядка. Проставляются только
	// вручную (админом или внешней интеграцией), никогда генератором.
	DeliveryFailed   DeliveryStatusType = "failed"
	DeliveryReturned DeliveryStatusType = "returned"
)

const DefaultDeliveryStatus = DeliveryPending

func (s DeliveryStatusType) String() string {
	return string(s)
}

// statusRank задает канонический линейный порядок прогресса.
var statusRank = map[DeliveryStatusType]int{
	DeliveryPending:        0,
	DeliveryCollected:      1,
	DeliveryInTransit:      2,
	DeliveryOutForDelivery: 3,
	DeliveryDelivered:      4,
}

// Rank возвращает позицию статуса в линейном порядке и false для
// исключительных или неизвестных статусов.
func (s DeliveryStatusType) Rank() (int, bool) {
	rank, ok := statusRank[s]
	return rank, ok
}

// IsException сообщает, находится ли доставка в поглощающем исключительном
// статусе: запланированные события больше не меняют её статус.
func (s DeliveryStatusType) IsException() bool {
	return s == DeliveryFailed || s == DeliveryReturned
}

func (s DeliveryStatusType) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryCollected, DeliveryInTransit,
		DeliveryOutForDelivery, DeliveryDelivered,
		DeliveryFailed, DeliveryReturned:
		return true
	default:
		return false
	}
}
