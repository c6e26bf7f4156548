package simulation

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")

	// ErrNoPendingEvent — штатный итог "нечего выполнять", не сбой системы.
	ErrNoPendingEvent = errors.New("no pending scheduled event")

	// ErrEventAlreadyExecuted возвращается, когда событие успели забрать
	// конкурентно: condition-update по executed=false не зацепил строк.
	ErrEventAlreadyExecuted = errors.New("scheduled event already executed")
)
