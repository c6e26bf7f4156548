package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTrackingCode   = errors.New("invalid tracking code")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrTrackingCodeTaken = errors.New("tracking code already taken")
)
