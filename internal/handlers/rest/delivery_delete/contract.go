//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_delete_test
package delivery_delete

import (
	"context"

	"cargoflash/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteDelivery(ctx context.Context, id int64) error
}
