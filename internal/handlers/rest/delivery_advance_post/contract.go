//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_advance_post_test
package delivery_advance_post

import (
	"context"

	"cargoflash/internal/entities"
	"cargoflash/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AdvanceOne(ctx context.Context, deliveryID int64) (*entities.EventApplication, error)
}
