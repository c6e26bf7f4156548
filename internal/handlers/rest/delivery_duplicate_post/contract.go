//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_duplicate_post_test
package delivery_duplicate_post

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
	Duplicate(ctx context.Context, id int64) (*entities.Delivery, error)
}
