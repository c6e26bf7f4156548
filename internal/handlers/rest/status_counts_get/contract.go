//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_counts_get_test
package status_counts_get

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
	StatusCounts(ctx context.Context) (map[entities.DeliveryStatusType]int64, error)
}
