//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=simulation_run_post_test
package simulation_run_post

import (
	"context"
	"time"

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
	ProcessAllDue(ctx context.Context, now time.Time, limit int) (*entities.SweepResult, error)
}
