package history

import (
	"context"
	"fmt"

	"cargoflash/internal/entities"
)

const historyColumns = `id, delivery_id, status, location, city, state,
		lat, lng, description, progress_percent, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, historyModify entities.HistoryModify) (*entities.DeliveryHistory, error) {
	query := `
		INSERT INTO delivery_history
			(delivery_id, status, location, city, state, lat, lng, description, progress_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + historyColumns + `
	`

	var status string
	if historyModify.Status != nil {
		status = historyModify.Status.String()
	}

	var historyDB DeliveryHistoryDB
	err := r.querier.QueryRow(ctx, query,
		derefInt64(historyModify.DeliveryID),
		status,
		orEmpty(historyModify.Location),
		orEmpty(historyModify.City),
		orEmpty(historyModify.State),
		historyModify.Lat,
		historyModify.Lng,
		orEmpty(historyModify.Description),
		orZero(historyModify.ProgressPercent),
	).Scan(scanTargets(&historyDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository insert error: %w", err)
	}

	return ToDomain(&historyDB), nil
}

// ListByDelivery возвращает историю от свежих записей к старым. Пустая
// история для существующей доставки — не ошибка, существование доставки
// проверяет сервисный слой.
func (r *Repository) ListByDelivery(ctx context.Context, deliveryID int64) ([]entities.DeliveryHistory, error) {
	query := `
		SELECT ` + historyColumns + `
		FROM delivery_history
		WHERE delivery_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}
	defer rows.Close()

	var records []entities.DeliveryHistory
	for rows.Next() {
		var historyDB DeliveryHistoryDB
		if err := rows.Scan(scanTargets(&historyDB)...); err != nil {
			return nil, fmt.Errorf("unexpected history repository list scan error: %w", err)
		}
		records = append(records, *ToDomain(&historyDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository list rows error: %w", err)
	}

	return records, nil
}

func scanTargets(h *DeliveryHistoryDB) []interface{} {
	return []interface{}{
		&h.ID,
		&h.DeliveryID,
		&h.Status,
		&h.Location,
		&h.City,
		&h.State,
		&h.Lat,
		&h.Lng,
		&h.Description,
		&h.ProgressPercent,
		&h.CreatedAt,
	}
}

func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
