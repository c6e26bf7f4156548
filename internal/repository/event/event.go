package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"cargoflash/internal/entities"
	"cargoflash/internal/service/simulation"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const eventColumns = `id, delivery_id, event_type, scheduled_for, executed,
		executed_at, new_status, location, city, state, lat, lng,
		description, progress_percent, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// BulkInsert сохраняет очередь событий одной вставкой. Вызывается один раз
// при создании доставки; дальше события только читаются и помечаются
// выполненными.
func (r *Repository) BulkInsert(ctx context.Context, events []entities.ScheduledEventModify) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	builder := qb.
		Insert("scheduled_events").
		Columns("delivery_id", "event_type", "scheduled_for", "new_status",
			"location", "city", "state", "lat", "lng", "description", "progress_percent")

	for i := range events {
		e := events[i]

		var eventType string
		if e.EventType != nil {
			eventType = e.EventType.String()
		}

		builder = builder.Values(
			derefInt64(e.DeliveryID),
			eventType,
			derefTime(e.ScheduledFor),
			statusOrNil(e.NewStatus),
			orEmpty(e.Location),
			orEmpty(e.City),
			orEmpty(e.State),
			e.Lat,
			e.Lng,
			orEmpty(e.Description),
			derefInt(e.ProgressPercent),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected event repository bulk insert error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected event repository bulk insert error: %w", err)
	}

	return result.RowsAffected(), nil
}

// GetNextPending возвращает единственное "следующее" событие доставки:
// невыполненное с минимальным scheduled_for, tie-break по id.
func (r *Repository) GetNextPending(ctx context.Context, deliveryID int64) (*entities.ScheduledEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM scheduled_events
		WHERE delivery_id = $1 AND executed = FALSE
		ORDER BY scheduled_for ASC, id ASC
		LIMIT 1
	`

	var eventDB ScheduledEventDB
	err := r.querier.QueryRow(ctx, query, deliveryID).Scan(scanTargets(&eventDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simulation.ErrNoPendingEvent
		}
		return nil, fmt.Errorf("unexpected event repository get next pending error: %w", err)
	}

	return ToDomain(&eventDB), nil
}

// ListDue выбирает созревшие события по всем доставкам, глобальный FIFO
// по scheduled_for. limit просто усекает хвост: остаток доберет следующий
// проход.
func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]entities.ScheduledEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM scheduled_events
		WHERE executed = FALSE AND scheduled_for <= $1
		ORDER BY scheduled_for ASC, id ASC
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository list due error: %w", err)
	}
	defer rows.Close()

	var events []entities.ScheduledEvent
	for rows.Next() {
		var eventDB ScheduledEventDB
		if err := rows.Scan(scanTargets(&eventDB)...); err != nil {
			return nil, fmt.Errorf("unexpected event repository list due scan error: %w", err)
		}
		events = append(events, *ToDomain(&eventDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected event repository list due rows error: %w", err)
	}

	return events, nil
}

// MarkExecuted — условный апдейт по executed = FALSE: при конкурентном
// потреблении проигравший получает ErrEventAlreadyExecuted, а не второй
// переход по одному событию.
func (r *Repository) MarkExecuted(ctx context.Context, eventID int64, executedAt time.Time) error {
	query := `
		UPDATE scheduled_events
		SET executed = TRUE, executed_at = $2
		WHERE id = $1 AND executed = FALSE
	`

	result, err := r.querier.Exec(ctx, query, eventID, executedAt)
	if err != nil {
		return fmt.Errorf("unexpected event repository mark executed error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return simulation.ErrEventAlreadyExecuted
	}

	return nil
}

func (r *Repository) CountPending(ctx context.Context, deliveryID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM scheduled_events
		WHERE delivery_id = $1 AND executed = FALSE
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, deliveryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected event repository count pending error: %w", err)
	}

	return count, nil
}

func scanTargets(e *ScheduledEventDB) []interface{} {
	return []interface{}{
		&e.ID,
		&e.DeliveryID,
		&e.EventType,
		&e.ScheduledFor,
		&e.Executed,
		&e.ExecutedAt,
		&e.NewStatus,
		&e.Location,
		&e.City,
		&e.State,
		&e.Lat,
		&e.Lng,
		&e.Description,
		&e.ProgressPercent,
		&e.CreatedAt,
	}
}

func statusOrNil(s *entities.DeliveryStatusType) *string {
	if s == nil {
		return nil
	}
	status := s.String()
	return &status
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefTime(v *time.Time) time.Time {
	if v == nil {
		return time.Time{}
	}
	return *v
}
