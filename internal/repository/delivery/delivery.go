package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"cargoflash/internal/entities"
	"cargoflash/internal/repository"
	"cargoflash/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, tracking_code, status, sender_name, sender_phone,
		recipient_name, recipient_phone, origin_address, dest_address, package_info,
		current_location, current_lat, current_lng, auto_simulate, delivered_at,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (
			tracking_code, status, sender_name, sender_phone,
			recipient_name, recipient_phone, origin_address, dest_address,
			package_info, current_location, current_lat, current_lng, auto_simulate
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModify.TrackingCode,
		deliveryModify.Status,
		deliveryModify.SenderName,
		orEmpty(deliveryModify.SenderPhone),
		deliveryModify.RecipientName,
		orEmpty(deliveryModify.RecipientPhone),
		deliveryModify.OriginAddress,
		deliveryModify.DestAddress,
		orEmpty(deliveryModify.PackageInfo),
		deliveryModify.CurrentLoc,
		deliveryModify.CurrentLat,
		deliveryModify.CurrentLng,
		deliveryModify.AutoSimulate != nil && *deliveryModify.AutoSimulate,
	).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, delivery.ErrTrackingCodeTaken
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByTrackingCode(ctx context.Context, code string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE tracking_code = $1`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, code).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get by code error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	builder := qb.Update("deliveries")

	// опциональные поля
	if deliveryModify.Status != nil {
		builder = builder.Set("status", deliveryModify.Status.String())
	}
	if deliveryModify.SenderName != nil {
		builder = builder.Set("sender_name", deliveryModify.SenderName)
	}
	if deliveryModify.SenderPhone != nil {
		builder = builder.Set("sender_phone", deliveryModify.SenderPhone)
	}
	if deliveryModify.RecipientName != nil {
		builder = builder.Set("recipient_name", deliveryModify.RecipientName)
	}
	if deliveryModify.RecipientPhone != nil {
		builder = builder.Set("recipient_phone", deliveryModify.RecipientPhone)
	}
	if deliveryModify.PackageInfo != nil {
		builder = builder.Set("package_info", deliveryModify.PackageInfo)
	}
	if deliveryModify.CurrentLoc != nil {
		builder = builder.Set("current_location", deliveryModify.CurrentLoc)
	}
	if deliveryModify.CurrentLat != nil {
		builder = builder.Set("current_lat", deliveryModify.CurrentLat)
	}
	if deliveryModify.CurrentLng != nil {
		builder = builder.Set("current_lng", deliveryModify.CurrentLng)
	}
	if deliveryModify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", deliveryModify.DeliveredAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModify.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// Delete удаляет доставку; scheduled_events и delivery_history уходят
// каскадом по FK.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM deliveries WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns).
		From("deliveries").
		OrderBy("created_at DESC, id DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	var deliveries []entities.Delivery
	for rows.Next() {
		var deliveryDB DeliveryDB
		if err := rows.Scan(scanTargets(&deliveryDB)...); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(&deliveryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list rows error: %w", err)
	}

	return deliveries, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.DeliveryStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository count scan error: %w", err)
		}
		counts[entities.DeliveryStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository count rows error: %w", err)
	}

	return counts, nil
}

func scanTargets(d *DeliveryDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.TrackingCode,
		&d.Status,
		&d.SenderName,
		&d.SenderPhone,
		&d.RecipientName,
		&d.RecipientPhone,
		&d.OriginAddress,
		&d.DestAddress,
		&d.PackageInfo,
		&d.CurrentLoc,
		&d.CurrentLat,
		&d.CurrentLng,
		&d.AutoSimulate,
		&d.DeliveredAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
