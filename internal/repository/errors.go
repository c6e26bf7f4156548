// Package repository держит общие для всех репозиториев помощники
// по разбору ошибок PostgreSQL.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation, https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgUniqueViolation = "23505"

// IsUniqueViolation сообщает, нарушил ли запрос уникальный индекс
// (для deliveries это tracking_code).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
