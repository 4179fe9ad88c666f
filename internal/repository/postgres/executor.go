package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const (
	uniqueViolation   = "23505"
	checkViolation    = "23514"
	numericOutOfRange = "22003"
)

// wrapErr помечает ошибки соединения как StoreError, остальные оборачивает
// с именем операции.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return &domain.StoreError{Op: op, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == checkViolation || pgErr.Code == numericOutOfRange) {
		return fmt.Errorf("%w: %w", domain.NewInvalidArgumentError("%s: %s", op, pgErr.Message), err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// isConnectionError не считает отмену и дедлайн контекста отказом хранилища:
// context.DeadlineExceeded тоже реализует net.Error.
func isConnectionError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
