package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Row is one result row keyed by lowercase column name.
type Row map[string]any

// Querier runs a single parameterized statement. Implementations are safe
// for concurrent use; each call checks a connection out of the pool and
// returns it before the call completes.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) ([]Row, error)
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// Options tunes pool sizing and startup behaviour. Zero values fall back to
// the defaults applied in withDefaults.
type Options struct {
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
	PingTimeout    time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConns <= 0 {
		o.MaxConns = 10
	}
	if o.MinConns < 0 {
		o.MinConns = 0
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 5 * time.Second
	}
	if o.PingTimeout <= 0 {
		o.PingTimeout = 2 * time.Second
	}
	return o
}

// StoreError is any failure reported by the database or the driver.
type StoreError struct {
	Op   string
	Code string // SQLSTATE, when the driver exposes one
	Err  error
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store %s: [%s] %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reports whether err originated in the query layer.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// SQLState returns the SQLSTATE carried by err, or "".
func SQLState(err error) string {
	var se *StoreError
	if errors.As(err, &se) && se.Code != "" {
		return se.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Code: SQLState(err), Err: err}
}

func lowerKeys(names []string, values []any) Row {
	row := make(Row, len(names))
	for i, name := range names {
		row[strings.ToLower(name)] = values[i]
	}
	return row
}
