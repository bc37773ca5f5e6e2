package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DB is the database/sql Querier running on the lib/pq driver.
type DB struct {
	db *sql.DB
}

var _ Querier = (*DB)(nil)

func NewConnection(ctx context.Context, dsn string, opt Options) (*DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	opt = opt.withDefaults()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(int(opt.MaxConns))
	db.SetMaxIdleConns(int(opt.MinConns))
	db.SetConnMaxIdleTime(5 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, opt.PingTimeout)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db: db}, nil
}

// WrapDB adapts an already opened handle, e.g. one from go-sqlmock.
func WrapDB(db *sql.DB) *DB {
	return &DB{db: db}
}

func (d *DB) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("query", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, wrap("query", err)
	}

	out := make([]Row, 0, 16)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, wrap("scan", err)
		}
		out = append(out, lowerKeys(cols, values))
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("query", err)
	}
	return out, nil
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrap("exec", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrap("exec", err)
	}
	return n, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) Close() {
	if d != nil && d.db != nil {
		_ = d.db.Close()
	}
}
