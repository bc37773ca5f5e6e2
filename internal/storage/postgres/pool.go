package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the pgx-backed Querier.
type Pool struct {
	pool *pgxpool.Pool
}

var _ Querier = (*Pool)(nil)

func Open(ctx context.Context, dsn string, opt Options) (*Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	opt = opt.withDefaults()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = opt.MaxConns
	cfg.MinConns = opt.MinConns
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second

	cctx, cancel := context.WithTimeout(ctx, opt.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(cctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	// Fail fast
	pctx, pcancel := context.WithTimeout(ctx, opt.PingTimeout)
	defer pcancel()
	if err := pool.Ping(pctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &Pool{pool: pool}, nil
}

func (p *Pool) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrap("query", err)
	}
	out, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (Row, error) {
		values, err := r.Values()
		if err != nil {
			return nil, err
		}
		fields := r.FieldDescriptions()
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
		}
		return lowerKeys(names, values), nil
	})
	if err != nil {
		return nil, wrap("query", err)
	}
	return out, nil
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, wrap("exec", err)
	}
	return tag.RowsAffected(), nil
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
}
