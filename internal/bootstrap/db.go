package bootstrap

import (
	"context"
	"fmt"

	"github.com/pjmaster/project-api/config"
	"github.com/pjmaster/project-api/internal/storage/postgres"
)

// Store is an open connection provider owned by main.
type Store interface {
	postgres.Querier
	Ping(ctx context.Context) error
	Close()
}

func OpenStore(ctx context.Context, cfg config.DatabaseConfig) (Store, error) {
	opt := postgres.Options{
		MaxConns:       int32(cfg.MaxConns),
		MinConns:       int32(cfg.MinConns),
		ConnectTimeout: cfg.ConnectTimeout,
		PingTimeout:    cfg.PingTimeout,
	}

	switch cfg.Driver {
	case config.DriverPgx, "":
		pool, err := postgres.Open(ctx, cfg.URL, opt)
		if err != nil {
			return nil, err
		}
		return pool, nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.URL, opt)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
}
