package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProbeQuery is issued to confirm the database is reachable
const ProbeQuery = "SELECT 1"

// ApplicationName is reported to the server for every pooled connection
const ApplicationName = "bixor-rust-service"

// Querier is the subset of *pgxpool.Pool needed to run the probe
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Probe runs the liveness query and checks its single result
func Probe(ctx context.Context, q Querier) error {
	var one int
	if err := q.QueryRow(ctx, ProbeQuery).Scan(&one); err != nil {
		return fmt.Errorf("probe query: %w", err)
	}
	if one != 1 {
		return fmt.Errorf("probe query: unexpected result %d", one)
	}
	return nil
}

// Connect opens a connection pool against url and verifies it with one probe.
// The pool is closed again if the probe fails.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := Probe(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
