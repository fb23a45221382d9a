package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"powar-data/internal/config"
	"powar-data/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(cfg.DBHost),
		strings.TrimSpace(cfg.DBPort),
		strings.TrimSpace(cfg.DBUser),
		cfg.DBPassword,
		strings.TrimSpace(cfg.DBName),
		strings.TrimSpace(cfg.DBSSLMode),
	)
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	}

	// The store may be down at boot; operations report ConnectionFailure
	// per request instead of the process refusing to start.
	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	return &Pool{pool: p, queryTimeout: cfg.QueryTimeout}, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return fmt.Errorf("nil db")
	}
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() error {
	if p == nil || p.pool == nil {
		return nil
	}
	p.pool.Close()
	return nil
}

func (p *Pool) Acquire(ctx context.Context) (database.Conn, error) {
	if p == nil || p.pool == nil {
		return nil, database.ConnectionFailure("acquire", fmt.Errorf("nil db"))
	}
	c, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, database.ConnectionFailure("acquire", err)
	}
	return &pgxConn{conn: c, queryTimeout: p.queryTimeout}, nil
}

// poolConn is the part of *pgxpool.Conn the adapter uses.
type poolConn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Release()
}

type pgxConn struct {
	conn         poolConn
	queryTimeout time.Duration
}

func (c *pgxConn) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	ctx, cancel := c.withTimeout(ctx)
	r, err := c.conn.Query(ctx, database.RebindDollar(query), args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return pgxRows{rows: r, cancel: cancel}, nil
}

func (c *pgxConn) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	ctx, cancel := c.withTimeout(ctx)
	return pgxRow{row: c.conn.QueryRow(ctx, database.RebindDollar(query), args...), cancel: cancel}
}

func (c *pgxConn) Release() {
	if c == nil || c.conn == nil {
		return
	}
	c.conn.Release()
	c.conn = nil
}

func (c *pgxConn) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}

type pgxRows struct {
	rows   pgx.Rows
	cancel context.CancelFunc
}

func (r pgxRows) Close() {
	r.rows.Close()
	r.cancel()
}

func (r pgxRows) Next() bool {
	return r.rows.Next()
}

func (r pgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r pgxRows) Err() error {
	return r.rows.Err()
}

type pgxRow struct {
	row    pgx.Row
	cancel context.CancelFunc
}

func (r pgxRow) Scan(dest ...any) error {
	defer r.cancel()
	err := r.row.Scan(dest...)
	if errors.Is(err, pgx.ErrNoRows) {
		return database.ErrNoRows
	}
	return err
}
