// Package sqldb adapts database/sql drivers to database.DB. MySQL is the
// production target; any registered driver using '?' placeholders works.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"powar-data/internal/config"
	"powar-data/internal/database"

	"github.com/go-sql-driver/mysql"
)

type Options struct {
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
}

type DB struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func MySQLDSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = strings.TrimSpace(cfg.DBUser)
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(strings.TrimSpace(cfg.DBHost), strings.TrimSpace(cfg.DBPort))
	mc.DBName = strings.TrimSpace(cfg.DBName)
	mc.ParseTime = true
	mc.Loc = time.UTC
	if cfg.ConnectTimeout > 0 {
		mc.Timeout = cfg.ConnectTimeout
	}
	return mc.FormatDSN()
}

func ConnectMySQL(cfg config.DatabaseConfig) (database.DB, error) {
	return Open("mysql", MySQLDSN(cfg), Options{
		MaxOpenConns:    int(cfg.PoolMaxConns),
		ConnMaxIdleTime: cfg.PoolMaxConnIdleTime,
		QueryTimeout:    cfg.QueryTimeout,
	})
}

// Open does not dial; the first Acquire does.
func Open(driverName, dsn string, opts Options) (*DB, error) {
	if strings.TrimSpace(driverName) == "" {
		return nil, fmt.Errorf("sqldb: empty driver name")
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqldb: empty dsn")
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqldb: open: %w", err)
	}
	return New(db, opts), nil
}

func New(db *sql.DB, opts Options) *DB {
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}
	return &DB{db: db, queryTimeout: opts.QueryTimeout}
}

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.db == nil {
		return fmt.Errorf("nil db")
	}
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Acquire(ctx context.Context) (database.Conn, error) {
	if d == nil || d.db == nil {
		return nil, database.ConnectionFailure("acquire", fmt.Errorf("nil db"))
	}
	c, err := d.db.Conn(ctx)
	if err != nil {
		return nil, database.ConnectionFailure("acquire", err)
	}
	return &sqlConn{conn: c, queryTimeout: d.queryTimeout}, nil
}

type sqlConn struct {
	conn         *sql.Conn
	queryTimeout time.Duration
}

func (c *sqlConn) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	ctx, cancel := c.withTimeout(ctx)
	r, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		cancel()
		return nil, err
	}
	return sqlRows{rows: r, cancel: cancel}, nil
}

func (c *sqlConn) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	ctx, cancel := c.withTimeout(ctx)
	return sqlRow{row: c.conn.QueryRowContext(ctx, query, args...), cancel: cancel}
}

func (c *sqlConn) Release() {
	if c == nil || c.conn == nil {
		return
	}
	_ = c.conn.Close()
	c.conn = nil
}

func (c *sqlConn) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.queryTimeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.queryTimeout)
}

type sqlRows struct {
	rows   *sql.Rows
	cancel context.CancelFunc
}

func (r sqlRows) Close() {
	_ = r.rows.Close()
	r.cancel()
}

func (r sqlRows) Next() bool {
	return r.rows.Next()
}

func (r sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r sqlRows) Err() error {
	return r.rows.Err()
}

type sqlRow struct {
	row    *sql.Row
	cancel context.CancelFunc
}

func (r sqlRow) Scan(dest ...any) error {
	defer r.cancel()
	err := r.row.Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return database.ErrNoRows
	}
	return err
}
