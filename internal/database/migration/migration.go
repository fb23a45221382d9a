// Package migration applies the embedded schema and master data with
// golang-migrate. Each supported driver has its own SQL dialect directory.
package migration

import (
	"embed"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"powar-data/internal/config"
	"powar-data/internal/database/sqldb"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed mysql/*.sql postgres/*.sql
var files embed.FS

const DefaultTable = "schema_migrations"

type Runner struct {
	Config config.DatabaseConfig
	Table  string
	Log    *zap.Logger
}

// DatabaseURL builds the golang-migrate URL for cfg.
func DatabaseURL(cfg config.DatabaseConfig, table string) (string, error) {
	if table == "" {
		table = DefaultTable
	}

	switch cfg.Driver {
	case config.DriverMySQL:
		return "mysql://" + sqldb.MySQLDSN(cfg) + "&multiStatements=true&x-migrations-table=" + url.QueryEscape(table), nil
	case config.DriverPostgres:
		u := url.URL{
			Scheme: "pgx5",
			User:   url.UserPassword(strings.TrimSpace(cfg.DBUser), cfg.DBPassword),
			Host:   net.JoinHostPort(strings.TrimSpace(cfg.DBHost), strings.TrimSpace(cfg.DBPort)),
			Path:   "/" + strings.TrimSpace(cfg.DBName),
		}
		q := url.Values{}
		q.Set("sslmode", strings.TrimSpace(cfg.DBSSLMode))
		q.Set("x-migrations-table", table)
		u.RawQuery = q.Encode()
		return u.String(), nil
	default:
		return "", fmt.Errorf("migration: unsupported driver %q", cfg.Driver)
	}
}

func (r Runner) open() (*migrate.Migrate, error) {
	src, err := iofs.New(files, r.Config.Driver)
	if err != nil {
		return nil, fmt.Errorf("migration: source for %q: %w", r.Config.Driver, err)
	}

	dbURL, err := DatabaseURL(r.Config, r.Table)
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL)
	if err != nil {
		return nil, fmt.Errorf("migration: open: %w", err)
	}
	return m, nil
}

func (r Runner) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}

// Up applies all pending migrations. Having nothing to apply is not an error.
func (r Runner) Up() error {
	return r.run("up", func(m *migrate.Migrate) error { return m.Up() })
}

// Down reverts the most recent n migrations.
func (r Runner) Down(n int) error {
	if n <= 0 {
		return fmt.Errorf("migration: down steps must be positive, got %d", n)
	}
	return r.run("down", func(m *migrate.Migrate) error { return m.Steps(-n) })
}

func (r Runner) run(direction string, fn func(*migrate.Migrate) error) error {
	m, err := r.open()
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			r.logger().Warn("migration close failed", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err := fn(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger().Info("no migrations to apply", zap.String("direction", direction))
			return nil
		}
		return fmt.Errorf("migration %s: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}
	r.logger().Info("migrations applied",
		zap.String("direction", direction),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
