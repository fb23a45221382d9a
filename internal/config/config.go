package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME" env-default:"python-data-processor"`
	Environment string `env:"APP_ENV" env-default:"local"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"5000"`
	BasePath    string `env:"HTTP_BASE_PATH"`
}

type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" env-default:"mysql"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"3306"`
	DBName     string `env:"DB_NAME" env-default:"powar_db"`
	DBUser     string `env:"DB_USER" env-default:"root"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`

	ConnectTimeout      time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"5s"`
	QueryTimeout        time.Duration `env:"DB_QUERY_TIMEOUT" env-default:"0s"`
	PoolMaxConns        int32         `env:"DB_POOL_MAX_CONNS" env-default:"10"`
	PoolMaxConnIdleTime time.Duration `env:"DB_POOL_MAX_IDLE_TIME" env-default:"5m"`
}

var (
	errInvalidConfig = errors.New("invalid configuration")
)

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	cfg.App.AppName = strings.TrimSpace(cfg.App.AppName)
	cfg.App.Environment = strings.ToLower(strings.TrimSpace(cfg.App.Environment))
	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.App.BasePath = normalizeBasePath(cfg.App.BasePath)
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var problems []string
	if c.App.HTTPPort == "" {
		problems = append(problems, "HTTP_PORT is empty")
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER %q is not supported", c.Database.Driver))
	}
	if c.Database.PoolMaxConns < 0 {
		problems = append(problems, "DB_POOL_MAX_CONNS must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
