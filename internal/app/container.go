package app

import (
	"context"
	"fmt"

	"powar-data/internal/config"
	"powar-data/internal/database"
	dbpostgres "powar-data/internal/database/postgres"
	"powar-data/internal/database/sqldb"
	"powar-data/internal/repository"
	"powar-data/internal/usecase"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Log    *zap.Logger
	DB     database.DB

	Master    usecase.MasterUsecase
	Users     usecase.UserUsecase
	Analytics usecase.AnalyticsUsecase
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	pingDB(ctx, db, cfg.Database, logger)

	return NewContainerWithDB(cfg, db, logger), nil
}

// NewContainerWithDB wires repositories and usecases over an already open DB.
func NewContainerWithDB(cfg config.Config, db database.DB, logger *zap.Logger) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Container{
		Config:    cfg,
		Log:       logger,
		DB:        db,
		Master:    usecase.NewMasterUsecase(repository.NewSQLMasterRepository(db), logger.Named("master")),
		Users:     usecase.NewUserUsecase(repository.NewSQLUserRepository(db), logger.Named("users")),
		Analytics: usecase.NewAnalyticsUsecase(repository.NewSQLAnalyticsRepository(db), logger.Named("analytics")),
	}
}

// pingDB checks the store once at boot. The store may come up after the
// service; requests fail individually with a connection error until it does.
func pingDB(ctx context.Context, db database.DB, cfg config.DatabaseConfig, logger *zap.Logger) bool {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := db.Ping(ctx); err != nil {
		logger.Warn("database not reachable at startup", zap.String("driver", cfg.Driver), zap.Error(err))
		return false
	}
	logger.Info("database connected", zap.String("driver", cfg.Driver), zap.String("host", cfg.DBHost))
	return true
}

func openDB(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return dbpostgres.Connect(ctx, cfg)
	case config.DriverMySQL:
		return sqldb.ConnectMySQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
