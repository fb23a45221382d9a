package logger

import (
	"powar-data/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger for the given environment. Production gets
// JSON at info level; everything else gets the console encoder at debug.
func New(env string) (*zap.Logger, error) {
	switch env {
	case config.EnvProd:
		return zap.NewProduction()
	case config.EnvDev:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		return cfg.Build()
	default:
		return zap.NewDevelopment()
	}
}
