package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"powar-data/internal/config"
	"powar-data/internal/database/migration"
	"powar-data/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var (
		direction string
		steps     int
		table     string
	)
	flag.StringVar(&direction, "direction", "up", "up or down")
	flag.IntVar(&steps, "steps", 1, "number of migrations to revert when direction is down")
	flag.StringVar(&table, "migrations-table", migration.DefaultTable, "name of migrations table")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	r := migration.Runner{Config: cfg.Database, Table: table, Log: lg.Named("migrator")}

	switch direction {
	case "up":
		err = r.Up()
	case "down":
		err = r.Down(steps)
	default:
		lg.Fatal("unknown direction", zap.String("direction", direction))
	}
	if err != nil {
		lg.Fatal("migration failed", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
}
