package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hotel-reservation/pkg/database"
	"hotel-reservation/pkg/utils"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Open connects the durable backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *utils.Config, log *zap.Logger) (Store, error) {
	switch cfg.Storage.Driver {
	case DriverMemory, "":
		log.Warn("Using in-memory storage, state is lost on restart")
		return NewMemoryStore(), nil

	case DriverSQLite:
		db, err := database.InitSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, err := NewSQLiteStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("SQLite storage ready", zap.String("path", cfg.Storage.SQLitePath))
		return store, nil

	case DriverPostgres:
		db, err := database.InitPostgres(ctx, cfg.Storage.Database)
		if err != nil {
			return nil, err
		}
		store, err := NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		log.Info("Postgres storage ready",
			zap.String("host", cfg.Storage.Database.Host),
			zap.String("database", cfg.Storage.Database.Name),
		)
		return store, nil

	case DriverRedis:
		client, err := database.InitRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info("Redis storage ready", zap.String("addr", cfg.Redis.Addr))
		return NewRedisStore(client), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
