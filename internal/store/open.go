package store

import (
	"context"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Open builds the backend named by cfg.Store.Backend. db is reused for the
// postgres backend when already connected.
func Open(cfg *config.Config, db *gorm.DB) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		logger.Info("using in-memory store")
		return NewMemoryStore(), nil

	case config.BackendSQLite:
		return NewSQLiteStore(cfg.Store.SQLitePath)

	case config.BackendPostgres:
		if db == nil {
			var err error
			if db, err = config.ConnectDB(*cfg); err != nil {
				return nil, err
			}
		}
		return NewGormStore(db)

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Store.RedisAddr, err)
		}
		logger.Info("using redis store at %s", cfg.Store.RedisAddr)
		return NewRedisStore(client, cfg.Store.KeyPrefix), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
