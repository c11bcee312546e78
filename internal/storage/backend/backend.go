// Package backend builds the configured storage.Store.
package backend

import (
	"context"
	"fmt"

	"scratchcard-backend/internal/common/config"
	"scratchcard-backend/internal/common/logger"
	"scratchcard-backend/internal/platform/postgres"
	platformredis "scratchcard-backend/internal/platform/redis"
	"scratchcard-backend/internal/platform/sqlite"
	"scratchcard-backend/internal/storage"
	"scratchcard-backend/internal/storage/file"
	"scratchcard-backend/internal/storage/memory"
	redisstore "scratchcard-backend/internal/storage/redis"
	"scratchcard-backend/internal/storage/sqlstore"
)

// Open connects to the backend selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Warn().Msg("Using in-memory storage; state is lost on restart")
		return memory.New(), nil

	case config.BackendFile:
		s, err := file.New(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("data_dir", cfg.Storage.DataDir).Msg("Using JSON file storage")
		return s, nil

	case config.BackendRedis:
		client, err := platformredis.Open(ctx, platformredis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		logger.Info().Str("addr", client.Addr()).Str("prefix", cfg.Redis.KeyPrefix).Msg("Using Redis storage")
		return &ownedRedisStore{
			Store: redisstore.New(client.Client, redisstore.Options{
				KeyPrefix: cfg.Redis.KeyPrefix,
				LockTTL:   cfg.Redis.LockTTL,
				LockWait:  cfg.Redis.LockWait,
			}),
			client: client,
		}, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return migrated(ctx, sqlstore.New(db, sqlstore.Postgres))

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Storage.SQLitePath).Msg("Using SQLite storage")
		return migrated(ctx, sqlstore.New(db, sqlstore.SQLite))
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func migrated(ctx context.Context, s *sqlstore.Store) (storage.Store, error) {
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// ownedRedisStore closes the client it was opened with.
type ownedRedisStore struct {
	*redisstore.Store
	client *platformredis.Client
}

func (s *ownedRedisStore) Close() error {
	return s.client.Close()
}
