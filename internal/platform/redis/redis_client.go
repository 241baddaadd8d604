// Package redis constructs the optional cache-acceleration client.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"tutor_backend/internal/platform/config"
)

// NewClient connects to Redis and verifies the connection with a
// ping. Callers treat a nil client as "run without Redis"; the
// durable store answers everything on its own.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("redis connection successful", "address", addr)
	return rdb, nil
}
