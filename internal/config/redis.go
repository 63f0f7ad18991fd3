package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient creates a new Redis client. The offer cache treats a
// dead Redis the same way the rest of the host does: log a warning and
// keep going, never fail startup.
func NewRedisClient(cfg *Config, logger *zap.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn("invalid redis url, falling back to localhost default", zap.Error(err))
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable - offer cache reads will miss and writes will be skipped", zap.Error(err))
	} else {
		logger.Info("redis connected successfully", zap.String("addr", opts.Addr))
	}

	return client
}
