package engine

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is the offer cache's contract: (customer-id, config-hash) ->
// ranked offer set, with TTL. Writes are best-effort: Put never
// surfaces a failure to the caller. A read that hits a corrupted
// entry is treated as a miss and the entry is evicted.
type Cache interface {
	Get(key string) (*GenerateResult, bool)
	Put(key string, result *GenerateResult, ttl time.Duration)
}

// memoryCacheEntry pairs a stored result with its expiry.
type memoryCacheEntry struct {
	result    *GenerateResult
	expiresAt time.Time
}

// MemoryCache is a shared-state map protected by a mutex, safe for
// concurrent reads and writes. Expired entries are evicted lazily on
// read.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryCacheEntry
}

// NewMemoryCache builds an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]memoryCacheEntry)}
}

func (c *MemoryCache) Get(key string) (*GenerateResult, bool) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.result, true
}

func (c *MemoryCache) Put(key string, result *GenerateResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = memoryCacheEntry{result: result, expiresAt: time.Now().Add(ttl)}
}

// RedisCache namespaces JSON-marshaled offer sets under a shared
// redis.Client. A dead backend or a corrupted entry is logged at
// warning level and treated as a cache miss/no-op; it never fails
// the caller.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisCache wraps an existing redis.Client. A nil logger falls
// back to a no-op logger.
func NewRedisCache(client *redis.Client, logger *zap.Logger) *RedisCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCache{client: client, prefix: "tradeup:offers:", logger: logger}
}

func (c *RedisCache) Get(key string) (*GenerateResult, bool) {
	if c.client == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("offer cache read failed, treating as miss", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var result GenerateResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn("offer cache entry corrupted, evicting", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, c.prefix+key).Err()
		return nil, false
	}
	return &result, true
}

func (c *RedisCache) Put(key string, result *GenerateResult, ttl time.Duration) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("offer cache marshal failed, skipping write", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		c.logger.Warn("offer cache write failed", zap.String("key", key), zap.Error(err))
	}
}
