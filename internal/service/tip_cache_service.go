package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-monitor-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by TipCache.Get when no list is cached.
var ErrCacheMiss = errors.New("cache miss")

const (
	// TipListKey holds the JSON encoded tip list.
	TipListKey = "tips:all"

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second
)

// TipCache keeps the full tip list in Redis. Callers treat every error as a miss.
type TipCache interface {
	Get(ctx context.Context) ([]entity.Tip, error)
	Set(ctx context.Context, tips []entity.Tip) error
	Invalidate(ctx context.Context) error
}

type redisTipCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewTipCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) TipCache {
	return &redisTipCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *redisTipCache) Get(ctx context.Context) ([]entity.Tip, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, TipListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("get %s: %w", TipListKey, err)
	}

	var tips []entity.Tip
	if err := json.Unmarshal(raw, &tips); err != nil {
		return nil, fmt.Errorf("decode %s: %w", TipListKey, err)
	}

	c.log.Debugf("Tip cache hit: %d tips", len(tips))
	return tips, nil
}

func (c *redisTipCache) Set(ctx context.Context, tips []entity.Tip) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := json.Marshal(tips)
	if err != nil {
		return fmt.Errorf("encode %s: %w", TipListKey, err)
	}

	if err := c.redisClient.Set(ctx, TipListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", TipListKey, err)
	}
	return nil
}

func (c *redisTipCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, TipListKey).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", TipListKey, err)
	}
	return nil
}

type noopTipCache struct{}

// NewNoopTipCache returns a cache that never hits. Used when Redis is unavailable.
func NewNoopTipCache() TipCache {
	return noopTipCache{}
}

func (noopTipCache) Get(context.Context) ([]entity.Tip, error) { return nil, ErrCacheMiss }
func (noopTipCache) Set(context.Context, []entity.Tip) error   { return nil }
func (noopTipCache) Invalidate(context.Context) error          { return nil }
