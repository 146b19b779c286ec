package cache

import (
	"context"
	"fmt"
	"time"

	"health-monitor-api/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	pingTimeout = 5 * time.Second
	ioTimeout   = 500 * time.Millisecond
)

// NewRedisClient connects the client backing the tip cache. Reads and writes time out
// quickly so a slow Redis degrades to a database read instead of a slow request.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}
