package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PageTTL is how long scraped markup stays cached. Box scores for
	// completed games never change; the TTL just bounds storage.
	PageTTL = 24 * time.Hour

	pageKeyPrefix = "bref:page:"
)

// RedisCache stores fetched pages so re-browsing a date does not re-hit
// the source site.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// GetPage returns cached markup for a URL, or "" on a miss.
func (rc *RedisCache) GetPage(ctx context.Context, url string) (string, error) {
	val, err := rc.client.Get(ctx, pageKeyPrefix+url).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetPage caches markup for a URL
func (rc *RedisCache) SetPage(ctx context.Context, url, html string) error {
	return rc.client.Set(ctx, pageKeyPrefix+url, html, PageTTL).Err()
}

// InvalidatePage drops a cached page
func (rc *RedisCache) InvalidatePage(ctx context.Context, url string) error {
	return rc.client.Del(ctx, pageKeyPrefix+url).Err()
}
