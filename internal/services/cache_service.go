package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	cachePrefix          = "catalog:"
	publishedMoviesKey   = cachePrefix + "movies:published"
	movieDetailKeyPrefix = cachePrefix + "movies:slug:"
)

// MovieDetail is the public detail view of one movie.
type MovieDetail struct {
	Movie  models.Movie         `json:"movie"`
	Rating models.RatingSummary `json:"rating"`
}

// CatalogCache keeps public catalog reads. Misses and cache errors both
// report ok=false so callers fall back to the database.
type CatalogCache interface {
	GetPublished(ctx context.Context) ([]models.Movie, bool)
	SetPublished(ctx context.Context, movies []models.Movie)
	GetDetail(ctx context.Context, slug string) (*MovieDetail, bool)
	SetDetail(ctx context.Context, slug string, detail *MovieDetail)
	Invalidate(ctx context.Context)
}

// NewCatalogCache connects to Redis, or returns a no-op cache when no
// address is configured.
func NewCatalogCache(ctx context.Context, cfg config.RedisConfig, logger *logrus.Logger) (CatalogCache, error) {
	if cfg.Addr == "" {
		logger.Info("Redis address not set, catalog cache disabled")
		return NopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.WithField("addr", cfg.Addr).Info("Redis connection successful")
	return NewRedisCatalogCache(client, cfg.TTL, logger), nil
}

type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}

func (c *RedisCatalogCache) GetPublished(ctx context.Context) ([]models.Movie, bool) {
	var movies []models.Movie
	if !c.get(ctx, publishedMoviesKey, &movies) {
		return nil, false
	}
	return movies, true
}

func (c *RedisCatalogCache) SetPublished(ctx context.Context, movies []models.Movie) {
	c.set(ctx, publishedMoviesKey, movies)
}

func (c *RedisCatalogCache) GetDetail(ctx context.Context, slug string) (*MovieDetail, bool) {
	var detail MovieDetail
	if !c.get(ctx, movieDetailKeyPrefix+slug, &detail) {
		return nil, false
	}
	return &detail, true
}

func (c *RedisCatalogCache) SetDetail(ctx context.Context, slug string, detail *MovieDetail) {
	c.set(ctx, movieDetailKeyPrefix+slug, detail)
}

// Invalidate drops every cached catalog entry.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, cachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.WithError(err).Warn("Failed to scan catalog cache keys")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WithError(err).Warn("Failed to invalidate catalog cache")
		return
	}
	c.logger.WithField("keys", len(keys)).Debug("Catalog cache invalidated")
}

func (c *RedisCatalogCache) get(ctx context.Context, key string, dest interface{}) bool {
	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).WithField("key", key).Warn("Failed to read catalog cache")
		}
		return false
	}

	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to decode cached catalog entry")
		return false
	}
	return true
}

func (c *RedisCatalogCache) set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to encode catalog cache entry")
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to write catalog cache")
	}
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) GetPublished(context.Context) ([]models.Movie, bool)    { return nil, false }
func (NopCache) SetPublished(context.Context, []models.Movie)           {}
func (NopCache) GetDetail(context.Context, string) (*MovieDetail, bool) { return nil, false }
func (NopCache) SetDetail(context.Context, string, *MovieDetail)        {}
func (NopCache) Invalidate(context.Context)                             {}
