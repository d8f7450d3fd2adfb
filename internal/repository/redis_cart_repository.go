package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace = "sf"
	cartPrefix   = "cart"
)

type cmdable interface {
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
}

type redisCartRepository struct {
	store cmdable
	ttl   time.Duration
}

// NewRedisCart keeps each cart as one JSON value under sf:cart:<owner>.
// A zero ttl keeps the key forever.
func NewRedisCart(client redis.Cmdable, ttl time.Duration) port.CartSlot {
	return &redisCartRepository{store: client, ttl: ttl}
}

func (r *redisCartRepository) Load(ctx context.Context, ownerID string) ([]domain.CartLine, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	payload, err := r.store.Get(ctx, cartKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, port.ErrSlotEmpty
		}
		return nil, fmt.Errorf("redis.Get: %w", err)
	}

	lines, err := decodeLines(payload)
	if err != nil {
		return nil, fmt.Errorf("decodeLines: %w", err)
	}

	return lines, nil
}

func (r *redisCartRepository) Save(ctx context.Context, ownerID string, lines []domain.CartLine) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	payload, err := encodeLines(lines)
	if err != nil {
		return fmt.Errorf("encodeLines: %w", err)
	}

	if err := r.store.Set(ctx, cartKey(ownerID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func cartKey(ownerID string) string {
	return fmt.Sprintf("%s:%s:%s", keyNamespace, cartPrefix, ownerID)
}

// OpenRedis builds a pooled client from cfg and verifies connectivity.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func redisOptions(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}

	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	return opts, nil
}
