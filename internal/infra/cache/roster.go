package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"groombook/internal/domain/customer"
	"groombook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const rosterKeyPrefix = "roster:"

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RosterCache keeps serialized rosters per tenant in redis.
type RosterCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRosterCache(client *redis.Client, ttl time.Duration) *RosterCache {
	return &RosterCache{client: client, ttl: ttl}
}

func rosterKey(tenantID uuid.UUID) string {
	return rosterKeyPrefix + tenantID.String()
}

func (c *RosterCache) Get(ctx context.Context, tenantID uuid.UUID) ([]customer.Customer, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}

	raw, err := c.client.Get(ctx, rosterKey(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var roster []customer.Customer
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, false, err
	}
	return roster, true, nil
}

func (c *RosterCache) Set(ctx context.Context, tenantID uuid.UUID, roster []customer.Customer) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(roster)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rosterKey(tenantID), raw, c.ttl).Err()
}

// Invalidate drops the tenant's cached roster.
func (c *RosterCache) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, rosterKey(tenantID)).Err()
}
