//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"groombook/internal/domain/customer"
	"groombook/internal/infra/cache"
	"groombook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_DisabledWithoutAddr(t *testing.T) {
	assert.Nil(t, cache.NewRedisClient(config.RedisConfig{}))
}

func TestRosterCache_WithoutClient(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	for name, c := range map[string]*cache.RosterCache{
		"nil cache":  nil,
		"nil client": cache.NewRosterCache(nil, time.Minute),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Set(ctx, tenantID, []customer.Customer{{ID: uuid.New()}}))

			roster, hit, err := c.Get(ctx, tenantID)
			require.NoError(t, err)
			assert.False(t, hit)
			assert.Nil(t, roster)

			assert.NoError(t, c.Invalidate(ctx, tenantID))
		})
	}
}
