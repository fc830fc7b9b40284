package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetslot/config"
	"meetslot/infras/otel/mocks"
	"meetslot/internal/domains/schedule/model"
	"meetslot/internal/domains/schedule/repository"
	"meetslot/internal/domains/schedule/service"
	"meetslot/shared/background"
	"meetslot/shared/cache"
)

// memoryCache is a RedisCache. When hold is set, the next Save signals held and
// waits for hold to close.
type memoryCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	hold    chan struct{}
	held    chan struct{}
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	c.mu.Lock()
	hold := c.hold
	c.hold = nil
	c.mu.Unlock()

	if hold != nil {
		close(c.held)
		<-hold
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = raw

	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	raw, ok := c.values[key]
	c.mu.Unlock()

	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(raw, value)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, key)
	c.deletes++

	return nil
}

func (c *memoryCache) Clear(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")

	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.values {
		if strings.HasPrefix(key, prefix) {
			delete(c.values, key)
		}
	}

	return nil
}

func (c *memoryCache) deleteCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deletes
}

func newCachedService(t *testing.T, redisCache cache.RedisCache) (service.Schedule, *background.Runner) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	jobs := background.New()
	svc := service.New(repository.NewMemory(), redisCache, jobs, fixedClock, cfg, mocks.NewOtel())

	t.Cleanup(func() {
		require.NoError(t, jobs.Wait(context.Background()))
	})

	return svc, jobs
}

func TestScheduleService_ReserveInvalidatesBeforeReturning(t *testing.T) {
	ctx := context.Background()
	redisCache := newMemoryCache()
	svc, jobs := newCachedService(t, redisCache)

	res, err := svc.BookedSlots(ctx, "2025-09-09")
	require.NoError(t, err)
	assert.Empty(t, res.BookedSlots)
	require.NoError(t, jobs.Wait(ctx))

	require.NoError(t, svc.Reserve(ctx, model.BookedSlot{Date: "2025-09-09", Time: "10:00"}))
	assert.Equal(t, 1, redisCache.deleteCount())

	res, err = svc.BookedSlots(ctx, "2025-09-09")
	require.NoError(t, err)
	require.Len(t, res.BookedSlots, 1)
	assert.Equal(t, "10:00", res.BookedSlots[0].Time)
}

func TestScheduleService_StaleFillDoesNotOutliveReserve(t *testing.T) {
	ctx := context.Background()
	gate := make(chan struct{})
	redisCache := newMemoryCache()
	redisCache.hold = gate
	redisCache.held = make(chan struct{})
	svc, jobs := newCachedService(t, redisCache)

	// the listing read the store while it was empty; its fill is held mid save
	res, err := svc.BookedSlots(ctx, "2025-09-09")
	require.NoError(t, err)
	assert.Empty(t, res.BookedSlots)

	<-redisCache.held

	require.NoError(t, svc.Reserve(ctx, model.BookedSlot{Date: "2025-09-09", Time: "10:00"}))

	close(gate)

	require.NoError(t, jobs.Wait(ctx))

	res, err = svc.BookedSlots(ctx, "2025-09-09")
	require.NoError(t, err)
	require.Len(t, res.BookedSlots, 1)
	assert.Equal(t, "10:00", res.BookedSlots[0].Time)
}
