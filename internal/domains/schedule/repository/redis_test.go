package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "meetslot/infras/otel/mocks"
	"meetslot/internal/domains/schedule/model"
	"meetslot/internal/domains/schedule/repository"
)

func newRedisStore(t *testing.T) (repository.SlotStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	// reservations expire relative to their date, so pin the server clock before it
	server.SetTime(time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC))
	client := goRedis.NewClient(&goRedis.Options{
		Addr:        server.Addr(),
		MaxRetries:  -1,
		DialTimeout: time.Second,
	})

	t.Cleanup(func() { _ = client.Close() })

	return repository.NewRedis(client, otelMocks.NewOtel()), server
}

func TestRedisStore_ReserveThenReserve(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)
	slot := model.BookedSlot{Date: "2025-09-09", Time: "10:00", MeetingID: "m-1"}

	require.NoError(t, store.Reserve(ctx, slot))
	assert.ErrorIs(t, store.Reserve(ctx, slot), model.ErrSlotAlreadyBooked)

	assert.Contains(t, server.HGet("booked_slots:2025-09-09", "10:00"), `"meetingId":"m-1"`)
	assert.Positive(t, server.TTL("booked_slots:2025-09-09"))

	booked, err := store.IsBooked(ctx, slot.Date, slot.Time)
	require.NoError(t, err)
	assert.True(t, booked)
}

func TestRedisStore_ListAndRelease(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	for _, slotTime := range []string{"14:30", "09:00", "10:00"} {
		require.NoError(t, store.Reserve(ctx, model.BookedSlot{Date: "2025-09-09", Time: slotTime}))
	}

	times, err := store.ListBooked(ctx, "2025-09-09")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "14:30"}, times)

	require.NoError(t, store.Release(ctx, "2025-09-09", "10:00"))
	assert.ErrorIs(t, store.Release(ctx, "2025-09-09", "10:00"), model.ErrSlotNotFound)

	times, err = store.ListBooked(ctx, "2025-09-09")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:30"}, times)

	empty, err := store.ListBooked(ctx, "2025-09-10")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRedisStore_ConcurrentReserveHasOneWinner(t *testing.T) {
	const contenders = 32

	ctx := context.Background()
	store, _ := newRedisStore(t)
	slot := model.BookedSlot{Date: "2025-09-09", Time: "10:00"}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)

	for range contenders {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := store.Reserve(ctx, slot)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				winners++
			case errors.Is(err, model.ErrSlotAlreadyBooked):
				conflicts++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.Equal(t, contenders-1, conflicts)
}

func TestRedisStore_ServerDownIsUnavailable(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)

	server.Close()

	err := store.Reserve(ctx, model.BookedSlot{Date: "2025-09-09", Time: "10:00"})
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)

	_, err = store.IsBooked(ctx, "2025-09-09", "10:00")
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}

func TestRedisStore_CommandErrorIsNotAnOutage(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)

	require.NoError(t, server.Set("booked_slots:2025-09-09", "not a hash"))

	err := store.Reserve(ctx, model.BookedSlot{Date: "2025-09-09", Time: "10:00"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrStoreUnavailable))
}
