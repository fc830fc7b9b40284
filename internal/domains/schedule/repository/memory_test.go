package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetslot/internal/domains/schedule/model"
	"meetslot/internal/domains/schedule/repository"
)

func TestMemoryStore_ReserveThenReserve(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()
	slot := model.BookedSlot{Date: "2025-09-08", Time: "14:00"}

	require.NoError(t, store.Reserve(ctx, slot))

	booked, err := store.IsBooked(ctx, slot.Date, slot.Time)
	require.NoError(t, err)
	assert.True(t, booked)

	err = store.Reserve(ctx, slot)
	assert.ErrorIs(t, err, model.ErrSlotAlreadyBooked)
}

func TestMemoryStore_ConcurrentReserveHasOneWinner(t *testing.T) {
	const contenders = 64

	ctx := context.Background()
	store := repository.NewMemory()
	slot := model.BookedSlot{Date: "2025-09-09", Time: "10:00"}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		losses  int
		start   = make(chan struct{})
		unknown []error
	)

	for range contenders {
		wg.Add(1)

		go func() {
			defer wg.Done()
			<-start

			err := store.Reserve(ctx, slot)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				wins++
			case errors.Is(err, model.ErrSlotAlreadyBooked):
				losses++
			default:
				unknown = append(unknown, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, contenders-1, losses)
	assert.Empty(t, unknown)
}

func TestMemoryStore_Release(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()

	err := store.Release(ctx, "2025-09-08", "10:00")
	assert.ErrorIs(t, err, model.ErrSlotNotFound)

	require.NoError(t, store.Reserve(ctx, model.BookedSlot{Date: "2025-09-08", Time: "10:00"}))
	require.NoError(t, store.Release(ctx, "2025-09-08", "10:00"))

	booked, err := store.IsBooked(ctx, "2025-09-08", "10:00")
	require.NoError(t, err)
	assert.False(t, booked)

	// released slots can be taken again
	assert.NoError(t, store.Reserve(ctx, model.BookedSlot{Date: "2025-09-08", Time: "10:00"}))
}

func TestMemoryStore_ListBooked(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemory()

	for _, tm := range []string{"15:30", "09:00", "11:00"} {
		require.NoError(t, store.Reserve(ctx, model.BookedSlot{Date: "2025-09-08", Time: tm}))
	}
	require.NoError(t, store.Reserve(ctx, model.BookedSlot{Date: "2025-09-09", Time: "12:00"}))

	times, err := store.ListBooked(ctx, "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "15:30"}, times)

	times, err = store.ListBooked(ctx, "2025-09-10")
	require.NoError(t, err)
	assert.Empty(t, times)
}
