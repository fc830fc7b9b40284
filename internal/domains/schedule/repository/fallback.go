package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog/log"

	"meetslot/internal/domains/schedule/model"
)

// slotLockStripes bounds the lock table; unrelated slots may share a stripe.
const slotLockStripes = 64

type fallbackStore struct {
	durable SlotStore
	memory  SlotStore
	locks   [slotLockStripes]sync.Mutex
}

// NewFallback serves from durable and switches to memory whenever durable reports
// model.ErrStoreUnavailable. Reads merge both sides so outage-time reservations stay
// visible to this process. Memory entries are lost on restart and never reach other
// instances.
func NewFallback(durable, memory SlotStore) SlotStore {
	return &fallbackStore{
		durable: durable,
		memory:  memory,
	}
}

// lock serializes Reserve and Release of one slot within this process, so the memory
// check and the durable or memory insert act as one step.
func (s *fallbackStore) lock(date, time string) func() {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(date + " " + time))

	mu := &s.locks[hash.Sum32()%slotLockStripes]
	mu.Lock()

	return mu.Unlock
}

func degraded(err error, op string) bool {
	if !errors.Is(err, model.ErrStoreUnavailable) {
		return false
	}

	log.Warn().Err(err).Str("op", op).Msg("durable slot store unavailable, using in-memory store")

	return true
}

func (s *fallbackStore) Reserve(ctx context.Context, slot model.BookedSlot) error {
	defer s.lock(slot.Date, slot.Time)()

	// a slot taken in memory during an outage must not be handed out again once durable is back
	if taken, _ := s.memory.IsBooked(ctx, slot.Date, slot.Time); taken {
		return model.ErrSlotAlreadyBooked
	}

	err := s.durable.Reserve(ctx, slot)
	if degraded(err, "Reserve") {
		return s.memory.Reserve(ctx, slot) //nolint:wrapcheck
	}

	return err //nolint:wrapcheck
}

func (s *fallbackStore) Release(ctx context.Context, date, time string) error {
	defer s.lock(date, time)()

	durableErr := s.durable.Release(ctx, date, time)
	memoryErr := s.memory.Release(ctx, date, time)

	if durableErr == nil || memoryErr == nil {
		return nil
	}

	if degraded(durableErr, "Release") {
		return memoryErr //nolint:wrapcheck
	}

	return durableErr //nolint:wrapcheck
}

func (s *fallbackStore) ListBooked(ctx context.Context, date string) ([]string, error) {
	local, err := s.memory.ListBooked(ctx, date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	remote, err := s.durable.ListBooked(ctx, date)
	if err != nil && !degraded(err, "ListBooked") {
		return nil, err //nolint:wrapcheck
	}

	return sortedUnique(append(remote, local...)), nil
}

func (s *fallbackStore) IsBooked(ctx context.Context, date, time string) (bool, error) {
	if taken, _ := s.memory.IsBooked(ctx, date, time); taken {
		return true, nil
	}

	booked, err := s.durable.IsBooked(ctx, date, time)
	if degraded(err, "IsBooked") {
		return false, nil
	}

	return booked, err //nolint:wrapcheck
}
