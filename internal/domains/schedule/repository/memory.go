package repository

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"meetslot/internal/domains/schedule/model"
)

// memoryStore keeps reservations in process. It is not durable across restarts and
// does not coordinate with other instances.
type memoryStore struct {
	mu    sync.RWMutex
	slots map[string]map[string]model.BookedSlot
	now   func() time.Time
}

func NewMemory() SlotStore {
	return &memoryStore{
		slots: make(map[string]map[string]model.BookedSlot),
		now:   time.Now,
	}
}

func (s *memoryStore) Reserve(_ context.Context, slot model.BookedSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.slots[slot.Date]
	if !ok {
		day = make(map[string]model.BookedSlot)
		s.slots[slot.Date] = day
	}

	if _, taken := day[slot.Time]; taken {
		return model.ErrSlotAlreadyBooked
	}

	slot.Touch(s.now())
	day[slot.Time] = slot

	return nil
}

func (s *memoryStore) Release(_ context.Context, date, time string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.slots[date]
	if !ok {
		return model.ErrSlotNotFound
	}

	if _, taken := day[time]; !taken {
		return model.ErrSlotNotFound
	}

	delete(day, time)

	if len(day) == 0 {
		delete(s.slots, date)
	}

	return nil
}

func (s *memoryStore) ListBooked(_ context.Context, date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Sorted(maps.Keys(s.slots[date])), nil
}

func (s *memoryStore) IsBooked(_ context.Context, date, time string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, taken := s.slots[date][time]

	return taken, nil
}
