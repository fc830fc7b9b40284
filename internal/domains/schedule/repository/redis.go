package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	goRedis "github.com/redis/go-redis/v9"

	"meetslot/infras/otel"
	"meetslot/internal/domains/schedule/model"
	"meetslot/shared/constant"
)

const (
	redisKeyPrefix = "booked_slots:"
	// reservations outlive their date by this long, then expire
	redisRetention = 90 * 24 * time.Hour
)

type redisStore struct {
	client *goRedis.Client
	otel   otel.Otel
	now    func() time.Time
}

// NewRedis stores one hash per date, field = HH:MM, value = the slot as JSON.
func NewRedis(client *goRedis.Client, otel otel.Otel) SlotStore {
	return &redisStore{
		client: client,
		otel:   otel,
		now:    time.Now,
	}
}

func redisKey(date string) string {
	return redisKeyPrefix + date
}

func (s *redisStore) scope(ctx context.Context, method string) (context.Context, otel.Scope) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.redis.%s", constant.OtelRepositoryScopeName, model.EntityName, method))

	return ctx, scope
}

func (s *redisStore) wrap(op string, err error) error {
	if isConnectivityError(err) || errors.Is(err, io.EOF) || errors.Is(err, goRedis.ErrClosed) ||
		errors.Is(err, context.DeadlineExceeded) {
		return unavailable(op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// Reserve uses HSETNX, which is atomic on the server.
func (s *redisStore) Reserve(ctx context.Context, slot model.BookedSlot) (err error) {
	ctx, scope := s.scope(ctx, "Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slot.Touch(s.now())

	payload, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	key := redisKey(slot.Date)

	created, err := s.client.HSetNX(ctx, key, slot.Time, payload).Result()
	if err != nil {
		return s.wrap("failed to reserve slot", err)
	}

	if !created {
		return model.ErrSlotAlreadyBooked
	}

	if day, perr := time.Parse(constant.DateLayout, slot.Date); perr == nil {
		s.client.ExpireAt(ctx, key, day.Add(redisRetention))
	}

	return nil
}

func (s *redisStore) Release(ctx context.Context, date, slotTime string) (err error) {
	ctx, scope := s.scope(ctx, "Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	removed, err := s.client.HDel(ctx, redisKey(date), slotTime).Result()
	if err != nil {
		return s.wrap("failed to release slot", err)
	}

	if removed == 0 {
		return model.ErrSlotNotFound
	}

	return nil
}

func (s *redisStore) ListBooked(ctx context.Context, date string) (times []string, err error) {
	ctx, scope := s.scope(ctx, "ListBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	times, err = s.client.HKeys(ctx, redisKey(date)).Result()
	if err != nil {
		return nil, s.wrap("failed to list booked slots", err)
	}

	return sortedUnique(times), nil
}

func (s *redisStore) IsBooked(ctx context.Context, date, slotTime string) (booked bool, err error) {
	ctx, scope := s.scope(ctx, "IsBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booked, err = s.client.HExists(ctx, redisKey(date), slotTime).Result()
	if err != nil {
		return false, s.wrap("failed to check booked slot", err)
	}

	return booked, nil
}
