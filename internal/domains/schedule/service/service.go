package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/infras/otel"
	"meetslot/internal/domains/schedule/model"
	"meetslot/internal/domains/schedule/model/dto"
	"meetslot/internal/domains/schedule/repository"
	"meetslot/internal/domains/schedule/rules"
	"meetslot/shared"
	"meetslot/shared/background"
	"meetslot/shared/cache"
	"meetslot/shared/constant"
	"meetslot/shared/failure"
	"meetslot/shared/timezone"
)

// Schedule is the availability engine: it combines the calendar rules with the
// slot store and is the only way other domains touch reservations.
type Schedule interface {
	CheckAvailability(ctx context.Context, date, slotTime string) (dto.AvailabilityResponse, error)
	EnumerateSlots(ctx context.Context, date string) (dto.SlotsResponse, error)
	BookedSlots(ctx context.Context, date string) (dto.BookedSlotsResponse, error)
	Reserve(ctx context.Context, slot model.BookedSlot) error
	Release(ctx context.Context, date, slotTime string) (dto.ReleaseResponse, error)
}

type serviceImpl struct {
	store    repository.SlotStore
	cache    cache.RedisCache
	versions *cacheVersions
	jobs     *background.Runner
	clock    timezone.Clock
	loc      *time.Location
	cfg      *config.Config
	otel     otel.Otel
}

func New(store repository.SlotStore, cache cache.RedisCache, jobs *background.Runner, clock timezone.Clock, cfg *config.Config, otel otel.Otel) Schedule {
	return &serviceImpl{
		store:    store,
		cache:    cache,
		versions: newCacheVersions(),
		jobs:     jobs,
		clock:    clock,
		loc:      timezone.Business(),
		cfg:      cfg,
		otel:     otel,
	}
}

func bookedSlotsCacheKey(date string) string {
	return shared.BuildCacheKey(constant.CacheKeyBookedSlots, date)
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, date, slotTime string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	time24, err := rules.NormalizeTo24Hour(slotTime)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	eval, err := rules.Evaluate(date, time24, s.clock(), s.loc)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booked, err := s.store.IsBooked(ctx, eval.Date, eval.Time)
	if err != nil {
		log.Error().Err(err).Str("date", eval.Date).Str("time", eval.Time).Msg("failed to check booked slot")

		return res, fmt.Errorf("failed to check booked slot: %w", err)
	}

	res.FromEvaluation(eval, booked)

	verdict := rules.Verdict(eval, booked)
	if verdict != nil {
		res.Reason = failure.GetReason(verdict)
		res.Message = failure.GetMessage(verdict)

		return res, nil
	}

	res.Available = true
	res.Reason = model.SlotReasonAvailable
	res.Message = model.MessageAvailable

	return res, nil
}

func (s *serviceImpl) EnumerateSlots(ctx context.Context, date string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnumerateSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := rules.ParseDate(date, s.loc)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Date = day.Format(constant.DateLayout)
	res.DayOfWeek = day.Weekday().String()
	res.Slots = []dto.TimeSlotResponse{}

	if !rules.IsWeekday(day.Weekday()) {
		res.Message = model.MessageNotAWeekday

		return res, nil
	}

	booked, err := s.store.ListBooked(ctx, res.Date)
	if err != nil {
		log.Error().Err(err).Str("date", res.Date).Msg("failed to list booked slots")

		return res, fmt.Errorf("failed to list booked slots: %w", err)
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	now := s.clock()

	for _, start := range rules.SlotStarts(day) {
		time24 := start.Format(constant.TimeLayout24H)
		_, isBooked := taken[time24]
		isPast := !start.After(now)

		slot := dto.TimeSlotResponse{
			Time:        time24,
			DisplayTime: rules.DisplayTime(time24),
			Available:   !isPast && !isBooked,
			Reason:      model.SlotReasonAvailable,
		}

		switch {
		case isPast:
			slot.Reason = model.SlotReasonPast
		case isBooked:
			slot.Reason = model.SlotReasonAlreadyBooked
		}

		res.Slots = append(res.Slots, slot)
	}

	res.Count()
	res.Available = res.AvailableSlots > 0
	res.Message = model.MessageSlotsAvailable

	if !res.Available {
		res.Message = model.MessageNoSlotsLeft
	}

	return res, nil
}

func (s *serviceImpl) BookedSlots(ctx context.Context, date string) (res dto.BookedSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookedSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := rules.ParseDate(date, s.loc)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	date = day.Format(constant.DateLayout)
	cacheKey := bookedSlotsCacheKey(date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booked slots")

		return res, nil
	}

	// taken before the store read so a reservation landing after it voids this fill
	version := s.versions.current(date)

	times, err := s.store.ListBooked(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to list booked slots")

		return res, fmt.Errorf("failed to list booked slots: %w", err)
	}

	res.FromTimes(date, times)

	s.jobs.Go(ctx, "cache.booked_slots.save", func(ctx context.Context) error {
		if s.versions.current(date) != version {
			return nil
		}

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			return err //nolint:wrapcheck
		}

		// an invalidation that ran while saving would be overwritten by this fill
		if s.versions.current(date) != version {
			shared.InvalidateCaches(ctx, s.cache, cacheKey)
		}

		return nil
	})

	return res, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, slot model.BookedSlot) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"slot.date": slot.Date, "slot.time": slot.Time})

	err = s.store.Reserve(ctx, slot)
	if errors.Is(err, model.ErrSlotAlreadyBooked) {
		return failure.Rejected(failure.ReasonSlotAlreadyBooked, model.MessageSlotAlreadyBooked) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("date", slot.Date).Str("time", slot.Time).Msg("failed to reserve slot")

		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	s.invalidate(ctx, slot.Date)

	return nil
}

func (s *serviceImpl) Release(ctx context.Context, date, slotTime string) (res dto.ReleaseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	time24, err := rules.NormalizeTo24Hour(slotTime)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	day, err := rules.ParseDate(date, s.loc)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	date = day.Format(constant.DateLayout)

	err = s.store.Release(ctx, date, time24)
	if errors.Is(err, model.ErrSlotNotFound) {
		return res, failure.NotFound(model.ErrSlotNotFound.Error()) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("date", date).Str("time", time24).Msg("failed to release slot")

		return res, fmt.Errorf("failed to release slot: %w", err)
	}

	log.Info().Str("date", date).Str("time", time24).Msg("booked slot released")

	s.invalidate(ctx, date)

	return dto.ReleaseResponse{
		Success: true,
		Message: model.MessageSlotReleased,
		Date:    date,
		Time:    time24,
	}, nil
}

// invalidate drops the cached listing before the caller gets its response, and voids
// any fill that read the store earlier.
func (s *serviceImpl) invalidate(ctx context.Context, date string) {
	s.versions.bump(date)
	shared.InvalidateCaches(ctx, s.cache, bookedSlotsCacheKey(date))
}
