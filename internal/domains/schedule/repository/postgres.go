package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"meetslot/infras/otel"
	"meetslot/infras/postgres"
	"meetslot/internal/domains/schedule/model"
	"meetslot/shared/constant"
	"meetslot/shared/logger"
)

const (
	queryReserve = `INSERT INTO booked_slots (slot_date, slot_time, meeting_id, created_at, updated_at)
VALUES (:slot_date, :slot_time, NULLIF(:meeting_id, ''), :created_at, :updated_at)
ON CONFLICT (slot_date, slot_time) DO NOTHING`
	queryRelease    = `DELETE FROM booked_slots WHERE slot_date = $1 AND slot_time = $2`
	queryListBooked = `SELECT slot_time FROM booked_slots WHERE slot_date = $1 ORDER BY slot_time`
	queryIsBooked   = `SELECT EXISTS(SELECT 1 FROM booked_slots WHERE slot_date = $1 AND slot_time = $2)`
)

type postgresStore struct {
	db   *postgres.Connection
	otel otel.Otel
	now  func() time.Time
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) SlotStore {
	return &postgresStore{
		db:   db,
		otel: otel,
		now:  time.Now,
	}
}

func (s *postgresStore) scope(ctx context.Context, method string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, method))
}

// wrap classifies a driver error into unavailable or a plain failure.
func (s *postgresStore) wrap(op string, err error) error {
	if isConnectivityError(err) {
		return unavailable(op, err)
	}

	return fmt.Errorf("%s (%s): %w", op, model.EntityName, err)
}

// Reserve relies on the primary key: a conflicting insert affects zero rows.
func (s *postgresStore) Reserve(ctx context.Context, slot model.BookedSlot) (err error) {
	ctx, scope := s.scope(ctx, "Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.db.Ready() {
		return unavailable("failed to reserve slot", postgres.ErrNotConnected)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReserve)
	slot.Touch(s.now())

	result, err := s.db.Writer().NamedExecContext(ctx, queryReserve, slot)
	if err != nil {
		logger.ErrorWithStack(err)

		return s.wrap("failed to reserve slot", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return s.wrap("failed to read reserve result", err)
	}

	if affected == 0 {
		return model.ErrSlotAlreadyBooked
	}

	return nil
}

func (s *postgresStore) Release(ctx context.Context, date, slotTime string) (err error) {
	ctx, scope := s.scope(ctx, "Release")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.db.Ready() {
		return unavailable("failed to release slot", postgres.ErrNotConnected)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRelease)

	result, err := s.db.Writer().ExecContext(ctx, queryRelease, date, slotTime)
	if err != nil {
		logger.ErrorWithStack(err)

		return s.wrap("failed to release slot", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return s.wrap("failed to read release result", err)
	}

	if affected == 0 {
		return model.ErrSlotNotFound
	}

	return nil
}

func (s *postgresStore) ListBooked(ctx context.Context, date string) (times []string, err error) {
	ctx, scope := s.scope(ctx, "ListBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.db.Ready() {
		return nil, unavailable("failed to list booked slots", postgres.ErrNotConnected)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryListBooked)

	if err = s.db.Reader().SelectContext(ctx, &times, queryListBooked, date); err != nil {
		logger.ErrorWithStack(err)

		return nil, s.wrap("failed to list booked slots", err)
	}

	return times, nil
}

func (s *postgresStore) IsBooked(ctx context.Context, date, slotTime string) (booked bool, err error) {
	ctx, scope := s.scope(ctx, "IsBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.db.Ready() {
		return false, unavailable("failed to check booked slot", postgres.ErrNotConnected)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryIsBooked)

	err = s.db.Reader().GetContext(ctx, &booked, queryIsBooked, date, slotTime)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return false, s.wrap("failed to check booked slot", err)
	}

	return booked, nil
}
