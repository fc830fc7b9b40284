package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"slices"

	"github.com/lib/pq"

	"meetslot/internal/domains/schedule/model"
)

// SlotStore owns every booked slot. Reserve is the single mutual exclusion point:
// for concurrent calls on the same (date, time) exactly one succeeds and the others
// get model.ErrSlotAlreadyBooked.
type SlotStore interface {
	Reserve(ctx context.Context, slot model.BookedSlot) error
	Release(ctx context.Context, date, time string) error
	ListBooked(ctx context.Context, date string) ([]string, error)
	IsBooked(ctx context.Context, date, time string) (bool, error)
}

// unavailable tags connectivity failures so the fallback store can take over.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrStoreUnavailable, err)
}

// isConnectivityError reports failures of the transport rather than of the statement.
func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// class 08 is connection exception, 57P0x is operator intervention
		return pqErr.Code.Class() == "08" || pqErr.Code.Class() == "57"
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

func sortedUnique(times []string) []string {
	slices.Sort(times)

	return slices.Compact(times)
}
