package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"meetslot/internal/domains/schedule/model"
	"meetslot/internal/domains/schedule/repository"
	"meetslot/internal/domains/schedule/mocks"
)

var errDown = fmt.Errorf("failed to reserve slot: %w", model.ErrStoreUnavailable)

func TestFallbackStore_Reserve(t *testing.T) {
	slot := model.BookedSlot{Date: "2025-09-08", Time: "10:00"}

	tests := []struct {
		name      string
		setupMock func(durable *mocks.MockSlotStore)
		expected  error
		inMemory  bool
	}{
		{
			name: "durable success stays out of memory",
			setupMock: func(durable *mocks.MockSlotStore) {
				durable.EXPECT().Reserve(gomock.Any(), slot).Return(nil)
			},
		},
		{
			name: "durable conflict is surfaced",
			setupMock: func(durable *mocks.MockSlotStore) {
				durable.EXPECT().Reserve(gomock.Any(), slot).Return(model.ErrSlotAlreadyBooked)
			},
			expected: model.ErrSlotAlreadyBooked,
		},
		{
			name: "durable down falls back to memory",
			setupMock: func(durable *mocks.MockSlotStore) {
				durable.EXPECT().Reserve(gomock.Any(), slot).Return(errDown)
			},
			inMemory: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			durable := mocks.NewMockSlotStore(ctrl)
			memory := repository.NewMemory()
			tt.setupMock(durable)

			store := repository.NewFallback(durable, memory)
			err := store.Reserve(context.Background(), slot)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
			} else {
				assert.NoError(t, err)
			}

			booked, err := memory.IsBooked(context.Background(), slot.Date, slot.Time)
			require.NoError(t, err)
			assert.Equal(t, tt.inMemory, booked)
		})
	}
}

func TestFallbackStore_OutageReservationBlocksLaterReserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockSlotStore(ctrl)
	store := repository.NewFallback(durable, repository.NewMemory())
	slot := model.BookedSlot{Date: "2025-09-08", Time: "10:00"}

	durable.EXPECT().Reserve(gomock.Any(), slot).Return(errDown).Times(1)

	require.NoError(t, store.Reserve(context.Background(), slot))

	// durable is not consulted again, memory already holds the slot
	err := store.Reserve(context.Background(), slot)
	assert.ErrorIs(t, err, model.ErrSlotAlreadyBooked)
}

func TestFallbackStore_ListBookedMergesBothSides(t *testing.T) {
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockSlotStore(ctrl)
	memory := repository.NewMemory()
	store := repository.NewFallback(durable, memory)

	require.NoError(t, memory.Reserve(context.Background(), model.BookedSlot{Date: "2025-09-08", Time: "09:30"}))

	durable.EXPECT().ListBooked(gomock.Any(), "2025-09-08").Return([]string{"11:00", "09:30"}, nil)

	times, err := store.ListBooked(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "11:00"}, times)

	durable.EXPECT().ListBooked(gomock.Any(), "2025-09-08").Return(nil, errDown)

	times, err = store.ListBooked(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30"}, times)
}

func TestFallbackStore_IsBooked(t *testing.T) {
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockSlotStore(ctrl)
	store := repository.NewFallback(durable, repository.NewMemory())

	durable.EXPECT().IsBooked(gomock.Any(), "2025-09-08", "10:00").Return(false, errDown)

	booked, err := store.IsBooked(context.Background(), "2025-09-08", "10:00")
	require.NoError(t, err)
	assert.False(t, booked)

	durable.EXPECT().IsBooked(gomock.Any(), "2025-09-08", "10:00").Return(true, nil)

	booked, err = store.IsBooked(context.Background(), "2025-09-08", "10:00")
	require.NoError(t, err)
	assert.True(t, booked)
}

func TestFallbackStore_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockSlotStore(ctrl)
	memory := repository.NewMemory()
	store := repository.NewFallback(durable, memory)

	durable.EXPECT().Release(gomock.Any(), "2025-09-08", "10:00").Return(errDown)

	err := store.Release(context.Background(), "2025-09-08", "10:00")
	assert.ErrorIs(t, err, model.ErrSlotNotFound)

	require.NoError(t, memory.Reserve(context.Background(), model.BookedSlot{Date: "2025-09-08", Time: "10:00"}))
	durable.EXPECT().Release(gomock.Any(), "2025-09-08", "10:00").Return(errDown)

	assert.NoError(t, store.Release(context.Background(), "2025-09-08", "10:00"))
}

func TestFallbackStore_RecoveryDuringOutageReserveHasOneWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	durable := mocks.NewMockSlotStore(ctrl)
	store := repository.NewFallback(durable, repository.NewMemory())
	slot := model.BookedSlot{Date: "2025-09-09", Time: "10:00"}

	entered := make(chan struct{})
	release := make(chan struct{})

	// the first caller sees the outage, and durable is back for anyone after it
	durable.EXPECT().Reserve(gomock.Any(), slot).DoAndReturn(func(context.Context, model.BookedSlot) error {
		close(entered)
		<-release

		return errDown
	}).Times(1)
	durable.EXPECT().Reserve(gomock.Any(), slot).Return(nil).AnyTimes()

	results := make(chan error, 2)

	go func() { results <- store.Reserve(context.Background(), slot) }()

	<-entered

	go func() { results <- store.Reserve(context.Background(), slot) }()

	close(release)

	first, second := <-results, <-results

	winners := 0

	for _, err := range []error{first, second} {
		if err == nil {
			winners++

			continue
		}

		assert.ErrorIs(t, err, model.ErrSlotAlreadyBooked)
	}

	assert.Equal(t, 1, winners)
}
