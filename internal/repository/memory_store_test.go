package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

func TestMemoryStore_TransactionRestoresSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	trip := models.NewTrip(1, "Daegu")
	require.NoError(t, s.CreateTrip(ctx, &trip))

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx planner.Store) error {
		require.NoError(t, tx.SaveSchedule(ctx, &models.Schedule{TripID: trip.ID}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := s.CountTripSchedules(ctx, trip.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStore_SaveCopiesDayReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	dayID := uint(5)
	sched := &models.Schedule{TripID: 1, DayID: &dayID}
	require.NoError(t, s.SaveSchedule(ctx, sched))
	dayID = 6

	got, err := s.GetSchedule(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DayID)
	assert.Equal(t, uint(5), *got.DayID)
}

func TestMemoryStore_ConcurrentTransactionsOnDifferentTrips(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	p, err := planner.New(s, planner.Config{MaxTripSchedules: 100})
	require.NoError(t, err)

	const trips = 8
	ids := make([]uint, trips)
	for i := range ids {
		trip, err := p.CreateTrip(ctx, 1, "t")
		require.NoError(t, err)
		ids[i] = trip.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(tripID uint) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				_, err := p.CreateSchedule(ctx, planner.CreateScheduleCommand{OwnerID: 1, TripID: tripID})
				assert.NoError(t, err)
			}
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		items, err := s.ListContainer(ctx, planner.TemporaryStorage(id))
		require.NoError(t, err)
		require.Len(t, items, 5)
		for j := range items {
			assert.Equal(t, int64(j)*10_000_000, items[j].Position)
		}
	}
}
