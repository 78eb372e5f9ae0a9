package planner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

func dayDates(trip *models.Trip) []time.Time {
	out := make([]time.Time, len(trip.Days))
	for i, d := range trip.Days {
		out[i] = models.Date(d.Date)
	}
	return out
}

func TestUpdatePeriod_FirstPeriodDecidesTrip(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip, err := f.p.CreateTrip(f.ctx, owner, "Busan")
	require.NoError(t, err)
	assert.Equal(t, models.TripUndecided, trip.Status)
	assert.True(t, trip.Period.IsEmpty())

	trip, err = f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: period(t, date(3, 1), date(3, 3)),
	})
	require.NoError(t, err)

	assert.Equal(t, models.TripDecided, trip.Status)
	assert.Equal(t, []time.Time{date(3, 1), date(3, 2), date(3, 3)}, dayDates(trip))
	for i, d := range trip.Days {
		assert.Equal(t, models.ColorFor(i), d.Color)
	}
}

func TestUpdatePeriod_ShrinkMovesSchedulesToTemporaryStorage(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip := f.tripWithDays(t, 4)
	mar1, mar3, mar4 := trip.Days[0].ID, trip.Days[2].ID, trip.Days[3].ID

	f.create(t, trip.ID, nil, "parked")
	f.create(t, trip.ID, &mar1, "stays")
	f.create(t, trip.ID, &mar4, "c")
	f.create(t, trip.ID, &mar3, "a")
	f.create(t, trip.ID, &mar4, "d")

	trip, err := f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: period(t, date(3, 1), date(3, 2)),
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(3, 1), date(3, 2)}, dayDates(trip))
	assert.Equal(t, mar1, trip.Days[0].ID)
	assert.Equal(t, []string{"parked", "a", "c", "d"}, f.titles(t, planner.TemporaryStorage(trip.ID)))
	require.Len(t, trip.TemporaryStorage, 4)
	assert.Equal(t, []string{"stays"}, f.titles(t, planner.DayContainer(trip.ID, mar1)))

	_, err = f.store.GetDay(f.ctx, mar3)
	require.ErrorIs(t, err, planner.ErrDayNotFound)

	n, err := f.store.CountTripSchedules(f.ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}

func TestUpdatePeriod_ShiftKeepsOverlappingDays(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip := f.tripWithDays(t, 4)
	mar3, mar4 := trip.Days[2].ID, trip.Days[3].ID
	f.create(t, trip.ID, &mar3, "kept")

	trip, err := f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: period(t, date(3, 3), date(3, 6)),
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(3, 3), date(3, 4), date(3, 5), date(3, 6)}, dayDates(trip))
	assert.Equal(t, mar3, trip.Days[0].ID)
	assert.Equal(t, mar4, trip.Days[1].ID)
	require.Len(t, trip.Days[0].Schedules, 1)
	assert.Equal(t, "kept", trip.Days[0].Schedules[0].Title)
	assert.Empty(t, trip.TemporaryStorage)
}

func TestUpdatePeriod_DisjointReplacesEveryDay(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip := f.tripWithDays(t, 2)
	old := trip.Days[1].ID
	f.create(t, trip.ID, &old, "orphan")

	trip, err := f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: period(t, date(4, 10), date(4, 11)),
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(4, 10), date(4, 11)}, dayDates(trip))
	assert.NotEqual(t, old, trip.Days[1].ID)
	assert.Equal(t, []string{"orphan"}, f.titles(t, planner.TemporaryStorage(trip.ID)))
}

func TestUpdatePeriod_SamePeriodIsNoop(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip := f.tripWithDays(t, 3)
	ids := []uint{trip.Days[0].ID, trip.Days[1].ID, trip.Days[2].ID}

	again, err := f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: period(t, date(3, 1), date(3, 3)),
	})
	require.NoError(t, err)
	require.Len(t, again.Days, 3)
	for i, d := range again.Days {
		assert.Equal(t, ids[i], d.ID)
	}
}

func TestUpdatePeriod_DecidedTripRejectsEmptyPeriod(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip := f.tripWithDays(t, 2)

	_, err := f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: models.Period{},
	})
	require.ErrorIs(t, err, planner.ErrEmptyPeriodUpdateRejected)

	after, err := f.p.GetTrip(f.ctx, owner, trip.ID)
	require.NoError(t, err)
	assert.Len(t, after.Days, 2)
}

func TestUpdatePeriod_UndecidedEmptyIsNoop(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip, err := f.p.CreateTrip(f.ctx, owner, "someday")
	require.NoError(t, err)

	trip, err = f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{OwnerID: owner, TripID: trip.ID})
	require.NoError(t, err)
	assert.Equal(t, models.TripUndecided, trip.Status)
}

func TestUpdatePeriod_RejectsInvalidPeriod(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip, err := f.p.CreateTrip(f.ctx, owner, "long")
	require.NoError(t, err)

	start, end := date(3, 1), date(3, 11)
	_, err = f.p.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: models.Period{StartDate: &start, EndDate: &end},
	})
	require.ErrorIs(t, err, planner.ErrInvalidPeriod)
}

func TestUpdatePeriod_TripLimitLoweredBlocksEvacuation(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 100)
	trip := f.tripWithDays(t, 2)
	mar2 := trip.Days[1].ID
	for i := 0; i < 3; i++ {
		f.create(t, trip.ID, &mar2, "s")
	}

	strict, err := planner.New(f.store, planner.Config{MaxTripSchedules: 2})
	require.NoError(t, err)
	_, err = strict.UpdatePeriod(f.ctx, planner.UpdatePeriodCommand{
		OwnerID: owner, TripID: trip.ID, Period: period(t, date(3, 1), date(3, 1)),
	})
	require.ErrorIs(t, err, planner.ErrTooManyTripSchedules)

	// The failed command left the trip as it was.
	after, err := f.p.GetTrip(f.ctx, owner, trip.ID)
	require.NoError(t, err)
	require.Len(t, after.Days, 2)
	assert.Len(t, after.Days[1].Schedules, 3)
}
