package planner

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
)

// UpdatePeriodCommand sets a new date range on a trip.
type UpdatePeriodCommand struct {
	OwnerID uint
	TripID  uint
	Period  models.Period
}

// UpdatePeriod recomputes the days of a trip for a new period. Days outside
// the overlap of the old and new periods are deleted after their schedules
// are moved to the tail of the temporary storage, and every uncovered date of
// the new period gets an empty day.
func (p *Planner) UpdatePeriod(ctx context.Context, cmd UpdatePeriodCommand) (*models.Trip, error) {
	if err := cmd.Period.Validate(); err != nil {
		return nil, err
	}

	var out *models.Trip
	err := p.store.Transaction(ctx, func(st Store) error {
		if _, err := lockOwnedTrip(ctx, st, cmd.TripID, cmd.OwnerID); err != nil {
			return err
		}
		trip, err := st.GetTrip(ctx, cmd.TripID, LoadOptions{Days: true})
		if err != nil {
			return err
		}

		if trip.Period.Equal(cmd.Period) {
			out = trip
			return nil
		}
		if cmd.Period.IsEmpty() && trip.Status != models.TripUndecided {
			return fmt.Errorf("%w: trip %d is %s", ErrEmptyPeriodUpdateRejected, trip.ID, trip.Status)
		}

		overlap := trip.Period.Intersect(cmd.Period)
		var removed []models.Day
		for _, d := range trip.Days {
			if !overlap.Contains(d.Date) {
				removed = append(removed, d)
			}
		}
		if err := p.evacuateDays(ctx, st, trip.ID, removed); err != nil {
			return err
		}

		var added []models.Day
		if !cmd.Period.IsEmpty() {
			for i, date := range cmd.Period.Dates() {
				if overlap.Contains(date) {
					continue
				}
				added = append(added, models.Day{TripID: trip.ID, Date: date, Color: models.ColorFor(i)})
			}
		}
		if len(added) > 0 {
			if err := st.CreateDays(ctx, added); err != nil {
				return err
			}
		}

		saved := *trip
		saved.Days = nil
		saved.Period = cmd.Period
		if saved.Status == models.TripUndecided {
			saved.Status = models.TripDecided
		}
		if err := st.SaveTrip(ctx, &saved); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"trip":    trip.ID,
			"removed": len(removed),
			"added":   len(added),
		}).Info("trip period updated")

		out, err = st.GetTrip(ctx, trip.ID, LoadOptions{Days: true, TemporaryStorage: true})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// evacuateDays moves the schedules of days, in date then key order, to the
// tail of the temporary storage and deletes the days.
func (p *Planner) evacuateDays(ctx context.Context, st Store, tripID uint, days []models.Day) error {
	if len(days) == 0 {
		return nil
	}

	n, err := st.CountTripSchedules(ctx, tripID)
	if err != nil {
		return err
	}
	if n > int64(p.cfg.MaxTripSchedules) {
		return fmt.Errorf("%w: trip %d holds %d", ErrTooManyTripSchedules, tripID, n)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	ids := make([]uint, 0, len(days))
	for _, d := range days {
		items, err := st.ListContainer(ctx, DayContainer(tripID, d.ID))
		if err != nil {
			return err
		}
		for i := range items {
			if _, err := place(ctx, st, &items[i], TemporaryStorage(tripID), atTail); err != nil {
				return err
			}
		}
		ids = append(ids, d.ID)
	}
	return st.DeleteDays(ctx, ids)
}
