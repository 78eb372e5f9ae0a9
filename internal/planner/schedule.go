package planner

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
)

// CreateScheduleCommand adds a schedule at the tail of a day, or of the
// temporary storage when DayID is nil.
type CreateScheduleCommand struct {
	OwnerID uint
	TripID  uint
	DayID   *uint
	Title   string
	Content string
	Place   models.Place
	Window  models.TimeWindow
}

// MoveScheduleCommand moves a schedule to TargetOrder inside the target day,
// or inside the temporary storage when TargetDayID is nil.
type MoveScheduleCommand struct {
	OwnerID     uint
	ScheduleID  uint
	TargetDayID *uint
	TargetOrder int
}

// UpdateScheduleCommand replaces the descriptive fields of a schedule.
type UpdateScheduleCommand struct {
	OwnerID    uint
	ScheduleID uint
	Title      string
	Content    string
	Place      models.Place
	Window     models.TimeWindow
}

func (p *Planner) CreateSchedule(ctx context.Context, cmd CreateScheduleCommand) (*models.Schedule, error) {
	if err := cmd.Window.Validate(); err != nil {
		return nil, err
	}

	var created *models.Schedule
	err := p.store.Transaction(ctx, func(st Store) error {
		trip, err := lockOwnedTrip(ctx, st, cmd.TripID, cmd.OwnerID)
		if err != nil {
			return err
		}

		n, err := st.CountTripSchedules(ctx, trip.ID)
		if err != nil {
			return err
		}
		if n >= int64(p.cfg.MaxTripSchedules) {
			return fmt.Errorf("%w: trip %d holds %d", ErrTooManyTripSchedules, trip.ID, n)
		}

		target := TemporaryStorage(trip.ID)
		if cmd.DayID != nil {
			day, err := dayOfTrip(ctx, st, trip.ID, *cmd.DayID)
			if err != nil {
				return err
			}
			if err := checkDayCapacity(ctx, st, day.ID); err != nil {
				return err
			}
			target = DayContainer(trip.ID, day.ID)
		}

		s := &models.Schedule{
			TripID:     trip.ID,
			Title:      cmd.Title,
			Content:    cmd.Content,
			Place:      cmd.Place,
			TimeWindow: cmd.Window,
		}
		if _, err := place(ctx, st, s, target, atTail); err != nil {
			return err
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"trip":     created.TripID,
		"schedule": created.ID,
		"position": created.Position,
	}).Info("schedule created")
	return created, nil
}

func (p *Planner) MoveSchedule(ctx context.Context, cmd MoveScheduleCommand) (Outcome, error) {
	if cmd.TargetOrder < 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidTargetOrder, cmd.TargetOrder)
	}

	var out Outcome
	err := p.store.Transaction(ctx, func(st Store) error {
		s, err := st.GetSchedule(ctx, cmd.ScheduleID)
		if err != nil {
			return err
		}
		trip, err := lockOwnedTrip(ctx, st, s.TripID, cmd.OwnerID)
		if err != nil {
			return err
		}
		// Re-read under the trip lock.
		if s, err = st.GetSchedule(ctx, cmd.ScheduleID); err != nil {
			return err
		}

		target := TemporaryStorage(trip.ID)
		if cmd.TargetDayID != nil {
			day, err := dayOfTrip(ctx, st, trip.ID, *cmd.TargetDayID)
			if err != nil {
				return err
			}
			target = DayContainer(trip.ID, day.ID)
			if !ContainerOf(*s).Same(target) {
				if err := checkDayCapacity(ctx, st, day.ID); err != nil {
					return err
				}
			}
		}

		out, err = place(ctx, st, s, target, at(cmd.TargetOrder))
		return err
	})
	if err != nil {
		return Outcome{}, err
	}

	logrus.WithFields(logrus.Fields{
		"schedule":   out.ScheduleID,
		"to":         out.To.String(),
		"transition": out.Transition,
	}).Debug("schedule moved")
	return out, nil
}

func (p *Planner) GetSchedule(ctx context.Context, ownerID, scheduleID uint) (*models.Schedule, error) {
	s, err := p.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	trip, err := p.store.GetTrip(ctx, s.TripID, LoadOptions{})
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: trip %d", ErrForbidden, trip.ID)
	}
	return s, nil
}

// UpdateSchedule never touches the container or position of the schedule.
func (p *Planner) UpdateSchedule(ctx context.Context, cmd UpdateScheduleCommand) (*models.Schedule, error) {
	if err := cmd.Window.Validate(); err != nil {
		return nil, err
	}

	var out *models.Schedule
	err := p.store.Transaction(ctx, func(st Store) error {
		s, err := st.GetSchedule(ctx, cmd.ScheduleID)
		if err != nil {
			return err
		}
		if _, err := lockOwnedTrip(ctx, st, s.TripID, cmd.OwnerID); err != nil {
			return err
		}
		if s, err = st.GetSchedule(ctx, cmd.ScheduleID); err != nil {
			return err
		}
		s.Title = cmd.Title
		s.Content = cmd.Content
		s.Place = cmd.Place
		s.TimeWindow = cmd.Window
		if err := st.SaveSchedule(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	return out, err
}

func (p *Planner) DeleteSchedule(ctx context.Context, ownerID, scheduleID uint) error {
	return p.store.Transaction(ctx, func(st Store) error {
		s, err := st.GetSchedule(ctx, scheduleID)
		if err != nil {
			return err
		}
		if _, err := lockOwnedTrip(ctx, st, s.TripID, ownerID); err != nil {
			return err
		}
		return st.DeleteSchedule(ctx, scheduleID)
	})
}

func checkDayCapacity(ctx context.Context, st Store, dayID uint) error {
	n, err := st.CountDaySchedules(ctx, dayID)
	if err != nil {
		return err
	}
	if n >= models.MaxDaySchedules {
		return fmt.Errorf("%w: day %d holds %d", ErrTooManyDaySchedules, dayID, n)
	}
	return nil
}
