// Package planner places schedules inside the days and temporary storage of
// a trip and keeps the trip period and its days consistent.
package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
)

// Config carries the capacity limits that are not fixed by the model.
type Config struct {
	// MaxTripSchedules caps the schedules of one trip, placed or not.
	MaxTripSchedules int
}

// Planner executes trip and schedule commands against a Store.
type Planner struct {
	store Store
	cfg   Config
}

// New validates cfg and returns a Planner bound to store.
func New(store Store, cfg Config) (*Planner, error) {
	if store == nil {
		return nil, errors.New("planner: nil store")
	}
	if cfg.MaxTripSchedules <= 0 {
		return nil, errors.New("planner: MaxTripSchedules must be configured")
	}
	return &Planner{store: store, cfg: cfg}, nil
}

// lockOwnedTrip takes the trip row lock and checks ownership.
func lockOwnedTrip(ctx context.Context, st Store, tripID, ownerID uint) (*models.Trip, error) {
	trip, err := st.LockTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: trip %d", ErrForbidden, tripID)
	}
	return trip, nil
}

// dayOfTrip loads a day and checks it belongs to tripID.
func dayOfTrip(ctx context.Context, st Store, tripID, dayID uint) (*models.Day, error) {
	day, err := st.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day.TripID != tripID {
		return nil, fmt.Errorf("%w: day %d is not part of trip %d", ErrDayNotFound, dayID, tripID)
	}
	return day, nil
}

// CreateTrip stores an undecided trip with an empty period.
func (p *Planner) CreateTrip(ctx context.Context, ownerID uint, title string) (*models.Trip, error) {
	trip := models.NewTrip(ownerID, title)
	if err := p.store.CreateTrip(ctx, &trip); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"trip": trip.ID, "owner": ownerID}).Info("trip created")
	return &trip, nil
}

// GetTrip returns the trip with its days and temporary storage.
func (p *Planner) GetTrip(ctx context.Context, ownerID, tripID uint) (*models.Trip, error) {
	trip, err := p.store.GetTrip(ctx, tripID, LoadOptions{Days: true, TemporaryStorage: true})
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: trip %d", ErrForbidden, tripID)
	}
	return trip, nil
}

func (p *Planner) ListTrips(ctx context.Context, ownerID uint) ([]models.Trip, error) {
	return p.store.ListTrips(ctx, ownerID)
}

func (p *Planner) UpdateTripTitle(ctx context.Context, ownerID, tripID uint, title string) (*models.Trip, error) {
	var out *models.Trip
	err := p.store.Transaction(ctx, func(st Store) error {
		trip, err := lockOwnedTrip(ctx, st, tripID, ownerID)
		if err != nil {
			return err
		}
		trip.Title = title
		if err := st.SaveTrip(ctx, trip); err != nil {
			return err
		}
		out = trip
		return nil
	})
	return out, err
}

// UpdateTripStatus allows only DECIDED -> FINISHED and FINISHED -> DECIDED.
// UNDECIDED -> DECIDED happens through UpdatePeriod.
func (p *Planner) UpdateTripStatus(ctx context.Context, ownerID, tripID uint, status models.TripStatus) (*models.Trip, error) {
	var out *models.Trip
	err := p.store.Transaction(ctx, func(st Store) error {
		trip, err := lockOwnedTrip(ctx, st, tripID, ownerID)
		if err != nil {
			return err
		}
		if trip.Status == status {
			out = trip
			return nil
		}
		switch {
		case trip.Status == models.TripDecided && status == models.TripFinished:
		case trip.Status == models.TripFinished && status == models.TripDecided:
		default:
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, trip.Status, status)
		}
		trip.Status = status
		if err := st.SaveTrip(ctx, trip); err != nil {
			return err
		}
		out = trip
		return nil
	})
	return out, err
}

// DeleteTrip removes the trip with all its days and schedules.
func (p *Planner) DeleteTrip(ctx context.Context, ownerID, tripID uint) error {
	return p.store.Transaction(ctx, func(st Store) error {
		if _, err := lockOwnedTrip(ctx, st, tripID, ownerID); err != nil {
			return err
		}
		return st.DeleteTrip(ctx, tripID)
	})
}
