package planner

import (
	"context"
	"fmt"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/order"
)

// Container identifies an ordered holding place of schedules: a day, or the
// temporary storage of a trip when DayID is nil.
type Container struct {
	TripID uint
	DayID  *uint
}

func DayContainer(tripID, dayID uint) Container {
	return Container{TripID: tripID, DayID: &dayID}
}

func TemporaryStorage(tripID uint) Container {
	return Container{TripID: tripID}
}

// ContainerOf returns the container currently holding s.
func ContainerOf(s models.Schedule) Container {
	c := Container{TripID: s.TripID}
	if s.DayID != nil {
		id := *s.DayID
		c.DayID = &id
	}
	return c
}

func (c Container) IsTemporaryStorage() bool { return c.DayID == nil }

func (c Container) Same(o Container) bool {
	if c.TripID != o.TripID || c.IsTemporaryStorage() != o.IsTemporaryStorage() {
		return false
	}
	return c.IsTemporaryStorage() || *c.DayID == *o.DayID
}

// Kind is "day" or "temporary_storage"; used as a metric label.
func (c Container) Kind() string {
	if c.IsTemporaryStorage() {
		return "temporary_storage"
	}
	return "day"
}

func (c Container) String() string {
	if c.IsTemporaryStorage() {
		return fmt.Sprintf("trip/%d/temporary", c.TripID)
	}
	return fmt.Sprintf("trip/%d/day/%d", c.TripID, *c.DayID)
}

// LoadOptions selects what GetTrip fetches along with the trip row.
type LoadOptions struct {
	Days             bool
	TemporaryStorage bool
}

// PositionUpdate is one row of a bulk relocation write.
type PositionUpdate struct {
	ScheduleID uint
	Position   order.Key
}

// Store is the aggregate store the planner runs against. Implementations
// return the NotFound errors of this package for missing rows.
//
// Every mutating command runs inside Transaction and calls LockTrip first.
// The store must serialize transactions holding the same trip lock.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error

	CreateTrip(ctx context.Context, trip *models.Trip) error
	LockTrip(ctx context.Context, id uint) (*models.Trip, error)
	// GetTrip returns days ordered by date, each with its schedules in key
	// order, and the temporary storage in key order.
	GetTrip(ctx context.Context, id uint, opts LoadOptions) (*models.Trip, error)
	ListTrips(ctx context.Context, ownerID uint) ([]models.Trip, error)
	SaveTrip(ctx context.Context, trip *models.Trip) error
	DeleteTrip(ctx context.Context, id uint) error

	GetDay(ctx context.Context, id uint) (*models.Day, error)
	CreateDays(ctx context.Context, days []models.Day) error
	DeleteDays(ctx context.Context, ids []uint) error

	GetSchedule(ctx context.Context, id uint) (*models.Schedule, error)
	// ListContainer returns the schedules of c in ascending key order.
	ListContainer(ctx context.Context, c Container) ([]models.Schedule, error)
	CountTripSchedules(ctx context.Context, tripID uint) (int64, error)
	CountDaySchedules(ctx context.Context, dayID uint) (int64, error)
	SaveSchedule(ctx context.Context, s *models.Schedule) error
	DeleteSchedule(ctx context.Context, id uint) error
	UpdatePositions(ctx context.Context, updates []PositionUpdate) error
}
