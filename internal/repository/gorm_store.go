// Package repository implements planner.Store on GORM and in memory.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// GormStore keeps trips, days and schedules in a SQL database.
// LockTrip issues SELECT ... FOR UPDATE, so postgres serializes commands on
// the same trip for the lifetime of the enclosing transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the planner tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Trip{}, &models.Day{}, &models.Schedule{})
}

func notFound(err error, sentinel error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", sentinel, id)
	}
	return err
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx planner.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(trip).Error
}

func (s *GormStore) LockTrip(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&trip, id).Error
	if err != nil {
		return nil, notFound(err, planner.ErrTripNotFound, id)
	}
	return &trip, nil
}

func (s *GormStore) GetTrip(ctx context.Context, id uint, opts planner.LoadOptions) (*models.Trip, error) {
	q := s.db.WithContext(ctx)
	if opts.Days {
		q = q.Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("date ASC, id ASC")
		}).Preload("Days.Schedules", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		})
	}

	var trip models.Trip
	if err := q.First(&trip, id).Error; err != nil {
		return nil, notFound(err, planner.ErrTripNotFound, id)
	}
	if opts.TemporaryStorage {
		items, err := s.ListContainer(ctx, planner.TemporaryStorage(id))
		if err != nil {
			return nil, err
		}
		trip.TemporaryStorage = items
	}
	return &trip, nil
}

func (s *GormStore) ListTrips(ctx context.Context, ownerID uint) ([]models.Trip, error) {
	var trips []models.Trip
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&trips).Error
	return trips, err
}

func (s *GormStore) SaveTrip(ctx context.Context, trip *models.Trip) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(trip).Error
}

func (s *GormStore) DeleteTrip(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)
	if err := db.Where("trip_id = ?", id).Delete(&models.Schedule{}).Error; err != nil {
		return err
	}
	if err := db.Where("trip_id = ?", id).Delete(&models.Day{}).Error; err != nil {
		return err
	}
	res := db.Delete(&models.Trip{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", planner.ErrTripNotFound, id)
	}
	return nil
}

func (s *GormStore) GetDay(ctx context.Context, id uint) (*models.Day, error) {
	var day models.Day
	if err := s.db.WithContext(ctx).First(&day, id).Error; err != nil {
		return nil, notFound(err, planner.ErrDayNotFound, id)
	}
	return &day, nil
}

func (s *GormStore) CreateDays(ctx context.Context, days []models.Day) error {
	if len(days) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(&days).Error
}

// DeleteDays expects the days to be empty already.
func (s *GormStore) DeleteDays(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.Day{}, ids).Error
}

func (s *GormStore) GetSchedule(ctx context.Context, id uint) (*models.Schedule, error) {
	var sched models.Schedule
	if err := s.db.WithContext(ctx).First(&sched, id).Error; err != nil {
		return nil, notFound(err, planner.ErrScheduleNotFound, id)
	}
	return &sched, nil
}

func (s *GormStore) containerQuery(ctx context.Context, c planner.Container) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Schedule{}).Where("trip_id = ?", c.TripID)
	if c.IsTemporaryStorage() {
		return q.Where("day_id IS NULL")
	}
	return q.Where("day_id = ?", *c.DayID)
}

func (s *GormStore) ListContainer(ctx context.Context, c planner.Container) ([]models.Schedule, error) {
	var items []models.Schedule
	err := s.containerQuery(ctx, c).Order("position ASC, id ASC").Find(&items).Error
	return items, err
}

func (s *GormStore) CountTripSchedules(ctx context.Context, tripID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Schedule{}).Where("trip_id = ?", tripID).Count(&n).Error
	return n, err
}

func (s *GormStore) CountDaySchedules(ctx context.Context, dayID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Schedule{}).Where("day_id = ?", dayID).Count(&n).Error
	return n, err
}

func (s *GormStore) SaveSchedule(ctx context.Context, sched *models.Schedule) error {
	return s.db.WithContext(ctx).Save(sched).Error
}

func (s *GormStore) DeleteSchedule(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Schedule{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", planner.ErrScheduleNotFound, id)
	}
	return nil
}

func (s *GormStore) UpdatePositions(ctx context.Context, updates []planner.PositionUpdate) error {
	db := s.db.WithContext(ctx)
	for _, u := range updates {
		err := db.Model(&models.Schedule{}).
			Where("id = ?", u.ScheduleID).
			Update("position", u.Position.Int64()).Error
		if err != nil {
			return fmt.Errorf("relocate schedule %d: %w", u.ScheduleID, err)
		}
	}
	return nil
}

var _ planner.Store = (*GormStore)(nil)
