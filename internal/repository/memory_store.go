package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// MemoryStore is a process-local planner.Store. A transaction holds one
// store-wide mutex and works on a snapshot that replaces the live data only
// when the transaction succeeds.
type MemoryStore struct {
	mu   *sync.Mutex
	inTx bool
	data *memData
}

type memData struct {
	nextID    uint
	trips     map[uint]models.Trip
	days      map[uint]models.Day
	schedules map[uint]models.Schedule
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.Mutex{},
		data: &memData{
			trips:     map[uint]models.Trip{},
			days:      map[uint]models.Day{},
			schedules: map[uint]models.Schedule{},
		},
	}
}

func (d *memData) clone() *memData {
	c := &memData{
		nextID:    d.nextID,
		trips:     make(map[uint]models.Trip, len(d.trips)),
		days:      make(map[uint]models.Day, len(d.days)),
		schedules: make(map[uint]models.Schedule, len(d.schedules)),
	}
	for k, v := range d.trips {
		c.trips[k] = v
	}
	for k, v := range d.days {
		c.days[k] = v
	}
	for k, v := range d.schedules {
		c.schedules[k] = v
	}
	return c
}

func (d *memData) id() uint {
	d.nextID++
	return d.nextID
}

func (m *MemoryStore) lock() func() {
	if m.inTx {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

func (m *MemoryStore) Transaction(_ context.Context, fn func(tx planner.Store) error) error {
	if m.inTx {
		return fn(m)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &MemoryStore{mu: m.mu, inTx: true, data: m.data.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	m.data = tx.data
	return nil
}

func (m *MemoryStore) CreateTrip(_ context.Context, trip *models.Trip) error {
	defer m.lock()()
	now := time.Now()
	trip.ID = m.data.id()
	trip.CreatedAt, trip.UpdatedAt = now, now
	stored := *trip
	stored.Days, stored.TemporaryStorage = nil, nil
	m.data.trips[trip.ID] = stored
	return nil
}

func (m *MemoryStore) LockTrip(ctx context.Context, id uint) (*models.Trip, error) {
	return m.GetTrip(ctx, id, planner.LoadOptions{})
}

func (m *MemoryStore) GetTrip(_ context.Context, id uint, opts planner.LoadOptions) (*models.Trip, error) {
	defer m.lock()()
	trip, ok := m.data.trips[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", planner.ErrTripNotFound, id)
	}
	if opts.Days {
		for _, d := range m.data.days {
			if d.TripID != id {
				continue
			}
			d.Schedules = m.data.container(planner.DayContainer(id, d.ID))
			trip.Days = append(trip.Days, d)
		}
		sort.Slice(trip.Days, func(i, j int) bool {
			if trip.Days[i].Date.Equal(trip.Days[j].Date) {
				return trip.Days[i].ID < trip.Days[j].ID
			}
			return trip.Days[i].Date.Before(trip.Days[j].Date)
		})
	}
	if opts.TemporaryStorage {
		trip.TemporaryStorage = m.data.container(planner.TemporaryStorage(id))
	}
	return &trip, nil
}

func (m *MemoryStore) ListTrips(_ context.Context, ownerID uint) ([]models.Trip, error) {
	defer m.lock()()
	var trips []models.Trip
	for _, t := range m.data.trips {
		if t.OwnerID == ownerID {
			trips = append(trips, t)
		}
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
	return trips, nil
}

func (m *MemoryStore) SaveTrip(_ context.Context, trip *models.Trip) error {
	defer m.lock()()
	if _, ok := m.data.trips[trip.ID]; !ok {
		return fmt.Errorf("%w: %d", planner.ErrTripNotFound, trip.ID)
	}
	trip.UpdatedAt = time.Now()
	stored := *trip
	stored.Days, stored.TemporaryStorage = nil, nil
	m.data.trips[trip.ID] = stored
	return nil
}

func (m *MemoryStore) DeleteTrip(_ context.Context, id uint) error {
	defer m.lock()()
	if _, ok := m.data.trips[id]; !ok {
		return fmt.Errorf("%w: %d", planner.ErrTripNotFound, id)
	}
	for sid, s := range m.data.schedules {
		if s.TripID == id {
			delete(m.data.schedules, sid)
		}
	}
	for did, d := range m.data.days {
		if d.TripID == id {
			delete(m.data.days, did)
		}
	}
	delete(m.data.trips, id)
	return nil
}

func (m *MemoryStore) GetDay(_ context.Context, id uint) (*models.Day, error) {
	defer m.lock()()
	d, ok := m.data.days[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", planner.ErrDayNotFound, id)
	}
	return &d, nil
}

func (m *MemoryStore) CreateDays(_ context.Context, days []models.Day) error {
	defer m.lock()()
	now := time.Now()
	for i := range days {
		days[i].ID = m.data.id()
		days[i].CreatedAt, days[i].UpdatedAt = now, now
		stored := days[i]
		stored.Schedules = nil
		m.data.days[stored.ID] = stored
	}
	return nil
}

func (m *MemoryStore) DeleteDays(_ context.Context, ids []uint) error {
	defer m.lock()()
	for _, id := range ids {
		delete(m.data.days, id)
		for sid, s := range m.data.schedules {
			if s.DayID != nil && *s.DayID == id {
				s.DayID = nil
				m.data.schedules[sid] = s
			}
		}
	}
	return nil
}

func (m *MemoryStore) GetSchedule(_ context.Context, id uint) (*models.Schedule, error) {
	defer m.lock()()
	s, ok := m.data.schedules[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", planner.ErrScheduleNotFound, id)
	}
	return &s, nil
}

func (d *memData) container(c planner.Container) []models.Schedule {
	var items []models.Schedule
	for _, s := range d.schedules {
		if planner.ContainerOf(s).Same(c) {
			items = append(items, s)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Position == items[j].Position {
			return items[i].ID < items[j].ID
		}
		return items[i].Position < items[j].Position
	})
	return items
}

func (m *MemoryStore) ListContainer(_ context.Context, c planner.Container) ([]models.Schedule, error) {
	defer m.lock()()
	return m.data.container(c), nil
}

func (m *MemoryStore) CountTripSchedules(_ context.Context, tripID uint) (int64, error) {
	defer m.lock()()
	var n int64
	for _, s := range m.data.schedules {
		if s.TripID == tripID {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) CountDaySchedules(_ context.Context, dayID uint) (int64, error) {
	defer m.lock()()
	var n int64
	for _, s := range m.data.schedules {
		if s.DayID != nil && *s.DayID == dayID {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) SaveSchedule(_ context.Context, s *models.Schedule) error {
	defer m.lock()()
	now := time.Now()
	if s.ID == 0 {
		s.ID = m.data.id()
		s.CreatedAt = now
	} else if _, ok := m.data.schedules[s.ID]; !ok {
		return fmt.Errorf("%w: %d", planner.ErrScheduleNotFound, s.ID)
	}
	s.UpdatedAt = now
	stored := *s
	if s.DayID != nil {
		id := *s.DayID
		stored.DayID = &id
	}
	m.data.schedules[s.ID] = stored
	return nil
}

func (m *MemoryStore) DeleteSchedule(_ context.Context, id uint) error {
	defer m.lock()()
	if _, ok := m.data.schedules[id]; !ok {
		return fmt.Errorf("%w: %d", planner.ErrScheduleNotFound, id)
	}
	delete(m.data.schedules, id)
	return nil
}

func (m *MemoryStore) UpdatePositions(_ context.Context, updates []planner.PositionUpdate) error {
	defer m.lock()()
	for _, u := range updates {
		s, ok := m.data.schedules[u.ScheduleID]
		if !ok {
			return fmt.Errorf("%w: %d", planner.ErrScheduleNotFound, u.ScheduleID)
		}
		s.Position = u.Position.Int64()
		m.data.schedules[u.ScheduleID] = s
	}
	return nil
}

var _ planner.Store = (*MemoryStore)(nil)
