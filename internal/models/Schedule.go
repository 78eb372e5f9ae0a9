package models

import (
	"errors"
	"time"
)

var ErrInvalidTimeWindow = errors.New("schedule ends before it starts")

// Schedule is an itinerary entry. A nil DayID places it in the temporary
// storage of its trip. Position orders it inside whichever container holds it.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TripID    uint      `gorm:"index:idx_schedule_container,priority:1;not null" json:"trip_id"`
	DayID     *uint     `gorm:"index:idx_schedule_container,priority:2" json:"day_id"`
	Position  int64     `gorm:"index:idx_schedule_container,priority:3;not null" json:"position"`
	Title     string    `json:"title"`
	Content   string    `gorm:"type:text" json:"content"`

	Place      `gorm:"embedded"`
	TimeWindow `gorm:"embedded"`
}

// InTemporaryStorage reports whether no day holds the schedule.
func (s Schedule) InTemporaryStorage() bool { return s.DayID == nil }

// TimeWindow is the optional planned start and end of a schedule.
type TimeWindow struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

func (w TimeWindow) Validate() error {
	if w.StartTime != nil && w.EndTime != nil && w.EndTime.Before(*w.StartTime) {
		return ErrInvalidTimeWindow
	}
	return nil
}
