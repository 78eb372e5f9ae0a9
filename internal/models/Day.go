package models

import "time"

// MaxDaySchedules bounds how many schedules one day can hold.
const MaxDaySchedules = 10

// DayColor is the display color of a day.
type DayColor string

// DayPalette is cycled by each day's offset from the trip start.
var DayPalette = []DayColor{
	"RED", "ORANGE", "YELLOW", "GREEN", "BLUE",
	"NAVY", "PURPLE", "PINK", "BROWN", "BLACK",
}

// ColorFor picks the palette entry for the given offset.
func ColorFor(offset int) DayColor {
	n := len(DayPalette)
	return DayPalette[((offset%n)+n)%n]
}

type Day struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TripID    uint      `gorm:"index;not null" json:"trip_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Color     DayColor  `gorm:"type:varchar(16)" json:"color"`

	Schedules []Schedule `gorm:"foreignKey:DayID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"schedules,omitempty"`
}
