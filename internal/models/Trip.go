package models

import "time"

// TripStatus tracks whether the trip dates are fixed.
type TripStatus string

const (
	TripUndecided TripStatus = "UNDECIDED"
	TripDecided   TripStatus = "DECIDED"
	TripFinished  TripStatus = "FINISHED"
)

// Trip owns a set of days and a temporary storage of unplaced schedules.
type Trip struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	OwnerID   uint       `gorm:"index;not null" json:"owner_id"`
	Title     string     `gorm:"not null" json:"title"`
	Status    TripStatus `gorm:"type:varchar(16);not null;default:'UNDECIDED'" json:"status"`

	Period `gorm:"embedded"`

	// Eager-loaded views. The foreign keys on Day and Schedule are the source of truth.
	Days             []Day      `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"days,omitempty"`
	TemporaryStorage []Schedule `gorm:"-" json:"temporary_storage,omitempty"`
}

// NewTrip returns an undecided trip with an empty period.
func NewTrip(ownerID uint, title string) Trip {
	return Trip{OwnerID: ownerID, Title: title, Status: TripUndecided}
}
