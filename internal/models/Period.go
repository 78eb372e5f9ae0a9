package models

import (
	"errors"
	"time"
)

// MaxPeriodDays bounds how many days a trip period may cover.
const MaxPeriodDays = 10

var ErrInvalidPeriod = errors.New("invalid trip period")

// Period is the inclusive date range of a trip. Both bounds are nil for an
// undecided trip, otherwise both are set.
type Period struct {
	StartDate *time.Time `json:"start_date" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date" gorm:"type:date"`
}

// Date truncates t to a UTC calendar date.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewPeriod builds a period from two dates and validates it.
func NewPeriod(start, end time.Time) (Period, error) {
	s, e := Date(start), Date(end)
	p := Period{StartDate: &s, EndDate: &e}
	return p, p.Validate()
}

func (p Period) IsEmpty() bool {
	return p.StartDate == nil && p.EndDate == nil
}

// Validate checks the all-or-nothing bounds, their order and the span limit.
func (p Period) Validate() error {
	if p.IsEmpty() {
		return nil
	}
	if p.StartDate == nil || p.EndDate == nil {
		return errors.Join(ErrInvalidPeriod, errors.New("start and end must be set together"))
	}
	if p.EndDate.Before(*p.StartDate) {
		return errors.Join(ErrInvalidPeriod, errors.New("end date is before start date"))
	}
	if p.Len() > MaxPeriodDays {
		return errors.Join(ErrInvalidPeriod, errors.New("period exceeds the maximum number of days"))
	}
	return nil
}

// Len returns the number of days covered, zero for an empty period.
func (p Period) Len() int {
	if p.StartDate == nil || p.EndDate == nil {
		return 0
	}
	return int(Date(*p.EndDate).Sub(Date(*p.StartDate)).Hours()/24) + 1
}

func (p Period) Equal(o Period) bool {
	if p.IsEmpty() || o.IsEmpty() {
		return p.IsEmpty() == o.IsEmpty()
	}
	return Date(*p.StartDate).Equal(Date(*o.StartDate)) && Date(*p.EndDate).Equal(Date(*o.EndDate))
}

func (p Period) Contains(d time.Time) bool {
	if p.Len() == 0 {
		return false
	}
	d = Date(d)
	return !d.Before(Date(*p.StartDate)) && !d.After(Date(*p.EndDate))
}

// Intersect returns the overlap of two periods, empty when they are disjoint.
func (p Period) Intersect(o Period) Period {
	if p.Len() == 0 || o.Len() == 0 {
		return Period{}
	}
	start := Date(*p.StartDate)
	if s := Date(*o.StartDate); s.After(start) {
		start = s
	}
	end := Date(*p.EndDate)
	if e := Date(*o.EndDate); e.Before(end) {
		end = e
	}
	if end.Before(start) {
		return Period{}
	}
	return Period{StartDate: &start, EndDate: &end}
}

// Dates lists every date of the period in ascending order.
func (p Period) Dates() []time.Time {
	n := p.Len()
	dates := make([]time.Time, 0, n)
	start := Date(*p.StartDate)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}
