package controllers

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// ScheduleResponse mirrors models.Schedule with the place geometry as GeoJSON.
type ScheduleResponse struct {
	ID        uint       `json:"id"`
	TripID    uint       `json:"trip_id"`
	DayID     *uint      `json:"day_id"`
	Position  int64      `json:"position"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	PlaceID   string     `json:"place_id"`
	PlaceName string     `json:"place_name"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Geometry  string     `json:"geometry,omitempty"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type DayResponse struct {
	ID        uint               `json:"id"`
	Date      string             `json:"date"`
	Color     models.DayColor    `json:"color"`
	Schedules []ScheduleResponse `json:"schedules"`
}

type TripResponse struct {
	ID               uint               `json:"id"`
	OwnerID          uint               `json:"owner_id"`
	Title            string             `json:"title"`
	Status           models.TripStatus  `json:"status"`
	StartDate        *string            `json:"start_date"`
	EndDate          *string            `json:"end_date"`
	Days             []DayResponse      `json:"days,omitempty"`
	TemporaryStorage []ScheduleResponse `json:"temporary_storage,omitempty"`
}

type MoveResponse struct {
	ScheduleID      uint   `json:"schedule_id"`
	FromDayID       *uint  `json:"from_day_id"`
	ToDayID         *uint  `json:"to_day_id"`
	Transition      string `json:"transition"`
	PositionChanged bool   `json:"position_changed"`
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toScheduleResponse(s models.Schedule) ScheduleResponse {
	geometry, err := s.Place.GeoJSON()
	if err != nil {
		logrus.WithError(err).WithField("schedule", s.ID).Warn("stored place geometry is unreadable")
	}
	return ScheduleResponse{
		ID:        s.ID,
		TripID:    s.TripID,
		DayID:     s.DayID,
		Position:  s.Position,
		Title:     s.Title,
		Content:   s.Content,
		PlaceID:   s.PlaceID,
		PlaceName: s.PlaceName,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Geometry:  geometry,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func toScheduleResponses(items []models.Schedule) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toScheduleResponse(s))
	}
	return out
}

func toTripResponse(t models.Trip) TripResponse {
	resp := TripResponse{
		ID:               t.ID,
		OwnerID:          t.OwnerID,
		Title:            t.Title,
		Status:           t.Status,
		StartDate:        formatDate(t.StartDate),
		EndDate:          formatDate(t.EndDate),
		TemporaryStorage: toScheduleResponses(t.TemporaryStorage),
	}
	for _, d := range t.Days {
		resp.Days = append(resp.Days, DayResponse{
			ID:        d.ID,
			Date:      d.Date.Format(dateLayout),
			Color:     d.Color,
			Schedules: toScheduleResponses(d.Schedules),
		})
	}
	return resp
}

func toMoveResponse(o planner.Outcome) MoveResponse {
	resp := MoveResponse{
		ScheduleID:      o.ScheduleID,
		ToDayID:         o.To.DayID,
		Transition:      string(o.Transition),
		PositionChanged: o.PositionChanged,
	}
	if o.From != nil {
		resp.FromDayID = o.From.DayID
	}
	return resp
}
