package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// ScheduleController exposes schedule commands of the planner over HTTP.
type ScheduleController struct {
	planner *planner.Planner
}

func NewScheduleController(p *planner.Planner) *ScheduleController {
	return &ScheduleController{planner: p}
}

type placeInput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type scheduleInput struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Place     placeInput `json:"place"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type createScheduleInput struct {
	scheduleInput
	DayID *uint `json:"day_id"`
}

type moveScheduleInput struct {
	TargetDayID *uint `json:"target_day_id"`
	TargetOrder *int  `json:"target_order" binding:"required"`
}

func (in scheduleInput) place() (models.Place, error) {
	return models.NewPlace(in.Place.ID, in.Place.Name, in.Place.Latitude, in.Place.Longitude)
}

func (in scheduleInput) window() models.TimeWindow {
	return models.TimeWindow{StartTime: in.StartTime, EndTime: in.EndTime}
}

// CreateSchedule appends a schedule to a day, or to temporary storage without day_id.
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {
	tripID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input createScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	place, err := input.place()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid place: " + err.Error()})
		return
	}

	s, err := sc.planner.CreateSchedule(c.Request.Context(), planner.CreateScheduleCommand{
		OwnerID: currentUserID(c),
		TripID:  tripID,
		DayID:   input.DayID,
		Title:   input.Title,
		Content: input.Content,
		Place:   place,
		Window:  input.window(),
	})
	if err != nil {
		respondError(c, "CreateSchedule", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": toScheduleResponse(*s)})
}

func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s, err := sc.planner.GetSchedule(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, "GetSchedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": toScheduleResponse(*s)})
}

func (sc *ScheduleController) UpdateSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input scheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	place, err := input.place()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid place: " + err.Error()})
		return
	}

	s, err := sc.planner.UpdateSchedule(c.Request.Context(), planner.UpdateScheduleCommand{
		OwnerID:    currentUserID(c),
		ScheduleID: id,
		Title:      input.Title,
		Content:    input.Content,
		Place:      place,
		Window:     input.window(),
	})
	if err != nil {
		respondError(c, "UpdateSchedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": toScheduleResponse(*s)})
}

// MoveSchedule places a schedule at target_order of a day, or of temporary
// storage when target_day_id is null.
func (sc *ScheduleController) MoveSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input moveScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := sc.planner.MoveSchedule(c.Request.Context(), planner.MoveScheduleCommand{
		OwnerID:     currentUserID(c),
		ScheduleID:  id,
		TargetDayID: input.TargetDayID,
		TargetOrder: *input.TargetOrder,
	})
	if err != nil {
		respondError(c, "MoveSchedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"move": toMoveResponse(out)})
}

func (sc *ScheduleController) DeleteSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := sc.planner.DeleteSchedule(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, "DeleteSchedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
