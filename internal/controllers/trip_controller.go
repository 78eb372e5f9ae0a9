package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// TripController exposes trip commands of the planner over HTTP.
type TripController struct {
	planner *planner.Planner
}

func NewTripController(p *planner.Planner) *TripController {
	return &TripController{planner: p}
}

type createTripInput struct {
	Title string `json:"title" binding:"required"`
}

type updateTripInput struct {
	Title  *string            `json:"title"`
	Status *models.TripStatus `json:"status"`
}

// updatePeriodInput takes both dates or neither, as YYYY-MM-DD.
type updatePeriodInput struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	t = models.Date(t)
	return &t, nil
}

func (tc *TripController) CreateTrip(c *gin.Context) {
	var input createTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	trip, err := tc.planner.CreateTrip(c.Request.Context(), currentUserID(c), input.Title)
	if err != nil {
		respondError(c, "CreateTrip", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"trip": toTripResponse(*trip)})
}

func (tc *TripController) ListTrips(c *gin.Context) {
	trips, err := tc.planner.ListTrips(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, "ListTrips", err)
		return
	}
	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	c.JSON(http.StatusOK, gin.H{"trips": out})
}

func (tc *TripController) GetTrip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	trip, err := tc.planner.GetTrip(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, "GetTrip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": toTripResponse(*trip)})
}

// UpdateTrip changes the title and/or status of a trip.
func (tc *TripController) UpdateTrip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input updateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, owner := c.Request.Context(), currentUserID(c)
	var trip *models.Trip
	var err error
	if input.Title != nil {
		if trip, err = tc.planner.UpdateTripTitle(ctx, owner, id, *input.Title); err != nil {
			respondError(c, "UpdateTrip", err)
			return
		}
	}
	if input.Status != nil {
		if trip, err = tc.planner.UpdateTripStatus(ctx, owner, id, *input.Status); err != nil {
			respondError(c, "UpdateTrip", err)
			return
		}
	}
	if trip == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": toTripResponse(*trip)})
}

func (tc *TripController) UpdatePeriod(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input updatePeriodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := parseDate(input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date: " + err.Error()})
		return
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date: " + err.Error()})
		return
	}

	trip, err := tc.planner.UpdatePeriod(c.Request.Context(), planner.UpdatePeriodCommand{
		OwnerID: currentUserID(c),
		TripID:  id,
		Period:  models.Period{StartDate: start, EndDate: end},
	})
	if err != nil {
		respondError(c, "UpdatePeriod", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": toTripResponse(*trip)})
}

func (tc *TripController) DeleteTrip(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := tc.planner.DeleteTrip(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, "DeleteTrip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}
