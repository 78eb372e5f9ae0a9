package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/middleware"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
)

// statusOf maps planner errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, planner.ErrTripNotFound),
		errors.Is(err, planner.ErrDayNotFound),
		errors.Is(err, planner.ErrScheduleNotFound):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, planner.ErrInvalidTargetOrder),
		errors.Is(err, planner.ErrInvalidPeriod),
		errors.Is(err, planner.ErrInvalidTimeWindow):
		return http.StatusBadRequest
	case errors.Is(err, planner.ErrTooManyDaySchedules),
		errors.Is(err, planner.ErrTooManyTripSchedules),
		errors.Is(err, planner.ErrEmptyPeriodUpdateRejected),
		errors.Is(err, planner.ErrInvalidStatus):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, op string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Errorf("%s: unexpected failure", op)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	logrus.WithError(err).Debugf("%s: rejected", op)
	c.JSON(status, gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.UserIDKey).(uint)
}
