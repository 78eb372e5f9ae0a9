package planner

import (
	"errors"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
)

// Errors returned by planner commands. Callers match them with errors.Is.
// order.ErrRangeExceeded and order.ErrMidpointConflict never leave the
// planner: they trigger relocation instead.
var (
	ErrTripNotFound              = errors.New("trip not found")
	ErrDayNotFound               = errors.New("day not found")
	ErrScheduleNotFound          = errors.New("schedule not found")
	ErrForbidden                 = errors.New("trip belongs to another user")
	ErrInvalidTargetOrder        = errors.New("target order out of range")
	ErrTooManyDaySchedules       = errors.New("day schedule limit reached")
	ErrTooManyTripSchedules      = errors.New("trip schedule limit reached")
	ErrEmptyPeriodUpdateRejected = errors.New("a decided trip can not return to an empty period")
	ErrInvalidStatus             = errors.New("invalid trip status transition")
	ErrRelocationFailed          = errors.New("placement failed after relocation")

	ErrInvalidPeriod     = models.ErrInvalidPeriod
	ErrInvalidTimeWindow = models.ErrInvalidTimeWindow
)
