package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/metrics"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/models"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/order"
)

// Transition is the branch the placement state machine took.
type Transition string

const (
	TransitionNoop   Transition = "noop"
	TransitionTail   Transition = "tail"
	TransitionHead   Transition = "head"
	TransitionMiddle Transition = "middle"
)

// Outcome describes a finished placement. From is nil for a new schedule.
type Outcome struct {
	ScheduleID      uint
	From            *Container
	To              Container
	Transition      Transition
	PositionChanged bool
}

// position is the requested zero-based index inside the target container,
// or the tail whatever its current size.
type position struct {
	index int
	tail  bool
}

func at(index int) position { return position{index: index} }

var atTail = position{tail: true}

type attemptStatus int

const (
	placed attemptStatus = iota
	needsRelocation
)

type attemptResult struct {
	status  attemptStatus
	outcome Outcome
	cause   error
}

// place runs the state machine for s and, when keys are exhausted, relocates
// the target container and attempts exactly once more.
func place(ctx context.Context, st Store, s *models.Schedule, target Container, pos position) (Outcome, error) {
	res, err := attempt(ctx, st, s, target, pos)
	if err != nil {
		return Outcome{}, err
	}
	if res.status == placed {
		return res.outcome, nil
	}

	logrus.WithFields(logrus.Fields{
		"container": target.String(),
		"schedule":  s.ID,
		"cause":     res.cause,
	}).Info("order keys exhausted, relocating container")

	if err := relocate(ctx, st, target); err != nil {
		return Outcome{}, err
	}
	if s.ID != 0 {
		fresh, err := st.GetSchedule(ctx, s.ID)
		if err != nil {
			return Outcome{}, err
		}
		*s = *fresh
	}

	res, err = attempt(ctx, st, s, target, pos)
	if err != nil {
		return Outcome{}, err
	}
	if res.status == needsRelocation {
		return Outcome{}, fmt.Errorf("%w: %s: %w", ErrRelocationFailed, target, res.cause)
	}
	return res.outcome, nil
}

// attempt evaluates one placement against the current container state. Key
// exhaustion is reported as needsRelocation, never as an error.
func attempt(ctx context.Context, st Store, s *models.Schedule, target Container, pos position) (attemptResult, error) {
	items, err := st.ListContainer(ctx, target)
	if err != nil {
		return attemptResult{}, err
	}

	var from *Container
	current := -1
	if s.ID != 0 {
		c := ContainerOf(*s)
		from = &c
		if c.Same(target) {
			for i := range items {
				if items[i].ID == s.ID {
					current = i
					break
				}
			}
		}
	}

	size := len(items)
	t := pos.index
	if pos.tail {
		t = size
	}
	if t < 0 || t > size {
		return attemptResult{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidTargetOrder, t, size)
	}

	out := Outcome{ScheduleID: s.ID, From: from, To: target}
	if current >= 0 && (t == current || t == current+1) {
		out.Transition = TransitionNoop
		metrics.Placements.WithLabelValues(string(out.Transition)).Inc()
		return attemptResult{status: placed, outcome: out}, nil
	}

	keys := make(order.Keys, size)
	for i := range items {
		keys[i] = order.Key(items[i].Position)
	}

	var key order.Key
	switch {
	case t == size:
		out.Transition = TransitionTail
		key, err = order.InsertAtTail(keys)
	case t == 0:
		out.Transition = TransitionHead
		key, err = order.InsertAtHead(keys)
	default:
		out.Transition = TransitionMiddle
		key, err = order.InsertAtMiddle(keys, t)
	}
	if errors.Is(err, order.ErrRangeExceeded) || errors.Is(err, order.ErrMidpointConflict) {
		return attemptResult{status: needsRelocation, cause: err}, nil
	}
	if err != nil {
		return attemptResult{}, err
	}

	// Container reference and key change in the same write.
	s.DayID = nil
	if target.DayID != nil {
		id := *target.DayID
		s.DayID = &id
	}
	s.Position = key.Int64()
	if err := st.SaveSchedule(ctx, s); err != nil {
		return attemptResult{}, err
	}

	out.ScheduleID = s.ID
	out.PositionChanged = true
	metrics.Placements.WithLabelValues(string(out.Transition)).Inc()
	return attemptResult{status: placed, outcome: out}, nil
}
