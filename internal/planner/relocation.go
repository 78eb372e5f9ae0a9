package planner

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/metrics"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/order"
)

// relocate renumbers every schedule of c from the zero key with the default
// gap, keeping their relative order.
func relocate(ctx context.Context, st Store, c Container) error {
	items, err := st.ListContainer(ctx, c)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	updates := make([]PositionUpdate, len(items))
	key := order.Zero
	for i := range items {
		if i > 0 {
			if key, err = key.Next(); err != nil {
				return err
			}
		}
		updates[i] = PositionUpdate{ScheduleID: items[i].ID, Position: key}
	}
	if err := st.UpdatePositions(ctx, updates); err != nil {
		return err
	}

	metrics.Relocations.WithLabelValues(c.Kind()).Inc()
	logrus.WithFields(logrus.Fields{
		"container": c.String(),
		"schedules": len(updates),
	}).Debug("container relocated")
	return nil
}
