package repo

import "time"

// MovementFilter narrows a product's stock movement log. Limit is capped at MaxMovementLimit.
type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

const MaxMovementLimit = 100

func (mf MovementFilter) limit() int {
	if mf.Limit != nil && *mf.Limit > 0 {
		return min(*mf.Limit, MaxMovementLimit)
	}
	return MaxMovementLimit
}
