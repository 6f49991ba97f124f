package analytics

import (
	"errors"
	"fmt"
)

// DateRange selects how many daily buckets the sales series covers.
type DateRange string

const (
	Range7Days  DateRange = "7d"
	Range30Days DateRange = "30d"
	Range90Days DateRange = "90d"
	RangeYear   DateRange = "1y"

	DefaultDateRange = Range30Days
)

var ErrInvalidDateRange = errors.New("date range must be one of 7d, 30d, 90d, 1y")

// ParseDateRange maps a selector onto a DateRange. An empty string yields DefaultDateRange.
func ParseDateRange(s string) (DateRange, error) {
	switch r := DateRange(s); r {
	case "":
		return DefaultDateRange, nil
	case Range7Days, Range30Days, Range90Days, RangeYear:
		return r, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidDateRange, s)
	}
}

// Days returns the number of day buckets for the range.
func (r DateRange) Days() int {
	switch r {
	case Range7Days:
		return 7
	case Range90Days:
		return 90
	case RangeYear:
		return 365
	default:
		return 30
	}
}
