package recovery

import (
	"fmt"

	"github.com/ripixel/readiness/pkg/types"
)

// InsufficientHistoryError is returned when a user has fewer than the
// required number of metric days on record. It is a terminal answer for the
// requested date: the engine never retries, the caller waits for more data.
type InsufficientHistoryError struct {
	UserID        string
	Date          types.Date
	DaysAvailable int
	DaysRequired  int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history for user %s on %s: %d of %d required days",
		e.UserID, e.Date, e.DaysAvailable, e.DaysRequired)
}

// MalformedMetricError reports a metric value outside its physically
// plausible range. Values are reported rather than clamped: a silently
// clamped value would poison every baseline that includes it.
type MalformedMetricError struct {
	Field string
	Date  types.Date
	Value float64
	Min   float64
	Max   float64
}

func (e *MalformedMetricError) Error() string {
	return fmt.Sprintf("malformed metric %s=%g on %s: outside plausible range [%g, %g]",
		e.Field, e.Value, e.Date, e.Min, e.Max)
}

// InsufficientMetricsError is returned when today's record carries too few
// scoreable components for a meaningful weighted score.
type InsufficientMetricsError struct {
	Date      types.Date
	Available int
	Required  int
}

func (e *InsufficientMetricsError) Error() string {
	return fmt.Sprintf("insufficient metrics on %s: %d scoreable components, need %d",
		e.Date, e.Available, e.Required)
}
