package recovery

import (
	"github.com/ripixel/readiness/pkg/types"
)

const (
	// BaselineWindowDays is the trailing window for HRV/HR rolling averages.
	BaselineWindowDays = 7

	// ChronicWindowDays is the trailing window for chronic training load.
	ChronicWindowDays = 28

	// MinBaselineDays is how many of the trailing 7 days must carry a metric
	// before its rolling average counts as a usable baseline.
	MinBaselineDays = 4

	// MinHistoryDays is the hard precondition for scoring at all: distinct
	// metric dates before the target date. Separate from MinBaselineDays on
	// purpose; the two thresholds answer different questions.
	MinHistoryDays = 7
)

// ComputeBaseline derives trailing-window statistics anchored at target.
// Windows end the day before target: today's raw values never feed their own
// baseline. Inputs must be sorted by date ascending.
func ComputeBaseline(metrics []types.DailyMetrics, workouts []types.WorkoutRecord, target types.Date) types.RollingBaseline {
	var b types.RollingBaseline

	weekStart := target.AddDays(-BaselineWindowDays)
	b.HRVAvg7d = windowAverage(metrics, weekStart, target, func(m types.DailyMetrics) *float64 { return m.HRVMs })
	b.HRAvg7d = windowAverage(metrics, weekStart, target, func(m types.DailyMetrics) *float64 { return m.RestingHRBpm })

	acute := windowLoadSum(workouts, weekStart, target)
	b.AcuteLoad7d = &acute

	// Chronic load needs a full 28-day window behind it; a younger history
	// would understate the denominator and fabricate a load spike.
	chronicStart := target.AddDays(-ChronicWindowDays)
	if len(metrics) > 0 && metrics[0].Date <= chronicStart {
		chronic := windowLoadSum(workouts, chronicStart, target) / 4
		b.ChronicLoad28d = &chronic
	}

	return b
}

// CountMetricDays counts distinct dates strictly before target that carry a
// metrics record. Feeds the MinHistoryDays precondition.
func CountMetricDays(metrics []types.DailyMetrics, target types.Date) int {
	seen := make(map[types.Date]struct{})
	for _, m := range metrics {
		if m.Date < target {
			seen[m.Date] = struct{}{}
		}
	}
	return len(seen)
}

// windowAverage is the mean of non-nil values in [from, to). Returns nil when
// fewer than MinBaselineDays days have the metric.
func windowAverage(metrics []types.DailyMetrics, from, to types.Date, field func(types.DailyMetrics) *float64) *float64 {
	var sum float64
	var n int
	for _, m := range metrics {
		if m.Date < from || m.Date >= to {
			continue
		}
		if v := field(m); v != nil && *v > 0 {
			sum += *v
			n++
		}
	}
	if n < MinBaselineDays {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// windowLoadSum sums training load for workouts started in [from, to).
// Missing load counts as 0, not skipped: a logged session with no load
// estimate still occupies its calendar day.
func windowLoadSum(workouts []types.WorkoutRecord, from, to types.Date) float64 {
	var sum float64
	for _, w := range workouts {
		d := w.Date()
		if d < from || d >= to {
			continue
		}
		if w.TrainingLoad != nil {
			sum += *w.TrainingLoad
		}
	}
	return sum
}
