package recovery

import "github.com/ripixel/readiness/pkg/types"

// Plausibility bounds for raw metrics. Values outside these ranges are
// reported as MalformedMetricError instead of clamped.
var metricBounds = []struct {
	field string
	min   float64
	max   float64
	value func(types.DailyMetrics) *float64
}{
	{"hrv_ms", 1, 300, func(m types.DailyMetrics) *float64 { return m.HRVMs }},
	{"resting_hr_bpm", 30, 220, func(m types.DailyMetrics) *float64 { return m.RestingHRBpm }},
	{"sleep_duration_minutes", 0, 1440, func(m types.DailyMetrics) *float64 { return m.SleepDurationMin }},
	{"sleep_quality_score", 0, 100, func(m types.DailyMetrics) *float64 { return m.SleepQuality }},
	{"stress_level", 0, 100, func(m types.DailyMetrics) *float64 { return m.StressLevel }},
}

// ValidateMetrics checks every present field of a daily record against its
// plausible physiological range.
func ValidateMetrics(m types.DailyMetrics) error {
	for _, b := range metricBounds {
		v := b.value(m)
		if v == nil {
			continue
		}
		if *v < b.min || *v > b.max {
			return &MalformedMetricError{Field: b.field, Date: m.Date, Value: *v, Min: b.min, Max: b.max}
		}
	}
	return nil
}

// ValidateWorkout rejects physically impossible workout records.
func ValidateWorkout(w types.WorkoutRecord) error {
	if w.DurationMin <= 0 {
		return &MalformedMetricError{Field: "duration_minutes", Date: w.Date(), Value: w.DurationMin, Min: 1, Max: 1440}
	}
	if w.TrainingLoad != nil && *w.TrainingLoad < 0 {
		return &MalformedMetricError{Field: "training_load", Date: w.Date(), Value: *w.TrainingLoad, Min: 0, Max: 10000}
	}
	return nil
}
