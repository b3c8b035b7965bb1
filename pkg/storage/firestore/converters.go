package firestore

import (
	"time"

	"github.com/ripixel/readiness/pkg/types"
)

// Helper to safely get string from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Helper to safely get an optional float from map. Firestore hands back
// float64 for doubles and int64 for integers, so both are accepted.
func getFloatPtr(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

// Helper to safely get time from map (handles time.Time from Firestore)
func getTime(m map[string]interface{}, key string) time.Time {
	if v, ok := m[key]; ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

func putFloatPtr(m map[string]interface{}, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

// --- DailyMetrics Converters ---

func MetricsToFirestore(d *types.DailyMetrics) map[string]interface{} {
	m := map[string]interface{}{
		"user_id": d.UserID,
		"date":    string(d.Date),
	}
	putFloatPtr(m, "hrv_ms", d.HRVMs)
	putFloatPtr(m, "resting_hr_bpm", d.RestingHRBpm)
	putFloatPtr(m, "sleep_duration_minutes", d.SleepDurationMin)
	putFloatPtr(m, "sleep_quality_score", d.SleepQuality)
	putFloatPtr(m, "stress_level", d.StressLevel)
	return m
}

func FirestoreToMetrics(m map[string]interface{}) *types.DailyMetrics {
	return &types.DailyMetrics{
		UserID:           getString(m, "user_id"),
		Date:             types.Date(getString(m, "date")),
		HRVMs:            getFloatPtr(m, "hrv_ms"),
		RestingHRBpm:     getFloatPtr(m, "resting_hr_bpm"),
		SleepDurationMin: getFloatPtr(m, "sleep_duration_minutes"),
		SleepQuality:     getFloatPtr(m, "sleep_quality_score"),
		StressLevel:      getFloatPtr(m, "stress_level"),
	}
}

// --- WorkoutRecord Converters ---

func WorkoutToFirestore(w *types.WorkoutRecord) map[string]interface{} {
	m := map[string]interface{}{
		"user_id":          w.UserID,
		"started_at":       w.StartedAt,
		"date":             string(w.Date()),
		"duration_minutes": w.DurationMin,
		"workout_type":     string(w.Type),
	}
	putFloatPtr(m, "training_load", w.TrainingLoad)
	return m
}

func FirestoreToWorkout(m map[string]interface{}) *types.WorkoutRecord {
	w := &types.WorkoutRecord{
		UserID:       getString(m, "user_id"),
		StartedAt:    getTime(m, "started_at"),
		TrainingLoad: getFloatPtr(m, "training_load"),
		Type:         types.WorkoutType(getString(m, "workout_type")),
	}
	if d := getFloatPtr(m, "duration_minutes"); d != nil {
		w.DurationMin = *d
	}
	return w
}
