// Package types holds the domain records exchanged between the readiness
// engine, its store, and the HTTP layer. All records are immutable once
// produced: recalculation creates a superseding record, never mutates.
package types

import "time"

// Date is a calendar date in ISO form (YYYY-MM-DD). ISO dates order
// lexicographically, so Date values compare with plain string operators.
type Date string

const dateLayout = "2006-01-02"

// ParseDate validates and normalizes an ISO calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return Date(t.Format(dateLayout)), nil
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(dateLayout))
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t, _ := time.Parse(dateLayout, string(d))
	return Date(t.AddDate(0, 0, n).Format(dateLayout))
}

// Time returns the date as a UTC midnight timestamp.
func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t.UTC()
}

// WorkoutType classifies a logged session.
type WorkoutType string

const (
	WorkoutRun      WorkoutType = "run"
	WorkoutBike     WorkoutType = "bike"
	WorkoutSwim     WorkoutType = "swim"
	WorkoutStrength WorkoutType = "strength"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutOther    WorkoutType = "other"
)

// IntensityLevel is the recommended workout difficulty tier.
type IntensityLevel string

const (
	IntensityRest     IntensityLevel = "rest"
	IntensityRecovery IntensityLevel = "recovery"
	IntensityEasy     IntensityLevel = "easy"
	IntensityModerate IntensityLevel = "moderate"
	IntensityHard     IntensityLevel = "hard"
	IntensityMaximal  IntensityLevel = "maximal"
)

// RecoveryStatus is the tri-state readiness band derived from the total score.
type RecoveryStatus string

const (
	StatusGreen  RecoveryStatus = "green"
	StatusYellow RecoveryStatus = "yellow"
	StatusRed    RecoveryStatus = "red"
)

// DailyMetrics is one user's raw physiological snapshot for one calendar
// date. Every field is optional; nil means the wearable reported nothing,
// which is distinct from a reported zero.
type DailyMetrics struct {
	UserID           string   `json:"user_id"`
	Date             Date     `json:"date"`
	HRVMs            *float64 `json:"hrv_ms,omitempty"`
	RestingHRBpm     *float64 `json:"resting_hr_bpm,omitempty"`
	SleepDurationMin *float64 `json:"sleep_duration_minutes,omitempty"`
	SleepQuality     *float64 `json:"sleep_quality_score,omitempty"`
	StressLevel      *float64 `json:"stress_level,omitempty"`
}

// WorkoutRecord is one logged training session. The engine only reads these
// to derive acute/chronic load sums and type frequency.
type WorkoutRecord struct {
	UserID       string      `json:"user_id"`
	StartedAt    time.Time   `json:"started_at"`
	DurationMin  float64     `json:"duration_minutes"`
	TrainingLoad *float64    `json:"training_load,omitempty"`
	Type         WorkoutType `json:"workout_type"`
}

// Date returns the calendar date the workout started on.
func (w WorkoutRecord) Date() Date {
	return DateOf(w.StartedAt)
}

// RollingBaseline holds trailing-window statistics anchored the day before
// the target date. Nil fields mean the window had too little data to be a
// trustworthy baseline. Ephemeral: recomputed on every engine run.
type RollingBaseline struct {
	HRVAvg7d       *float64 `json:"hrv_avg_7d,omitempty"`
	HRAvg7d        *float64 `json:"hr_avg_7d,omitempty"`
	AcuteLoad7d    *float64 `json:"acute_load_7d,omitempty"`
	ChronicLoad28d *float64 `json:"chronic_load_28d,omitempty"`
}

// ComponentScore is one scorer's contribution with its explanation.
type ComponentScore struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// ComponentScores groups the four component results. Nil entries were
// excluded from aggregation (their weight was redistributed).
type ComponentScores struct {
	HRV    *ComponentScore `json:"hrv,omitempty"`
	HR     *ComponentScore `json:"hr,omitempty"`
	Sleep  *ComponentScore `json:"sleep,omitempty"`
	Stress *ComponentScore `json:"stress,omitempty"`
}

// ACWR is the acute:chronic workload result. Ratio is nil when no chronic
// load history exists; AdjustmentFactor is always in (0, 1].
type ACWR struct {
	Ratio            *float64 `json:"ratio,omitempty"`
	AdjustmentFactor float64  `json:"adjustment_factor"`
}

// RecoveryScore is the engine's primary output: one per (user, date).
type RecoveryScore struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Date        Date            `json:"date"`
	TotalScore  int             `json:"total_score"`
	Status      RecoveryStatus  `json:"status"`
	Components  ComponentScores `json:"components"`
	ACWR        ACWR            `json:"acwr"`
	AnomalyFlag bool            `json:"anomaly_flag"`
	ComputedAt  time.Time       `json:"computed_at"`
}

// HeartRateTarget is a bpm band for the recommended session.
type HeartRateTarget struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Alternative is a secondary workout option at an adjacent intensity tier.
type Alternative struct {
	Type        WorkoutType    `json:"workout_type"`
	Intensity   IntensityLevel `json:"intensity_level"`
	DurationMin int            `json:"duration_minutes"`
	Rationale   string         `json:"rationale"`
}

// WorkoutRecommendation pairs 1:1 with a RecoveryScore and is regenerated
// whenever its source score is.
type WorkoutRecommendation struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Date         Date             `json:"date"`
	Type         WorkoutType      `json:"workout_type"`
	DurationMin  int              `json:"duration_minutes"`
	Intensity    IntensityLevel   `json:"intensity_level"`
	HRTarget     *HeartRateTarget `json:"heart_rate_target,omitempty"`
	Rationale    string           `json:"rationale"`
	Warnings     []string         `json:"warnings,omitempty"`
	Alternatives []Alternative    `json:"alternatives,omitempty"`
}

// Float64 returns a pointer to v. Convenience for optional metric fields.
func Float64(v float64) *float64 {
	return &v
}
