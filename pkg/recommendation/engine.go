// Package recommendation turns an aggregated recovery score plus recent
// workout history into a concrete daily workout suggestion. The status gives
// the base intensity tier; two safety overrides (overtraining, anomaly) run
// as an ordered pipeline on top; alternatives sit at adjacent tiers.
package recommendation

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ripixel/readiness/pkg/types"
)

// DefaultMaxHR is used for heart-rate targets when no per-user maximum is
// configured.
const DefaultMaxHR = 190.0

// tierSpec is the fixed lookup for one intensity tier: base session length
// and the HR band as fractions of max HR. A zero band means no HR target.
type tierSpec struct {
	durationMin int
	hrLowPct    float64
	hrHighPct   float64
}

var tierSpecs = map[types.IntensityLevel]tierSpec{
	types.IntensityMaximal:  {durationMin: 45, hrLowPct: 0.90, hrHighPct: 1.00},
	types.IntensityHard:     {durationMin: 60, hrLowPct: 0.80, hrHighPct: 0.90},
	types.IntensityModerate: {durationMin: 75, hrLowPct: 0.70, hrHighPct: 0.80},
	types.IntensityEasy:     {durationMin: 45, hrLowPct: 0.60, hrHighPct: 0.70},
	types.IntensityRecovery: {durationMin: 30, hrLowPct: 0.50, hrHighPct: 0.60},
	types.IntensityRest:     {},
}

// tierLadder orders tiers ascending. Downgrades walk one step left.
var tierLadder = []types.IntensityLevel{
	types.IntensityRest,
	types.IntensityRecovery,
	types.IntensityEasy,
	types.IntensityModerate,
	types.IntensityHard,
	types.IntensityMaximal,
}

type Engine struct {
	MaxHR  float64
	Logger *slog.Logger
}

func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{MaxHR: DefaultMaxHR, Logger: logger}
}

// RecommendationID is deterministic over (user, date) so regeneration for
// unchanged inputs reproduces the same record ID.
func RecommendationID(userID string, date types.Date) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("recommendation/%s/%s", userID, date))).String()
}

// Compute never fails for a valid score: with no usable history it still
// lands on a safe fallback. recent should cover the trailing week ending the
// day before the score's date.
func (e *Engine) Compute(score types.RecoveryScore, recent []types.WorkoutRecord) types.WorkoutRecommendation {
	rec := types.WorkoutRecommendation{
		ID:     RecommendationID(score.UserID, score.Date),
		UserID: score.UserID,
		Date:   score.Date,
		Type:   preferredType(recent),
	}
	e.applyTier(&rec, baseTier(score), score.TotalScore)

	octx := overrideContext{
		Score:              score,
		QualifyingHardDays: qualifyingHardDays(recent, score.Date),
	}
	for _, apply := range overridePipeline {
		apply(e, &rec, octx)
	}

	rec.Alternatives = e.buildAlternatives(rec, score)
	rec.Rationale = buildRationale(score, &rec)

	e.Logger.Debug("recommendation computed",
		"user_id", score.UserID,
		"date", score.Date,
		"intensity", rec.Intensity,
		"workout_type", rec.Type,
		"warnings", len(rec.Warnings),
	)

	return rec
}

// baseTier is the status state machine: green trains hard, yellow moderate,
// red rests or spins easy depending on how deep the score sits.
func baseTier(score types.RecoveryScore) types.IntensityLevel {
	switch score.Status {
	case types.StatusGreen:
		return types.IntensityHard
	case types.StatusYellow:
		return types.IntensityModerate
	default:
		if score.TotalScore < 30 {
			return types.IntensityRest
		}
		return types.IntensityRecovery
	}
}

// applyTier stamps a tier's duration band and HR target onto the
// recommendation, scaling session length with the score.
func (e *Engine) applyTier(rec *types.WorkoutRecommendation, tier types.IntensityLevel, totalScore int) {
	spec := tierSpecs[tier]
	rec.Intensity = tier

	duration := spec.durationMin
	if duration > 0 {
		switch {
		case totalScore >= 85:
			duration += 15
		case totalScore < 60:
			duration -= 15
			if duration < 20 {
				duration = 20
			}
		}
	}
	rec.DurationMin = duration

	if spec.hrHighPct > 0 {
		rec.HRTarget = &types.HeartRateTarget{
			Low:  int(e.MaxHR * spec.hrLowPct),
			High: int(e.MaxHR * spec.hrHighPct),
		}
	} else {
		rec.HRTarget = nil
	}
}

// preferredType picks the user's most frequent workout type from recent
// history. Ties break toward the most recent occurrence; no history falls
// back to "other".
func preferredType(recent []types.WorkoutRecord) types.WorkoutType {
	counts := make(map[types.WorkoutType]int)
	lastSeen := make(map[types.WorkoutType]int)
	for i, w := range recent {
		counts[w.Type]++
		lastSeen[w.Type] = i
	}

	best := types.WorkoutOther
	bestCount := 0
	for wt, n := range counts {
		if n > bestCount || (n == bestCount && lastSeen[wt] > lastSeen[best]) {
			best = wt
			bestCount = n
		}
	}
	return best
}

func tierIndex(tier types.IntensityLevel) int {
	for i, t := range tierLadder {
		if t == tier {
			return i
		}
	}
	return 0
}
