package recommendation

import (
	"fmt"

	"github.com/ripixel/readiness/pkg/types"
)

// hardDayLoadThreshold: a calendar day whose summed training load exceeds
// this counts as a moderate-or-harder training day.
const hardDayLoadThreshold = 60.0

// overtrainingLookbackDays is how many preceding calendar days must all be
// hard before the overtraining rule fires.
const overtrainingLookbackDays = 3

type overrideContext struct {
	Score              types.RecoveryScore
	QualifyingHardDays int
}

// override mutates the recommendation-in-progress. Overrides run in a fixed
// order so precedence stays explicit and each rule is testable alone.
type override func(e *Engine, rec *types.WorkoutRecommendation, octx overrideContext)

// Overtraining first, anomaly last: the anomaly rule must win outright.
var overridePipeline = []override{
	overtrainingOverride,
	anomalyOverride,
}

// overtrainingOverride enforces the hard safety rule: three straight days of
// moderate-or-harder training drops today's suggestion one tier, whatever
// the raw score says.
func overtrainingOverride(e *Engine, rec *types.WorkoutRecommendation, octx overrideContext) {
	if octx.QualifyingHardDays < overtrainingLookbackDays {
		return
	}

	idx := tierIndex(rec.Intensity)
	if idx > 0 {
		e.applyTier(rec, tierLadder[idx-1], octx.Score.TotalScore)
	}
	rec.Warnings = append(rec.Warnings, fmt.Sprintf(
		"Overtraining prevention: moderate-or-harder sessions on each of the last %d days (daily load above %.0f). Intensity reduced one tier to %s.",
		overtrainingLookbackDays, hardDayLoadThreshold, rec.Intensity))
}

// anomalyOverride forces rest when the possible-illness signature fired,
// overriding the tier decision entirely.
func anomalyOverride(e *Engine, rec *types.WorkoutRecommendation, octx overrideContext) {
	if !octx.Score.AnomalyFlag {
		return
	}

	e.applyTier(rec, types.IntensityRest, octx.Score.TotalScore)
	rec.Warnings = append(rec.Warnings,
		"Possible illness signal: resting HR at least 10% above baseline while HRV is at least 10% below. Complete rest recommended; monitor for symptoms.")
}

// qualifyingHardDays counts how many of the `overtrainingLookbackDays`
// calendar days before date carried a summed training load above the
// hard-day threshold.
func qualifyingHardDays(recent []types.WorkoutRecord, date types.Date) int {
	loadByDay := make(map[types.Date]float64)
	for _, w := range recent {
		if w.TrainingLoad != nil {
			loadByDay[w.Date()] += *w.TrainingLoad
		}
	}

	count := 0
	for i := 1; i <= overtrainingLookbackDays; i++ {
		if loadByDay[date.AddDays(-i)] > hardDayLoadThreshold {
			count++
		}
	}
	return count
}
