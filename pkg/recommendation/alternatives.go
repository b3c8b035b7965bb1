package recommendation

import (
	"fmt"

	"github.com/ripixel/readiness/pkg/types"
)

// buildAlternatives offers up to two options at tiers adjacent to the final
// recommendation. The step-up option is withheld whenever a safety warning
// fired: offering "harder" next to an overtraining or illness warning would
// undercut the warning.
func (e *Engine) buildAlternatives(rec types.WorkoutRecommendation, score types.RecoveryScore) []types.Alternative {
	if score.AnomalyFlag {
		return nil
	}

	idx := tierIndex(rec.Intensity)
	var alts []types.Alternative

	if idx > 0 {
		alts = append(alts, e.alternativeAt(tierLadder[idx-1], rec.Type, score,
			fmt.Sprintf("Easier option if today's %s plan feels like too much at score %d/100.", rec.Intensity, score.TotalScore)))
	}

	if up := idx + 1; up < len(tierLadder) && len(rec.Warnings) == 0 {
		upper := tierLadder[up]
		// Maximal is reserved for the athlete's own call, never suggested.
		if upper != types.IntensityMaximal {
			alts = append(alts, e.alternativeAt(upper, rec.Type, score,
				fmt.Sprintf("Step up to %s if you feel stronger than the %d/100 score suggests.", upper, score.TotalScore)))
		}
	}

	return alts
}

func (e *Engine) alternativeAt(tier types.IntensityLevel, wt types.WorkoutType, score types.RecoveryScore, rationale string) types.Alternative {
	// Recovery-tier movement works better as low-impact work.
	if tier == types.IntensityRecovery && wt == types.WorkoutStrength {
		wt = types.WorkoutYoga
	}

	var probe types.WorkoutRecommendation
	e.applyTier(&probe, tier, score.TotalScore)

	return types.Alternative{
		Type:        wt,
		Intensity:   tier,
		DurationMin: probe.DurationMin,
		Rationale:   rationale,
	}
}
