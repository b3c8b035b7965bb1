package recommendation

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ripixel/readiness/pkg/types"
)

var rationalePrinter = message.NewPrinter(language.English)

// lowComponentThreshold: a component this far down earns its own callout.
const lowComponentThreshold = 30

// buildRationale assembles the explanation from fixed parts with concrete
// numbers filled in: opening keyed to the score band, callouts for dragging
// components, the ACWR penalty when one applied, and a closing keyed to the
// final tier. Explainability is a contract here, not flavor text.
func buildRationale(score types.RecoveryScore, rec *types.WorkoutRecommendation) string {
	var parts []string

	parts = append(parts, opening(score))

	for _, callout := range componentCallouts(score.Components) {
		parts = append(parts, callout)
	}

	if score.ACWR.Ratio != nil && score.ACWR.AdjustmentFactor < 1.0 {
		parts = append(parts, rationalePrinter.Sprintf(
			"Your acute:chronic workload ratio of %.2f exceeds the %.1f overreaching threshold, which reduced the score by %d%%.",
			*score.ACWR.Ratio, overreachBoundary(*score.ACWR.Ratio), int((1-score.ACWR.AdjustmentFactor)*100+0.5)))
	}

	if len(rec.Warnings) > 0 {
		parts = append(parts, rec.Warnings[0])
	}

	parts = append(parts, closing(rec))

	return strings.Join(parts, " ")
}

func opening(score types.RecoveryScore) string {
	s := score.TotalScore
	switch {
	case s >= 90:
		return rationalePrinter.Sprintf("Excellent recovery (score %d/100): you are well recovered and ready for high-intensity work.", s)
	case s >= 80:
		return rationalePrinter.Sprintf("Good recovery (score %d/100): your body is ready for quality training.", s)
	case s >= 50:
		return rationalePrinter.Sprintf("Moderate recovery (score %d/100): a conservative approach will serve you better today.", s)
	case s >= 30:
		return rationalePrinter.Sprintf("Low recovery (score %d/100): your body is showing fatigue and needs easier training.", s)
	default:
		return rationalePrinter.Sprintf("Very low recovery (score %d/100): your body urgently needs rest.", s)
	}
}

// componentCallouts surfaces the concrete deviations behind any component
// dragging the aggregate down.
func componentCallouts(c types.ComponentScores) []string {
	var callouts []string
	add := func(cs *types.ComponentScore) {
		if cs != nil && cs.Score < lowComponentThreshold {
			callouts = append(callouts, strings.ToUpper(cs.Explanation[:1])+cs.Explanation[1:]+".")
		}
	}
	add(c.HRV)
	add(c.HR)
	add(c.Sleep)
	add(c.Stress)
	return callouts
}

func closing(rec *types.WorkoutRecommendation) string {
	switch rec.Intensity {
	case types.IntensityHard, types.IntensityMaximal:
		return rationalePrinter.Sprintf("A %d-minute %s %s session is a good day to push your limits.",
			rec.DurationMin, rec.Intensity, rec.Type)
	case types.IntensityModerate, types.IntensityEasy:
		return rationalePrinter.Sprintf("Aim for a %d-minute %s session at %s intensity, erring easier if you feel flat.",
			rec.DurationMin, rec.Type, rec.Intensity)
	case types.IntensityRecovery:
		return rationalePrinter.Sprintf("Keep today to %d gentle minutes of %s; recovery is where adaptation happens.",
			rec.DurationMin, rec.Type)
	default:
		return "Complete rest is the recommendation: skip structured training until your metrics improve."
	}
}

func overreachBoundary(ratio float64) float64 {
	if ratio > 1.5 {
		return 1.5
	}
	return 1.3
}
