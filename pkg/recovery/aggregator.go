package recovery

import (
	"math"

	"github.com/ripixel/readiness/pkg/types"
)

// Status bands over the total score.
const (
	greenThreshold  = 80
	yellowThreshold = 50
)

// MinScoreableComponents is the fewest present component scores that still
// make a weighted aggregate meaningful.
const MinScoreableComponents = 2

// Anomaly thresholds: elevated resting HR concurrent with depressed HRV is a
// possible-illness signature regardless of the numeric score.
const (
	anomalyHRRatio  = 1.10
	anomalyHRVRatio = 0.90
)

// weightedComponent pairs a scorer weight with its possibly-missing score.
type weightedComponent struct {
	weight float64
	score  *int
}

// foldWeighted collapses (weight, score-or-nil) pairs into a weighted mean.
// Missing components drop out and their weight is redistributed
// proportionally across the rest; treating them as zero would bias the
// aggregate downward. Second return is how many components were present.
func foldWeighted(components []weightedComponent) (float64, int) {
	var totalWeight float64
	var present int
	for _, c := range components {
		if c.score != nil {
			totalWeight += c.weight
			present++
		}
	}
	if totalWeight == 0 {
		return 0, 0
	}

	var sum float64
	for _, c := range components {
		if c.score != nil {
			sum += float64(*c.score) * (c.weight / totalWeight)
		}
	}
	return sum, present
}

// StatusForScore maps a total score onto the tri-state band. Pure and fixed:
// >=80 green, >=50 yellow, below red.
func StatusForScore(score int) types.RecoveryStatus {
	switch {
	case score >= greenThreshold:
		return types.StatusGreen
	case score >= yellowThreshold:
		return types.StatusYellow
	default:
		return types.StatusRed
	}
}

// aggregate combines component scores and the ACWR adjustment into the final
// clamped total.
func aggregate(components []weightedComponent, acwr types.ACWR) (int, int) {
	weighted, present := foldWeighted(components)
	total := int(math.Round(weighted * acwr.AdjustmentFactor))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return total, present
}

// detectAnomaly flags the illness signature: resting HR at or above +10% of
// baseline while HRV sits at or below -10%. Needs both today's values and
// both baselines; missing data never fires the flag.
func detectAnomaly(m types.DailyMetrics, b types.RollingBaseline) bool {
	if m.RestingHRBpm == nil || m.HRVMs == nil || b.HRAvg7d == nil || b.HRVAvg7d == nil {
		return false
	}
	hrElevated := *m.RestingHRBpm >= *b.HRAvg7d*anomalyHRRatio
	hrvDepressed := *m.HRVMs <= *b.HRVAvg7d*anomalyHRVRatio
	return hrElevated && hrvDepressed
}
