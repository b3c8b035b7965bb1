package scorers

import (
	"fmt"
	"math"
)

// StressScorer inverts the wearable's 0-100 stress level. No baseline
// needed: the device already normalizes stress against the user.
type StressScorer struct{}

func (StressScorer) Name() string { return "stress" }

func (StressScorer) Weight() float64 { return 0.1 }

func (StressScorer) Score(in Input) Result {
	if in.Metrics.StressLevel == nil {
		return Result{Explanation: "no stress data for today"}
	}

	level := *in.Metrics.StressLevel
	score := int(math.Round(100 - level))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:       intPtr(score),
		Explanation: fmt.Sprintf("stress level %.0f/100 inverts to a %d recovery contribution", level, score),
	}
}
