package scorers

import "fmt"

// HRVScorer scores heart-rate variability against the 7-day rolling average.
// Higher HRV means better parasympathetic recovery, so positive deviation
// scores high: +10% or more is a 100, -20% or more is a 0.
type HRVScorer struct{}

var hrvAnchors = []anchor{
	{-20, 0},
	{-10, 25},
	{0, 50},
	{10, 100},
}

func (HRVScorer) Name() string { return "hrv" }

func (HRVScorer) Weight() float64 { return 0.4 }

func (HRVScorer) Score(in Input) Result {
	if in.Metrics.HRVMs == nil {
		return Result{Explanation: "no HRV reading for today"}
	}
	if in.Baseline.HRVAvg7d == nil {
		return Result{Explanation: "no HRV baseline: fewer than 4 of the trailing 7 days have readings"}
	}

	current := *in.Metrics.HRVMs
	avg := *in.Baseline.HRVAvg7d
	deviationPct := (current - avg) / avg * 100
	score := interpolate(hrvAnchors, deviationPct)

	direction := "above"
	if deviationPct < 0 {
		direction = "below"
	}
	explanation := fmt.Sprintf("HRV %.0fms is %.1f%% %s the 7-day average of %.1fms",
		current, abs(deviationPct), direction, avg)

	return Result{Score: intPtr(score), Explanation: explanation}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
