package scorers

import "fmt"

// HRScorer scores resting heart rate against the 7-day rolling average.
// The relationship is inverse: a lower resting HR indicates better recovery,
// and an elevated one flags fatigue, stress, or incoming illness.
type HRScorer struct{}

var hrAnchors = []anchor{
	{-5, 100},
	{0, 50},
	{5, 25},
	{10, 0},
}

func (HRScorer) Name() string { return "hr" }

func (HRScorer) Weight() float64 { return 0.3 }

func (HRScorer) Score(in Input) Result {
	if in.Metrics.RestingHRBpm == nil {
		return Result{Explanation: "no resting HR reading for today"}
	}
	if in.Baseline.HRAvg7d == nil {
		return Result{Explanation: "no resting HR baseline: fewer than 4 of the trailing 7 days have readings"}
	}

	current := *in.Metrics.RestingHRBpm
	avg := *in.Baseline.HRAvg7d
	deviationPct := (current - avg) / avg * 100

	// Inverse curve: scores fall as deviation rises.
	score := interpolate(hrAnchors, deviationPct)

	direction := "above"
	if deviationPct < 0 {
		direction = "below"
	}
	explanation := fmt.Sprintf("resting HR %.0fbpm is %.1f%% %s the 7-day average of %.1fbpm",
		current, abs(deviationPct), direction, avg)

	return Result{Score: intPtr(score), Explanation: explanation}
}
