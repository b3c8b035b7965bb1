package scorers

import (
	"fmt"
	"math"
)

// SleepScorer blends sleep duration (60%) and reported sleep quality (40%).
// Duration scores on a curve with a flat optimum across 7-9 hours; both
// boundaries are inclusive, so exactly 9h still scores 100 and the decline
// toward oversleeping starts past it. Below 5 hours the score pins at 30.
// When the wearable supplies no quality value, quality inherits the duration
// score, which leaves the blend equal to duration alone.
type SleepScorer struct{}

const (
	sleepDurationWeight = 0.6
	sleepQualityWeight  = 0.4
)

var sleepDurationAnchors = []anchor{
	{5, 30},
	{6, 70},
	{7, 100},
	{9, 100},
	{10, 70},
	{17, 0}, // 10 points per hour past 10h of oversleep
}

func (SleepScorer) Name() string { return "sleep" }

func (SleepScorer) Weight() float64 { return 0.2 }

func (SleepScorer) Score(in Input) Result {
	if in.Metrics.SleepDurationMin == nil {
		return Result{Explanation: "no sleep data for today"}
	}

	hours := *in.Metrics.SleepDurationMin / 60
	durationScore := interpolate(sleepDurationAnchors, hours)

	qualityScore := float64(durationScore)
	qualitySource := "no quality reading, using duration"
	if in.Metrics.SleepQuality != nil {
		qualityScore = *in.Metrics.SleepQuality
		qualitySource = fmt.Sprintf("quality %.0f/100", qualityScore)
	}

	combined := int(math.Round(float64(durationScore)*sleepDurationWeight + qualityScore*sleepQualityWeight))
	explanation := fmt.Sprintf("%.1fh of sleep scores %d for duration; %s", hours, durationScore, qualitySource)

	return Result{Score: intPtr(combined), Explanation: explanation}
}
