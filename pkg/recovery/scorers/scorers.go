// Package scorers holds the four component scorers that feed the readiness
// aggregate. Each scorer is a pure function over one day's metrics and the
// rolling baseline; a nil score means the component could not be computed
// and must be excluded from aggregation (never treated as zero).
package scorers

import "github.com/ripixel/readiness/pkg/types"

// Input is the immutable snapshot a scorer operates on.
type Input struct {
	Metrics  types.DailyMetrics
	Baseline types.RollingBaseline
}

// Result is a scorer outcome. Score is nil when the component is missing;
// Explanation always says why, in terms of concrete values.
type Result struct {
	Score       *int
	Explanation string
}

// Scorer maps today's metrics plus baseline to a 0-100 sub-score.
type Scorer interface {
	Name() string
	Weight() float64
	Score(in Input) Result
}

// Registration order is also aggregation display order.
var registry = []Scorer{
	HRVScorer{},
	HRScorer{},
	SleepScorer{},
	StressScorer{},
}

// All returns the registered scorers in registration order
// (HRV, HR, Sleep, Stress).
func All() []Scorer {
	return registry
}

func intPtr(v int) *int {
	return &v
}
