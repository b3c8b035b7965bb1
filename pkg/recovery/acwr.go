package recovery

import "github.com/ripixel/readiness/pkg/types"

// ACWR adjustment policy. A short-term load spike relative to the 28-day
// trend lowers readiness multiplicatively, no matter how good this morning's
// HRV and sleep look.
const (
	acwrHighRisk     = 1.5
	acwrElevatedRisk = 1.3

	acwrHighRiskFactor     = 0.8
	acwrElevatedRiskFactor = 0.9
)

// ComputeACWR derives the acute:chronic workload ratio and its multiplicative
// adjustment factor from the rolling baseline. Without a usable chronic load
// (nil, or zero) the ratio is undefined and no penalty applies: you cannot
// accuse a user of overreaching against history they do not have.
func ComputeACWR(b types.RollingBaseline) types.ACWR {
	result := types.ACWR{AdjustmentFactor: 1.0}

	if b.AcuteLoad7d == nil || b.ChronicLoad28d == nil || *b.ChronicLoad28d == 0 {
		return result
	}

	ratio := *b.AcuteLoad7d / *b.ChronicLoad28d
	result.Ratio = &ratio

	switch {
	case ratio > acwrHighRisk:
		result.AdjustmentFactor = acwrHighRiskFactor
	case ratio > acwrElevatedRisk:
		result.AdjustmentFactor = acwrElevatedRiskFactor
	}

	return result
}
