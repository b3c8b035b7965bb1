package scorers

import "math"

// anchor is one reference point on a piecewise-linear scoring curve.
type anchor struct {
	x     float64
	score float64
}

// interpolate maps x onto a piecewise-linear curve defined by anchors sorted
// by x ascending. Values beyond either end clamp to the end anchor's score.
// Flat segments (equal scores) give plateaus for free.
func interpolate(anchors []anchor, x float64) int {
	if x <= anchors[0].x {
		return int(math.Round(anchors[0].score))
	}
	last := anchors[len(anchors)-1]
	if x >= last.x {
		return int(math.Round(last.score))
	}
	for i := 0; i < len(anchors)-1; i++ {
		lo, hi := anchors[i], anchors[i+1]
		if x < lo.x || x > hi.x {
			continue
		}
		fraction := (x - lo.x) / (hi.x - lo.x)
		return int(math.Round(lo.score + (hi.score-lo.score)*fraction))
	}
	return 50
}
