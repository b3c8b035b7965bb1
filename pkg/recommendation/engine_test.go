package recommendation

import (
	"strings"
	"testing"
	"time"

	"github.com/ripixel/readiness/pkg/types"
)

func f(v float64) *float64 { return &v }

func scoreWith(total int, status types.RecoveryStatus) types.RecoveryScore {
	return types.RecoveryScore{
		ID:         "score-id",
		UserID:     "athlete-1",
		Date:       "2026-04-30",
		TotalScore: total,
		Status:     status,
		ACWR:       types.ACWR{AdjustmentFactor: 1.0},
	}
}

func sessionOn(d types.Date, wt types.WorkoutType, load float64) types.WorkoutRecord {
	return types.WorkoutRecord{
		UserID:       "athlete-1",
		StartedAt:    d.Time().Add(7 * time.Hour),
		DurationMin:  60,
		TrainingLoad: f(load),
		Type:         wt,
	}
}

func TestBaseTier(t *testing.T) {
	tests := []struct {
		name  string
		score types.RecoveryScore
		want  types.IntensityLevel
	}{
		{"green trains hard", scoreWith(85, types.StatusGreen), types.IntensityHard},
		{"yellow goes moderate", scoreWith(65, types.StatusYellow), types.IntensityModerate},
		{"shallow red spins easy", scoreWith(40, types.StatusRed), types.IntensityRecovery},
		{"deep red rests", scoreWith(20, types.StatusRed), types.IntensityRest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := baseTier(tc.score); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestComputeTierDetails(t *testing.T) {
	e := New(nil)

	t.Run("green gets hard session with HR band", func(t *testing.T) {
		rec := e.Compute(scoreWith(82, types.StatusGreen), nil)
		if rec.Intensity != types.IntensityHard {
			t.Fatalf("expected hard, got %s", rec.Intensity)
		}
		if rec.DurationMin != 60 {
			t.Errorf("expected 60 minutes at score 82, got %d", rec.DurationMin)
		}
		if rec.HRTarget == nil {
			t.Fatal("expected a HR target")
		}
		if rec.HRTarget.Low != int(190*0.80) || rec.HRTarget.High != int(190*0.90) {
			t.Errorf("expected HR band 152-171, got %d-%d", rec.HRTarget.Low, rec.HRTarget.High)
		}
	})

	t.Run("high score extends the session", func(t *testing.T) {
		rec := e.Compute(scoreWith(90, types.StatusGreen), nil)
		if rec.DurationMin != 75 {
			t.Errorf("expected 60+15 minutes at score 90, got %d", rec.DurationMin)
		}
	})

	t.Run("low score shortens the session", func(t *testing.T) {
		rec := e.Compute(scoreWith(55, types.StatusYellow), nil)
		if rec.DurationMin != 60 {
			t.Errorf("expected 75-15 minutes at score 55, got %d", rec.DurationMin)
		}
	})

	t.Run("rest day has no duration and no HR target", func(t *testing.T) {
		rec := e.Compute(scoreWith(20, types.StatusRed), nil)
		if rec.Intensity != types.IntensityRest {
			t.Fatalf("expected rest, got %s", rec.Intensity)
		}
		if rec.DurationMin != 0 {
			t.Errorf("expected 0 minutes, got %d", rec.DurationMin)
		}
		if rec.HRTarget != nil {
			t.Errorf("expected no HR target, got %+v", rec.HRTarget)
		}
	})
}

func TestPreferredType(t *testing.T) {
	date := types.Date("2026-04-30")

	t.Run("most frequent wins", func(t *testing.T) {
		recent := []types.WorkoutRecord{
			sessionOn(date.AddDays(-1), types.WorkoutRun, 40),
			sessionOn(date.AddDays(-2), types.WorkoutBike, 40),
			sessionOn(date.AddDays(-3), types.WorkoutRun, 40),
		}
		if got := preferredType(recent); got != types.WorkoutRun {
			t.Errorf("expected run, got %s", got)
		}
	})

	t.Run("no history falls back to other", func(t *testing.T) {
		if got := preferredType(nil); got != types.WorkoutOther {
			t.Errorf("expected other, got %s", got)
		}
	})
}

func TestOvertrainingOverride(t *testing.T) {
	e := New(nil)
	date := types.Date("2026-04-30")

	hardThreeDays := []types.WorkoutRecord{
		sessionOn(date.AddDays(-1), types.WorkoutRun, 80),
		sessionOn(date.AddDays(-2), types.WorkoutRun, 70),
		sessionOn(date.AddDays(-3), types.WorkoutRun, 90),
	}

	t.Run("three hard days downgrade one tier", func(t *testing.T) {
		rec := e.Compute(scoreWith(85, types.StatusGreen), hardThreeDays)
		if rec.Intensity != types.IntensityModerate {
			t.Errorf("expected downgrade hard->moderate, got %s", rec.Intensity)
		}
		if len(rec.Warnings) == 0 || !strings.Contains(rec.Warnings[0], "Overtraining") {
			t.Errorf("expected an overtraining warning, got %v", rec.Warnings)
		}
	})

	t.Run("two hard days do not fire", func(t *testing.T) {
		rec := e.Compute(scoreWith(85, types.StatusGreen), hardThreeDays[:2])
		if rec.Intensity != types.IntensityHard {
			t.Errorf("expected hard, got %s", rec.Intensity)
		}
		if len(rec.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", rec.Warnings)
		}
	})

	t.Run("light sessions on three days do not fire", func(t *testing.T) {
		light := []types.WorkoutRecord{
			sessionOn(date.AddDays(-1), types.WorkoutYoga, 20),
			sessionOn(date.AddDays(-2), types.WorkoutYoga, 25),
			sessionOn(date.AddDays(-3), types.WorkoutYoga, 30),
		}
		rec := e.Compute(scoreWith(85, types.StatusGreen), light)
		if rec.Intensity != types.IntensityHard {
			t.Errorf("expected hard, got %s", rec.Intensity)
		}
	})

	t.Run("split sessions sum per calendar day", func(t *testing.T) {
		split := []types.WorkoutRecord{
			sessionOn(date.AddDays(-1), types.WorkoutRun, 40),
			sessionOn(date.AddDays(-1), types.WorkoutBike, 40),
			sessionOn(date.AddDays(-2), types.WorkoutRun, 70),
			sessionOn(date.AddDays(-3), types.WorkoutRun, 70),
		}
		rec := e.Compute(scoreWith(85, types.StatusGreen), split)
		if rec.Intensity != types.IntensityModerate {
			t.Errorf("expected downgrade with split-session day counted, got %s", rec.Intensity)
		}
	})

	t.Run("rest cannot downgrade further but still warns", func(t *testing.T) {
		rec := e.Compute(scoreWith(20, types.StatusRed), hardThreeDays)
		if rec.Intensity != types.IntensityRest {
			t.Errorf("expected rest, got %s", rec.Intensity)
		}
		if len(rec.Warnings) == 0 {
			t.Error("expected the overtraining warning even at rest")
		}
	})
}

func TestAnomalyOverride(t *testing.T) {
	e := New(nil)
	score := scoreWith(85, types.StatusGreen)
	score.AnomalyFlag = true

	rec := e.Compute(score, nil)

	if rec.Intensity != types.IntensityRest {
		t.Errorf("anomaly must force rest regardless of score, got %s", rec.Intensity)
	}
	found := false
	for _, w := range rec.Warnings {
		if strings.Contains(w, "illness") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an illness warning, got %v", rec.Warnings)
	}
	if len(rec.Alternatives) != 0 {
		t.Errorf("no alternatives should accompany a forced rest, got %d", len(rec.Alternatives))
	}
}

func TestAlternatives(t *testing.T) {
	e := New(nil)

	t.Run("two adjacent tiers when clean", func(t *testing.T) {
		rec := e.Compute(scoreWith(65, types.StatusYellow), nil)
		if len(rec.Alternatives) != 2 {
			t.Fatalf("expected 2 alternatives, got %d", len(rec.Alternatives))
		}
		if rec.Alternatives[0].Intensity != types.IntensityEasy {
			t.Errorf("expected easy step-down, got %s", rec.Alternatives[0].Intensity)
		}
		if rec.Alternatives[1].Intensity != types.IntensityHard {
			t.Errorf("expected hard step-up, got %s", rec.Alternatives[1].Intensity)
		}
		for _, alt := range rec.Alternatives {
			if alt.Rationale == "" {
				t.Error("every alternative needs its own rationale")
			}
		}
	})

	t.Run("maximal is never suggested", func(t *testing.T) {
		rec := e.Compute(scoreWith(95, types.StatusGreen), nil)
		for _, alt := range rec.Alternatives {
			if alt.Intensity == types.IntensityMaximal {
				t.Error("maximal must never appear as an alternative")
			}
		}
	})

	t.Run("warnings withhold the step-up", func(t *testing.T) {
		date := types.Date("2026-04-30")
		hard := []types.WorkoutRecord{
			sessionOn(date.AddDays(-1), types.WorkoutRun, 80),
			sessionOn(date.AddDays(-2), types.WorkoutRun, 80),
			sessionOn(date.AddDays(-3), types.WorkoutRun, 80),
		}
		rec := e.Compute(scoreWith(85, types.StatusGreen), hard)
		for _, alt := range rec.Alternatives {
			if tierIndex(alt.Intensity) > tierIndex(rec.Intensity) {
				t.Errorf("step-up offered despite warning: %s above %s", alt.Intensity, rec.Intensity)
			}
		}
	})

	t.Run("strength becomes yoga at recovery tier", func(t *testing.T) {
		date := types.Date("2026-04-30")
		lifting := []types.WorkoutRecord{
			sessionOn(date.AddDays(-1), types.WorkoutStrength, 40),
			sessionOn(date.AddDays(-2), types.WorkoutStrength, 40),
		}
		// Deep red rests; the step-up alternative lands on the recovery tier.
		rec := e.Compute(scoreWith(20, types.StatusRed), lifting)
		if rec.Intensity != types.IntensityRest {
			t.Fatalf("expected rest, got %s", rec.Intensity)
		}
		if len(rec.Alternatives) != 1 || rec.Alternatives[0].Intensity != types.IntensityRecovery {
			t.Fatalf("expected a single recovery alternative, got %+v", rec.Alternatives)
		}
		if rec.Alternatives[0].Type != types.WorkoutYoga {
			t.Errorf("expected strength swapped for yoga at recovery tier, got %s", rec.Alternatives[0].Type)
		}
	})
}

func TestRationaleContainsConcreteNumbers(t *testing.T) {
	e := New(nil)

	t.Run("score appears", func(t *testing.T) {
		rec := e.Compute(scoreWith(82, types.StatusGreen), nil)
		if !strings.Contains(rec.Rationale, "82/100") {
			t.Errorf("rationale should cite the score: %q", rec.Rationale)
		}
	})

	t.Run("acwr penalty appears", func(t *testing.T) {
		score := scoreWith(65, types.StatusYellow)
		score.ACWR = types.ACWR{Ratio: f(1.62), AdjustmentFactor: 0.8}
		rec := e.Compute(score, nil)
		if !strings.Contains(rec.Rationale, "1.62") {
			t.Errorf("rationale should cite the ratio: %q", rec.Rationale)
		}
		if !strings.Contains(rec.Rationale, "20%") {
			t.Errorf("rationale should cite the penalty: %q", rec.Rationale)
		}
	})

	t.Run("low component explanation appears", func(t *testing.T) {
		score := scoreWith(45, types.StatusRed)
		score.Components.HRV = &types.ComponentScore{
			Score:       12,
			Explanation: "HRV 50ms is 15.3% below the 7-day average of 59.0ms",
		}
		rec := e.Compute(score, nil)
		if !strings.Contains(rec.Rationale, "15.3%") {
			t.Errorf("rationale should surface the component deviation: %q", rec.Rationale)
		}
	})

	t.Run("warning appears", func(t *testing.T) {
		score := scoreWith(85, types.StatusGreen)
		score.AnomalyFlag = true
		rec := e.Compute(score, nil)
		if !strings.Contains(rec.Rationale, "illness") {
			t.Errorf("rationale should carry the warning: %q", rec.Rationale)
		}
	})
}

func TestRecommendationIDDeterministic(t *testing.T) {
	a := RecommendationID("u1", "2026-04-30")
	if a != RecommendationID("u1", "2026-04-30") {
		t.Error("same key must give same ID")
	}
	if a == RecommendationID("u1", "2026-05-01") {
		t.Error("different dates must give different IDs")
	}
}

func TestComputeNeverFails(t *testing.T) {
	e := New(nil)
	// Zero-value score: red band, score 0, no components, no history.
	rec := e.Compute(types.RecoveryScore{Status: types.StatusRed}, nil)
	if rec.Intensity != types.IntensityRest {
		t.Errorf("worst case should land on rest, got %s", rec.Intensity)
	}
	if rec.Rationale == "" {
		t.Error("rationale must always be produced")
	}
}
