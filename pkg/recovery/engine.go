package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	shared "github.com/ripixel/readiness/pkg"
	"github.com/ripixel/readiness/pkg/recovery/scorers"
	"github.com/ripixel/readiness/pkg/types"
)

// Engine computes readiness scores from a user's metric and workout history.
// All scoring is pure; the only I/O is the injected store reads.
type Engine struct {
	Store  shared.MetricsStore
	Logger *slog.Logger

	// Now is injectable so tests can pin ComputedAt.
	Now func() time.Time
}

func New(store shared.MetricsStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		Store:  store,
		Logger: logger,
		Now:    time.Now,
	}
}

// ScoreID is deterministic over the idempotency key (user, date), so
// recomputing a score for unchanged inputs reproduces the same record ID.
func ScoreID(userID string, date types.Date) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("score/%s/%s", userID, date))).String()
}

// ComputeRecoveryScore runs the full pipeline for one (user, date): load the
// trailing 28-day history, derive the rolling baseline, score the four
// components in parallel, apply the ACWR adjustment, and aggregate.
//
// Fails with InsufficientHistoryError when fewer than MinHistoryDays distinct
// metric dates precede the target date; that error is a terminal answer for
// this date, never retried here.
func (e *Engine) ComputeRecoveryScore(ctx context.Context, userID string, date types.Date) (*types.RecoveryScore, error) {
	from := date.AddDays(-ChronicWindowDays)

	metrics, err := e.Store.ListDailyMetrics(ctx, userID, from, date)
	if err != nil {
		return nil, fmt.Errorf("list daily metrics: %w", err)
	}
	workouts, err := e.Store.ListWorkouts(ctx, userID, from, date)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	for _, m := range metrics {
		if err := ValidateMetrics(m); err != nil {
			return nil, err
		}
	}
	for _, w := range workouts {
		if err := ValidateWorkout(w); err != nil {
			return nil, err
		}
	}

	if days := CountMetricDays(metrics, date); days < MinHistoryDays {
		return nil, &InsufficientHistoryError{
			UserID:        userID,
			Date:          date,
			DaysAvailable: days,
			DaysRequired:  MinHistoryDays,
		}
	}

	today := todayMetrics(metrics, userID, date)
	baseline := ComputeBaseline(metrics, workouts, date)

	// Scorers are pure and share no state; run them concurrently into fixed
	// slots.
	all := scorers.All()
	results := make([]scorers.Result, len(all))
	input := scorers.Input{Metrics: today, Baseline: baseline}

	var wg sync.WaitGroup
	for i, s := range all {
		wg.Add(1)
		go func(i int, s scorers.Scorer) {
			defer wg.Done()
			results[i] = s.Score(input)
		}(i, s)
	}
	wg.Wait()

	components := make([]weightedComponent, len(all))
	var breakdown types.ComponentScores
	for i, s := range all {
		components[i] = weightedComponent{weight: s.Weight(), score: results[i].Score}
		if results[i].Score != nil {
			cs := &types.ComponentScore{Score: *results[i].Score, Explanation: results[i].Explanation}
			switch s.Name() {
			case "hrv":
				breakdown.HRV = cs
			case "hr":
				breakdown.HR = cs
			case "sleep":
				breakdown.Sleep = cs
			case "stress":
				breakdown.Stress = cs
			}
		}
	}

	acwr := ComputeACWR(baseline)
	total, present := aggregate(components, acwr)
	if present < MinScoreableComponents {
		return nil, &InsufficientMetricsError{Date: date, Available: present, Required: MinScoreableComponents}
	}

	score := &types.RecoveryScore{
		ID:          ScoreID(userID, date),
		UserID:      userID,
		Date:        date,
		TotalScore:  total,
		Status:      StatusForScore(total),
		Components:  breakdown,
		ACWR:        acwr,
		AnomalyFlag: detectAnomaly(today, baseline),
		ComputedAt:  e.Now().UTC(),
	}

	e.Logger.Debug("recovery score computed",
		"user_id", userID,
		"date", date,
		"total_score", score.TotalScore,
		"status", score.Status,
		"anomaly", score.AnomalyFlag,
		"components_present", present,
	)

	return score, nil
}

// RecentWorkouts returns the user's workouts in the trailing window ending
// the day before date, newest last. The recommendation engine consumes this
// for type frequency and the overtraining rule.
func (e *Engine) RecentWorkouts(ctx context.Context, userID string, date types.Date, days int) ([]types.WorkoutRecord, error) {
	return e.Store.ListWorkouts(ctx, userID, date.AddDays(-days), date.AddDays(-1))
}

func todayMetrics(metrics []types.DailyMetrics, userID string, date types.Date) types.DailyMetrics {
	for _, m := range metrics {
		if m.Date == date {
			return m
		}
	}
	// No record for today: every field nil, scorers degrade per their rules.
	return types.DailyMetrics{UserID: userID, Date: date}
}
