package cache

import (
	"context"
	"log/slog"
	"time"

	shared "github.com/ripixel/readiness/pkg"
	"github.com/ripixel/readiness/pkg/infrastructure/pubsub"
	"github.com/ripixel/readiness/pkg/recommendation"
	"github.com/ripixel/readiness/pkg/recovery"
	"github.com/ripixel/readiness/pkg/types"
)

// recommendationLookbackDays is how far back the recommender looks when
// picking a preferred workout type and checking for consecutive hard days.
const recommendationLookbackDays = 7

// Service binds the two engines behind the cache and publishes score events.
// All read paths go through the cache; the engines only run on a miss.
type Service struct {
	Recovery       *recovery.Engine
	Recommendation *recommendation.Engine
	Pub            shared.Publisher
	Logger         *slog.Logger

	cache *Cache
}

func NewService(rec *recovery.Engine, wrk *recommendation.Engine, pub shared.Publisher, logger *slog.Logger, ttl time.Duration, maxEntries int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		Recovery:       rec,
		Recommendation: wrk,
		Pub:            pub,
		Logger:         logger,
	}
	s.cache = New(s.computeFresh, ttl, maxEntries)
	return s
}

// Get returns the score and recommendation for (user, date), from cache
// when possible.
func (s *Service) Get(ctx context.Context, userID string, date types.Date) (*Result, error) {
	return s.cache.Get(ctx, userID, date)
}

// Recalculate forces a fresh computation, replacing any cached entry.
func (s *Service) Recalculate(ctx context.Context, userID string, date types.Date) (*Result, error) {
	return s.cache.Recalculate(ctx, userID, date)
}

// InvalidateFrom drops every cached entry whose rolling windows could read
// the changed date.
func (s *Service) InvalidateFrom(userID string, date types.Date) int {
	return s.cache.InvalidateFrom(userID, date)
}

func (s *Service) computeFresh(ctx context.Context, userID string, date types.Date) (*Result, error) {
	score, err := s.Recovery.ComputeRecoveryScore(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	recent, err := s.Recovery.RecentWorkouts(ctx, userID, date, recommendationLookbackDays)
	if err != nil {
		return nil, err
	}

	rec := s.Recommendation.Compute(*score, recent)
	result := &Result{Score: *score, Recommendation: rec}

	s.publishScoreComputed(ctx, result)
	return result, nil
}

func (s *Service) publishScoreComputed(ctx context.Context, r *Result) {
	if s.Pub == nil {
		return
	}

	e, err := pubsub.NewCloudEvent(pubsub.EventSourceEngine, pubsub.EventTypeScoreComputed, pubsub.ScoreComputedEvent{
		UserID:     r.Score.UserID,
		Date:       r.Score.Date,
		TotalScore: r.Score.TotalScore,
		Status:     r.Score.Status,
		Anomaly:    r.Score.AnomalyFlag,
	})
	if err != nil {
		s.Logger.Error("failed to build score event", "error", err)
		return
	}

	// Publishing is best effort; the caller already has the result.
	if _, err := s.Pub.PublishCloudEvent(ctx, pubsub.TopicScoreComputed, e); err != nil {
		s.Logger.Error("failed to publish score event", "error", err, "user_id", r.Score.UserID)
	}
}
