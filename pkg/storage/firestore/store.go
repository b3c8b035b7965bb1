// Package firestore persists daily metrics and workouts under per-user
// sub-collections and serves the rolling-window range reads the engine needs.
package firestore

import (
	"context"

	"github.com/ripixel/readiness/pkg/types"
)

// Store adapts the typed client to the engine's read interface.
type Store struct {
	client *Client
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

func (s *Store) ListDailyMetrics(ctx context.Context, userID string, from, to types.Date) ([]types.DailyMetrics, error) {
	docs, err := s.client.DailyMetrics(userID).Range(ctx, "date", string(from), string(to))
	if err != nil {
		return nil, err
	}
	out := make([]types.DailyMetrics, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d)
	}
	return out, nil
}

func (s *Store) ListWorkouts(ctx context.Context, userID string, from, to types.Date) ([]types.WorkoutRecord, error) {
	docs, err := s.client.Workouts(userID).Range(ctx, "date", string(from), string(to))
	if err != nil {
		return nil, err
	}
	out := make([]types.WorkoutRecord, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d)
	}
	return out, nil
}
