package mocks

import (
	"context"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/ripixel/readiness/pkg/types"
)

// --- Mock Store ---
type MockStore struct {
	ListDailyMetricsFunc func(ctx context.Context, userID string, from, to types.Date) ([]types.DailyMetrics, error)
	ListWorkoutsFunc     func(ctx context.Context, userID string, from, to types.Date) ([]types.WorkoutRecord, error)
}

func (m *MockStore) ListDailyMetrics(ctx context.Context, userID string, from, to types.Date) ([]types.DailyMetrics, error) {
	if m.ListDailyMetricsFunc != nil {
		return m.ListDailyMetricsFunc(ctx, userID, from, to)
	}
	return nil, nil
}

func (m *MockStore) ListWorkouts(ctx context.Context, userID string, from, to types.Date) ([]types.WorkoutRecord, error) {
	if m.ListWorkoutsFunc != nil {
		return m.ListWorkoutsFunc(ctx, userID, from, to)
	}
	return nil, nil
}

// --- Mock Publisher ---
type MockPublisher struct {
	PublishCloudEventFunc func(ctx context.Context, topic string, e event.Event) (string, error)
	Published             []event.Event
	Topics                []string
}

func (m *MockPublisher) PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error) {
	m.Published = append(m.Published, e)
	m.Topics = append(m.Topics, topic)
	if m.PublishCloudEventFunc != nil {
		return m.PublishCloudEventFunc(ctx, topic, e)
	}
	return "msg-id", nil
}
