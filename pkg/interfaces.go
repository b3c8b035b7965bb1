package shared

import (
	"context"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/ripixel/readiness/pkg/types"
)

// --- Persistence Interfaces ---

// MetricsStore supplies the ordered daily metrics and workout history the
// engine consumes. Both range queries are inclusive and must return records
// sorted by date ascending, with explicit nils for absent metric fields.
type MetricsStore interface {
	ListDailyMetrics(ctx context.Context, userID string, from, to types.Date) ([]types.DailyMetrics, error)
	ListWorkouts(ctx context.Context, userID string, from, to types.Date) ([]types.WorkoutRecord, error)
}

// --- Messaging Interfaces ---

type Publisher interface {
	PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error)
}
