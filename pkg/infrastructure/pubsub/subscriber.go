package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"cloud.google.com/go/pubsub"
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/ripixel/readiness/pkg/types"
)

// Invalidator is the slice of the cache the bus consumer needs.
type Invalidator interface {
	InvalidateFrom(userID string, date types.Date) int
}

// InvalidationSubscriber consumes DataInvalidated events from the bus and
// drops the affected cache key range. Malformed messages are acked and
// logged: redelivering garbage would never succeed.
type InvalidationSubscriber struct {
	Sub    *pubsub.Subscription
	Cache  Invalidator
	Logger *slog.Logger
}

// Run blocks receiving until ctx is cancelled.
func (s *InvalidationSubscriber) Run(ctx context.Context) error {
	return s.Sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		defer msg.Ack()

		var e cloudevents.Event
		if err := json.Unmarshal(msg.Data, &e); err != nil {
			s.Logger.Warn("invalidation message is not a CloudEvent", "error", err)
			return
		}

		var payload DataInvalidatedEvent
		if err := e.DataAs(&payload); err != nil || payload.UserID == "" {
			s.Logger.Warn("invalidation event has no usable payload", "error", err, "event_id", e.ID())
			return
		}

		date, err := types.ParseDate(string(payload.Date))
		if err != nil {
			s.Logger.Warn("invalidation event carries a bad date", "date", payload.Date, "error", err)
			return
		}

		removed := s.Cache.InvalidateFrom(payload.UserID, date)
		s.Logger.Debug("cache invalidated from bus",
			"user_id", payload.UserID,
			"date", date,
			"entries_removed", removed,
		)
	})
}
