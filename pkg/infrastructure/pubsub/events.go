package pubsub

import (
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/ripixel/readiness/pkg/types"
)

// Topics and CloudEvent metadata for the engine's bus traffic.
const (
	TopicScoreComputed   = "readiness-score-computed"
	TopicDataInvalidated = "readiness-data-invalidated"

	SubscriptionDataInvalidated = "readiness-data-invalidated-engine"

	EventTypeScoreComputed   = "com.ripixel.readiness.score.computed"
	EventTypeDataInvalidated = "com.ripixel.readiness.data.invalidated"

	EventSourceEngine = "//readiness/engine"
)

// ScoreComputedEvent announces a freshly computed score so downstream
// consumers can react without polling.
type ScoreComputedEvent struct {
	UserID     string               `json:"user_id"`
	Date       types.Date           `json:"date"`
	TotalScore int                  `json:"total_score"`
	Status     types.RecoveryStatus `json:"status"`
	Anomaly    bool                 `json:"anomaly_flag"`
}

// DataInvalidatedEvent arrives on the bus whenever new metrics or workouts
// were written for a user+date; the cache drops the affected key range.
type DataInvalidatedEvent struct {
	UserID string     `json:"user_id"`
	Date   types.Date `json:"date"`
}

// NewCloudEvent creates a standardized CloudEvent v1.0
func NewCloudEvent(source, eventType string, data interface{}) (cloudevents.Event, error) {
	e := cloudevents.NewEvent()
	e.SetSpecVersion("1.0")
	e.SetType(eventType)
	e.SetSource(source)

	if err := e.SetData(cloudevents.ApplicationJSON, data); err != nil {
		return e, err
	}

	return e, nil
}
