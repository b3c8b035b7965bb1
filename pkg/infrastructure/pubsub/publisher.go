package pubsub

import (
	"context"
	"log/slog"

	"cloud.google.com/go/pubsub"
	"github.com/cloudevents/sdk-go/v2/event"
)

// PubSubAdapter publishes CloudEvents over Google Cloud Pub/Sub.
type PubSubAdapter struct {
	Client *pubsub.Client
}

func (a *PubSubAdapter) PublishCloudEvent(ctx context.Context, topicID string, e event.Event) (string, error) {
	data, err := e.MarshalJSON()
	if err != nil {
		return "", err
	}
	topic := a.Client.Topic(topicID)
	res := topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"ce-type":   e.Type(),
			"ce-source": e.Source(),
		},
	})
	return res.Get(ctx)
}

// LogPublisher is a mock publisher for local development: events go to the
// log instead of the bus.
type LogPublisher struct{}

func (p *LogPublisher) PublishCloudEvent(ctx context.Context, topicID string, e event.Event) (string, error) {
	slog.Info("[LogPublisher] MOCK PUBLISH", "topic", topicID, "type", e.Type(), "source", e.Source())
	return "mock-msg-id", nil
}
