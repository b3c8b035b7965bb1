package firestore

import (
	"cloud.google.com/go/firestore"

	"github.com/ripixel/readiness/pkg/types"
)

type Client struct {
	fs *firestore.Client
}

func NewClient(client *firestore.Client) *Client {
	return &Client{fs: client}
}

func (c *Client) Close() error {
	return c.fs.Close()
}

// DailyMetrics are sub-collections of Users: users/{uid}/daily_metrics/{date}
// The document ID is the ISO date, so a day's metrics upsert in place.
func (c *Client) DailyMetrics(userID string) *Collection[types.DailyMetrics] {
	return &Collection[types.DailyMetrics]{
		Ref:           c.fs.Collection("users").Doc(userID).Collection("daily_metrics"),
		ToFirestore:   MetricsToFirestore,
		FromFirestore: FirestoreToMetrics,
	}
}

// Workouts are sub-collections of Users: users/{uid}/workouts/{id}
func (c *Client) Workouts(userID string) *Collection[types.WorkoutRecord] {
	return &Collection[types.WorkoutRecord]{
		Ref:           c.fs.Collection("users").Doc(userID).Collection("workouts"),
		ToFirestore:   WorkoutToFirestore,
		FromFirestore: FirestoreToWorkout,
	}
}
