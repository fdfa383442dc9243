package realtime

import (
	"context"

	"github.com/MKhiriev/veepo/models"
)

// Broker moves change events between publishers and subscribers.
type Broker interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
	// Subscribe opens a subscription to topic. Events stop flowing once the
	// subscription is closed or ctx is cancelled.
	Subscribe(ctx context.Context, topic models.Topic) (Subscription, error)
}

// Subscription is an open broker subscription.
type Subscription interface {
	Events() <-chan models.ChangeEvent
	Close() error
}

// Publisher is the write side used by services.
type Publisher interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
}
