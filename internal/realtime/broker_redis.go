package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// RedisBroker fans events out across server instances with Redis pub/sub.
// Each topic maps to the channel named by [models.Topic.String].
type RedisBroker struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisBroker returns a broker publishing through client.
func NewRedisBroker(client *redis.Client, log *logger.Logger) *RedisBroker {
	return &RedisBroker{client: client, logger: log}
}

func (b *RedisBroker) Publish(ctx context.Context, event models.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	if err = b.client.Publish(ctx, event.Topic().String(), payload).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "RedisBroker.Publish").Str("topic", event.Topic().String()).Msg("failed to publish event")
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe waits for Redis to confirm the subscription before returning, so
// events published right after Subscribe returns are not lost.
func (b *RedisBroker) Subscribe(ctx context.Context, topic models.Topic) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, topic.String())
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", topic, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &redisSubscription{
		pubsub: pubsub,
		cancel: cancel,
		events: make(chan models.ChangeEvent, subscriptionBuffer),
	}

	go sub.pump(ctx, b.logger)

	return sub, nil
}

type redisSubscription struct {
	pubsub *redis.PubSub
	cancel context.CancelFunc
	events chan models.ChangeEvent
	once   sync.Once
}

func (s *redisSubscription) pump(ctx context.Context, log *logger.Logger) {
	defer close(s.events)

	messages := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Err(err).Str("func", "redisSubscription.pump").Str("channel", msg.Channel).Msg("malformed change event")
				continue
			}

			select {
			case s.events <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *redisSubscription) Events() <-chan models.ChangeEvent {
	return s.events
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		s.cancel()
		err = s.pubsub.Close()
	})
	return err
}
