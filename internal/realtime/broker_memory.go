package realtime

import (
	"context"
	"sync"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

const subscriptionBuffer = 64

// MemoryBroker delivers events within a single process.
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[models.Topic]map[*memorySubscription]struct{}
	logger *logger.Logger
}

// NewMemoryBroker returns an empty in-process broker.
func NewMemoryBroker(log *logger.Logger) *MemoryBroker {
	return &MemoryBroker{
		topics: make(map[models.Topic]map[*memorySubscription]struct{}),
		logger: log,
	}
}

// Publish hands event to every subscription of its topic. A subscriber
// whose buffer is full misses the event instead of blocking the publisher.
func (b *MemoryBroker) Publish(_ context.Context, event models.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.topics[event.Topic()] {
		select {
		case sub.events <- event:
		default:
			b.logger.Warn().Str("func", "MemoryBroker.Publish").Str("topic", event.Topic().String()).Msg("subscriber is slow, event dropped")
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, topic models.Topic) (Subscription, error) {
	sub := &memorySubscription{
		broker: b,
		topic:  topic,
		events: make(chan models.ChangeEvent, subscriptionBuffer),
	}

	b.mu.Lock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[*memorySubscription]struct{})
	}
	b.topics[topic][sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = sub.Close()
	}()

	return sub, nil
}

func (b *MemoryBroker) remove(sub *memorySubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.topics[sub.topic]
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.topics, sub.topic)
	}
	close(sub.events)
}

type memorySubscription struct {
	broker *MemoryBroker
	topic  models.Topic
	events chan models.ChangeEvent
	once   sync.Once
}

func (s *memorySubscription) Events() <-chan models.ChangeEvent {
	return s.events
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() { s.broker.remove(s) })
	return nil
}
