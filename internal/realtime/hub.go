package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// Hub is a reference-counted registry of topic subscriptions. However many
// listeners a topic has, the hub holds one broker subscription for it. The
// broker subscription is opened by the first listener and closed with the
// last.
type Hub struct {
	broker Broker
	logger *logger.Logger

	mu     sync.Mutex
	topics map[models.Topic]*topicEntry
	closed bool
}

type topicEntry struct {
	topic     models.Topic
	sub       Subscription
	cancel    context.CancelFunc
	listeners map[*Listener]struct{}
}

// NewHub returns a hub subscribing through broker.
func NewHub(broker Broker, log *logger.Logger) *Hub {
	return &Hub{
		broker: broker,
		logger: log,
		topics: make(map[models.Topic]*topicEntry),
	}
}

// Publish forwards event to the broker.
func (h *Hub) Publish(ctx context.Context, event models.ChangeEvent) error {
	return h.broker.Publish(ctx, event)
}

// PublishChange builds a change event for record and publishes it. Failures
// are logged and otherwise ignored: a missed event never fails the write
// that caused it.
func (h *Hub) PublishChange(ctx context.Context, entity models.Entity, changeType models.ChangeType, userID string, record any) {
	event, err := models.NewChangeEvent(entity, changeType, userID, record)
	if err == nil {
		err = h.Publish(ctx, event)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Hub.PublishChange").
			Str("entity", string(entity)).Str("type", string(changeType)).Msg("failed to publish change")
	}
}

// Subscribe registers a listener on topic. The listener is closed when ctx
// is cancelled, when Close is called, or when the broker ends the topic.
func (h *Hub) Subscribe(ctx context.Context, topic models.Topic) (*Listener, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	entry, ok := h.topics[topic]
	if !ok {
		subCtx, cancel := context.WithCancel(context.Background())
		sub, err := h.broker.Subscribe(subCtx, topic)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("subscribe %s: %w", topic, err)
		}

		entry = &topicEntry{
			topic:     topic,
			sub:       sub,
			cancel:    cancel,
			listeners: make(map[*Listener]struct{}),
		}
		h.topics[topic] = entry
		go h.fanOut(entry)

		h.logger.Debug().Str("topic", topic.String()).Msg("topic opened")
	}

	l := &Listener{
		hub:    h,
		entry:  entry,
		events: make(chan models.ChangeEvent, subscriptionBuffer),
		done:   make(chan struct{}),
	}
	entry.listeners[l] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-l.done:
		}
	}()

	return l, nil
}

func (h *Hub) fanOut(entry *topicEntry) {
	for event := range entry.sub.Events() {
		h.mu.Lock()
		for l := range entry.listeners {
			select {
			case l.events <- event:
			default:
				h.logger.Warn().Str("topic", entry.topic.String()).Msg("listener is slow, event dropped")
			}
		}
		h.mu.Unlock()
	}

	// the broker ended the subscription
	h.mu.Lock()
	defer h.mu.Unlock()
	for l := range entry.listeners {
		l.closeLocked()
	}
	if h.topics[entry.topic] == entry {
		delete(h.topics, entry.topic)
		entry.cancel()
	}
}

// release drops l from its topic and closes the topic with its last listener.
// Callers hold h.mu.
func (h *Hub) release(l *Listener) {
	entry := l.entry
	if _, ok := entry.listeners[l]; !ok {
		return
	}
	l.closeLocked()

	if len(entry.listeners) > 0 {
		return
	}
	if h.topics[entry.topic] == entry {
		delete(h.topics, entry.topic)
	}
	entry.cancel()
	if err := entry.sub.Close(); err != nil {
		h.logger.Err(err).Str("topic", entry.topic.String()).Msg("failed to close subscription")
	}
	h.logger.Debug().Str("topic", entry.topic.String()).Msg("topic closed")
}

// Close ends every topic and rejects further subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, entry := range h.topics {
		for l := range entry.listeners {
			h.release(l)
		}
	}
}

// TopicCount returns the number of open broker subscriptions.
func (h *Hub) TopicCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics)
}

// ListenerCount returns the number of listeners on topic.
func (h *Hub) ListenerCount(topic models.Topic) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if entry, ok := h.topics[topic]; ok {
		return len(entry.listeners)
	}
	return 0
}

// Listener receives the events of one topic.
type Listener struct {
	hub    *Hub
	entry  *topicEntry
	events chan models.ChangeEvent
	done   chan struct{}
	closed bool
}

// Events is closed when the listener is closed.
func (l *Listener) Events() <-chan models.ChangeEvent {
	return l.events
}

// Topic returns the subscribed topic.
func (l *Listener) Topic() models.Topic {
	return l.entry.topic
}

// Close detaches the listener. It is safe to call more than once.
func (l *Listener) Close() {
	l.hub.mu.Lock()
	defer l.hub.mu.Unlock()
	l.hub.release(l)
}

func (l *Listener) closeLocked() {
	if l.closed {
		return
	}
	l.closed = true
	delete(l.entry.listeners, l)
	close(l.events)
	close(l.done)
}
