package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

const (
	streamBuffer  = 64
	maxEventBytes = 1 << 20
)

// StreamBroker is a receive-only [realtime.Broker] reading the server's
// Server-Sent Events stream. Put a [realtime.Hub] in front of it so views
// watching the same topic share one connection.
type StreamBroker struct {
	client *utils.HTTPClient
	token  func() string
	logger *logger.Logger
}

// NewStreamBroker returns a broker streaming from cfg.HTTPAddress. token is
// read on every Subscribe so a refreshed session is picked up. Streams have
// no request timeout; they end with their context.
func NewStreamBroker(cfg config.ClientAdapter, token func() string, log *logger.Logger) *StreamBroker {
	client := utils.NewHTTPClient(cfg.HTTPAddress, 0)
	client.SetHeader("Accept", "text/event-stream")

	return &StreamBroker{client: client, token: token, logger: log}
}

// Publish always fails: clients change data through the API, not the stream.
func (b *StreamBroker) Publish(context.Context, models.ChangeEvent) error {
	return realtime.ErrPublishUnsupported
}

// Subscribe opens GET /api/realtime/{entity}. The server scopes the stream to
// the user of the bearer token, so topic.UserID is only stamped on events.
func (b *StreamBroker) Subscribe(ctx context.Context, topic models.Topic) (realtime.Subscription, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	req := b.client.R().
		SetContext(streamCtx).
		SetDoNotParseResponse(true)
	if token := b.token(); token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Get("/api/realtime/" + url.PathEscape(string(topic.Entity)))
	if err != nil {
		cancel()
		return nil, requestError("realtime stream request", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		_ = body.Close()
		cancel()
		return nil, mapHTTPError(resp)
	}

	sub := &streamSubscription{
		topic:  topic,
		events: make(chan models.ChangeEvent, streamBuffer),
		cancel: cancel,
		done:   streamCtx.Done(),
		logger: b.logger,
	}
	go sub.pump(body)

	return sub, nil
}

type streamSubscription struct {
	topic  models.Topic
	events chan models.ChangeEvent
	cancel context.CancelFunc
	done   <-chan struct{}
	once   sync.Once
	logger *logger.Logger
}

func (s *streamSubscription) Events() <-chan models.ChangeEvent {
	return s.events
}

func (s *streamSubscription) Close() error {
	s.once.Do(s.cancel)
	return nil
}

// pump parses the event stream until the body ends. Only data lines are
// used; comments act as keep-alives.
func (s *streamSubscription) pump(body io.ReadCloser) {
	defer close(s.events)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventBytes)

	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data.Len() > 0 && !s.dispatch(data.String()) {
				return
			}
			data.Reset()
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := scanner.Err(); err != nil {
		select {
		case <-s.done:
		default:
			s.logger.Err(err).Str("func", "streamSubscription.pump").
				Str("topic", s.topic.String()).Msg("realtime stream interrupted")
		}
	}
}

func (s *streamSubscription) dispatch(payload string) bool {
	var event models.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.Warn().Err(err).Str("topic", s.topic.String()).Msg("skipping malformed realtime event")
		return true
	}
	if event.Entity == "" {
		event.Entity = s.topic.Entity
	}
	event.UserID = s.topic.UserID

	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	}
}
