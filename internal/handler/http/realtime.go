package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

const defaultKeepAlive = 15 * time.Second

// stream serves the change events of one entity of the authenticated user as
// server-sent events. Each event is a single "data:" line holding the JSON
// encoded [models.ChangeEvent]. Comment lines are sent as keep-alives.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	entity := models.Entity(chi.URLParam(r, "entity"))
	if !entity.Valid() {
		utils.WriteError(w, fmt.Sprintf("unknown entity %q", entity), http.StatusNotFound)
		return
	}

	topic := models.Topic{Entity: entity, UserID: requestUserID(r)}

	listener, err := h.hub.Subscribe(ctx, topic)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, realtime.ErrHubClosed) {
			status = http.StatusServiceUnavailable
		}
		log.Err(err).Str("func", "Handler.stream").Str("topic", topic.String()).Send()
		utils.WriteError(w, http.StatusText(status), status)
		return
	}
	defer listener.Close()

	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err = rc.Flush(); err != nil {
		log.Err(fmt.Errorf("%w: %w", ErrStreamingUnsupported, err)).Str("func", "Handler.stream").Send()
		return
	}

	log.Debug().Str("topic", topic.String()).Msg("realtime stream opened")

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			if _, err = fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case event, ok := <-listener.Events():
			if !ok {
				log.Debug().Str("topic", topic.String()).Msg("realtime topic closed")
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				log.Err(err).Str("func", "Handler.stream").Msg("failed to encode change event")
				continue
			}
			if _, err = fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
		}
		if err = rc.Flush(); err != nil {
			return
		}
	}
}
