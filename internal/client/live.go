package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// feedList copies every successful fetch of res into list.
func feedList[T resource.Keyed, D any](res *resource.Resource[D], list *resource.LiveList[T], items func(D) []T) func() {
	return res.Subscribe(func(state resource.State[D]) {
		if state.Loading || state.Err != "" {
			return
		}
		list.Replace(items(state.Data))
	})
}

// watch applies the realtime changes of entity for the signed-in user to
// list until ctx is done. Views watching the same entity share one stream
// through the hub.
func watch[T resource.Keyed](ctx context.Context, hub *realtime.Hub, sessions resource.SessionSource, entity models.Entity, list *resource.LiveList[T]) error {
	s, ok := sessions.Current()
	if !ok {
		return ErrNotSignedIn
	}

	l, err := hub.Subscribe(ctx, models.Topic{Entity: entity, UserID: s.User.ID})
	if err != nil {
		return fmt.Errorf("watch %s: %w", entity, err)
	}

	go list.Bind(ctx, l.Events())
	return nil
}

func itself[T any](items []T) []T { return items }

var _ resource.SessionSource = (*session.Store)(nil)
