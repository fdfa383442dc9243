package resource

import (
	"context"
	"sync"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/session"
)

// State is what views render. Data keeps the last successful payload while a
// later fetch is loading or after it failed.
type State[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// FetchFunc loads the payload for the given session. ctx is cancelled when
// the fetch is superseded or the resource is closed.
type FetchFunc[T any] func(ctx context.Context, s session.Snapshot) (T, error)

// SessionSource yields the signed-in session.
type SessionSource interface {
	Current() (session.Snapshot, bool)
}

// Resource runs fetches and publishes their outcome.
//
// Every fetch is stamped with a generation. Only the result of the latest
// generation is applied; older results and results arriving after Close are
// dropped, so a slow answer for a previous query never overwrites a newer
// one.
type Resource[T any] struct {
	name     string
	fetch    FetchFunc[T]
	sessions SessionSource

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	state      State[T]
	generation uint64
	inflight   context.CancelFunc
	loaded     bool
	closed     bool
	wg         sync.WaitGroup

	subsMu sync.Mutex
	subs   map[uint64]func(State[T])
	nextID uint64

	notifyMu sync.Mutex

	logger *logger.Logger
}

// New returns an idle resource; nothing is fetched until Refetch. Fetches
// live no longer than ctx.
func New[T any](ctx context.Context, name string, sessions SessionSource, fetch FetchFunc[T], log *logger.Logger) *Resource[T] {
	ctx, cancel := context.WithCancel(ctx)
	return &Resource[T]{
		name:     name,
		fetch:    fetch,
		sessions: sessions,
		ctx:      ctx,
		cancel:   cancel,
		subs:     make(map[uint64]func(State[T])),
		logger:   log,
	}
}

// State returns the current snapshot.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Seed shows data before the first fetch completes, for example a cached
// snapshot. It is ignored once a fetch succeeded.
func (r *Resource[T]) Seed(data T) {
	r.mu.Lock()
	if r.closed || r.loaded {
		r.mu.Unlock()
		return
	}
	r.state.Data = data
	r.publishLocked()
}

// Refetch starts a new fetch and supersedes the one in flight. Without a
// session the state is reset: Data is zero, nothing is loading and there is
// no error.
func (r *Resource[T]) Refetch() {
	snapshot, ok := r.sessions.Current()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}

	r.generation++
	generation := r.generation
	if r.inflight != nil {
		r.inflight()
		r.inflight = nil
	}

	if !ok {
		r.loaded = false
		r.state = State[T]{}
		r.publishLocked()
		return
	}

	fetchCtx, cancel := context.WithCancel(r.ctx)
	r.inflight = cancel
	r.state.Loading = true
	r.wg.Add(1)
	go r.run(fetchCtx, cancel, generation, snapshot)
	r.publishLocked()
}

func (r *Resource[T]) run(ctx context.Context, cancel context.CancelFunc, generation uint64, snapshot session.Snapshot) {
	defer r.wg.Done()
	defer cancel()

	data, err := r.fetch(ctx, snapshot)

	r.mu.Lock()
	if r.closed || generation != r.generation {
		r.mu.Unlock()
		return
	}

	r.inflight = nil
	r.state.Loading = false
	if err != nil {
		r.logger.Err(err).Str("func", "Resource.run").Str("resource", r.name).Msg("fetch failed")
		r.state.Err = err.Error()
	} else {
		r.state.Data = data
		r.state.Err = ""
		r.loaded = true
	}
	r.publishLocked()
}

// Mutate applies fn to Data in place of a fetch; used for local optimistic
// changes and realtime merges. fn must return a new value rather than modify
// the one it receives.
func (r *Resource[T]) Mutate(fn func(T) T) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.state.Data = fn(r.state.Data)
	r.publishLocked()
}

// Subscribe registers fn for every later state change. Subscribers run
// synchronously in change order and must not call back into the resource.
func (r *Resource[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	r.subsMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.subsMu.Lock()
			delete(r.subs, id)
			r.subsMu.Unlock()
		})
	}
}

// Close cancels the fetch in flight and waits for it to return. Results that
// arrive afterwards are dropped.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}

// Wait blocks until no fetch is in flight.
func (r *Resource[T]) Wait() {
	r.wg.Wait()
}

// publishLocked must be called with mu held; it releases mu before the
// subscribers run.
func (r *Resource[T]) publishLocked() {
	state := r.state

	r.notifyMu.Lock()
	r.mu.Unlock()
	defer r.notifyMu.Unlock()

	r.subsMu.Lock()
	subs := make([]func(State[T]), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.subsMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
