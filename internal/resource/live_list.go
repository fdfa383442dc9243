package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// Keyed is a row with a primary key.
type Keyed interface {
	PrimaryKey() string
}

// ErrMissingKey is returned for change records without a primary key.
var ErrMissingKey = errors.New("change record has no primary key")

// LiveList is an ordered list of rows kept current by realtime events.
// New rows are prepended, so a list fetched newest-first stays that way.
type LiveList[T Keyed] struct {
	mu    sync.Mutex
	items []T

	subsMu sync.Mutex
	subs   map[uint64]func([]T)
	nextID uint64

	notifyMu sync.Mutex

	logger *logger.Logger
}

func NewLiveList[T Keyed](log *logger.Logger) *LiveList[T] {
	return &LiveList[T]{subs: make(map[uint64]func([]T)), logger: log}
}

// Items returns a copy of the rows.
func (l *LiveList[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// Len returns the number of rows.
func (l *LiveList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get returns the row with key id.
func (l *LiveList[T]) Get(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.indexLocked(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Replace swaps in a freshly fetched list.
func (l *LiveList[T]) Replace(items []T) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.publishLocked()
}

// ApplyInsert prepends item. A row with the same key already present is
// updated in place instead, so a replayed insert never duplicates a row.
func (l *LiveList[T]) ApplyInsert(item T) {
	l.mu.Lock()
	if i := l.indexLocked(item.PrimaryKey()); i >= 0 {
		items := slices.Clone(l.items)
		items[i] = item
		l.items = items
	} else {
		l.items = slices.Insert(slices.Clone(l.items), 0, item)
	}
	l.publishLocked()
}

// ApplyUpdate merges the JSON fields present in patch into the row whose key
// matches the patch. Rows not in the list are ignored.
func (l *LiveList[T]) ApplyUpdate(patch json.RawMessage) error {
	var keyed T
	if err := json.Unmarshal(patch, &keyed); err != nil {
		return fmt.Errorf("decode update: %w", err)
	}
	id := keyed.PrimaryKey()
	if id == "" {
		return ErrMissingKey
	}

	l.mu.Lock()
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		return nil
	}

	merged, err := mergeJSON(l.items[i], patch)
	if err != nil {
		l.mu.Unlock()
		return err
	}

	items := slices.Clone(l.items)
	items[i] = merged
	l.items = items
	l.publishLocked()
	return nil
}

// ApplyDelete removes the row with key id.
func (l *LiveList[T]) ApplyDelete(id string) {
	l.mu.Lock()
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		return
	}
	l.items = slices.Delete(slices.Clone(l.items), i, i+1)
	l.publishLocked()
}

// Update replaces the row with key id by fn(row) and returns the previous
// row. ok is false when no such row exists.
func (l *LiveList[T]) Update(id string, fn func(T) T) (previous T, ok bool) {
	l.mu.Lock()
	i := l.indexLocked(id)
	if i < 0 {
		l.mu.Unlock()
		return previous, false
	}

	previous = l.items[i]
	items := slices.Clone(l.items)
	items[i] = fn(previous)
	l.items = items
	l.publishLocked()
	return previous, true
}

// Apply routes a change event to ApplyInsert, ApplyUpdate or ApplyDelete.
func (l *LiveList[T]) Apply(event models.ChangeEvent) error {
	switch event.Type {
	case models.ChangeInsert:
		var item T
		if err := json.Unmarshal(event.Record, &item); err != nil {
			return fmt.Errorf("decode insert: %w", err)
		}
		if item.PrimaryKey() == "" {
			return ErrMissingKey
		}
		l.ApplyInsert(item)
	case models.ChangeUpdate:
		return l.ApplyUpdate(event.Record)
	case models.ChangeDelete:
		var item T
		if err := json.Unmarshal(event.Record, &item); err != nil {
			return fmt.Errorf("decode delete: %w", err)
		}
		if item.PrimaryKey() == "" {
			return ErrMissingKey
		}
		l.ApplyDelete(item.PrimaryKey())
	default:
		return fmt.Errorf("unknown change type %q", event.Type)
	}
	return nil
}

// Bind applies events until the channel closes or ctx is done. Malformed
// events are logged and skipped.
func (l *LiveList[T]) Bind(ctx context.Context, events <-chan models.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := l.Apply(event); err != nil {
				l.logger.Err(err).Str("func", "LiveList.Bind").Str("entity", string(event.Entity)).Msg("skipping change event")
			}
		}
	}
}

// Subscribe registers fn for every later change. fn gets its own copy of the
// rows and must not call back into the list.
func (l *LiveList[T]) Subscribe(fn func([]T)) (unsubscribe func()) {
	l.subsMu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	l.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.subsMu.Lock()
			delete(l.subs, id)
			l.subsMu.Unlock()
		})
	}
}

func (l *LiveList[T]) indexLocked(id string) int {
	return slices.IndexFunc(l.items, func(item T) bool { return item.PrimaryKey() == id })
}

// publishLocked must be called with mu held; it releases mu before the
// subscribers run. l.items is never modified in place after publication.
func (l *LiveList[T]) publishLocked() {
	items := l.items

	l.notifyMu.Lock()
	l.mu.Unlock()
	defer l.notifyMu.Unlock()

	l.subsMu.Lock()
	subs := make([]func([]T), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.subsMu.Unlock()

	for _, fn := range subs {
		fn(slices.Clone(items))
	}
}

// mergeJSON overlays the top-level fields of patch on item.
func mergeJSON[T any](item T, patch json.RawMessage) (T, error) {
	var merged T

	base, err := json.Marshal(item)
	if err != nil {
		return merged, fmt.Errorf("encode row: %w", err)
	}

	fields := map[string]json.RawMessage{}
	if err = json.Unmarshal(base, &fields); err != nil {
		return merged, fmt.Errorf("decode row: %w", err)
	}

	changes := map[string]json.RawMessage{}
	if err = json.Unmarshal(patch, &changes); err != nil {
		return merged, fmt.Errorf("decode patch: %w", err)
	}
	for k, v := range changes {
		fields[k] = v
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return merged, fmt.Errorf("encode merged row: %w", err)
	}
	if err = json.Unmarshal(out, &merged); err != nil {
		return merged, fmt.Errorf("decode merged row: %w", err)
	}
	return merged, nil
}
