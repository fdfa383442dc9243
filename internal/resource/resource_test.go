package resource

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIn() *session.Store {
	s := session.NewStore()
	s.Set(models.User{ID: "u1"}, "tok")
	return s
}

type states[T any] struct {
	mu  sync.Mutex
	all []State[T]
}

func (s *states[T]) record(st State[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = append(s.all, st)
}

func (s *states[T]) list() []State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]State[T](nil), s.all...)
}

func TestResource_NoSession(t *testing.T) {
	var calls atomic.Int32
	r := New(context.Background(), "stats", session.NewStore(), func(context.Context, session.Snapshot) (int, error) {
		calls.Add(1)
		return 1, nil
	}, logger.Nop())
	defer r.Close()

	r.Refetch()
	r.Wait()

	assert.Equal(t, State[int]{}, r.State())
	assert.Zero(t, calls.Load())
}

func TestResource_SuccessReplacesData(t *testing.T) {
	r := New(context.Background(), "stats", signedIn(), func(_ context.Context, s session.Snapshot) (string, error) {
		return "hello " + s.User.ID, nil
	}, logger.Nop())
	defer r.Close()

	var seen states[string]
	r.Subscribe(seen.record)

	r.Refetch()
	r.Wait()

	assert.Equal(t, State[string]{Data: "hello u1"}, r.State())
	got := seen.list()
	require.Len(t, got, 2)
	assert.True(t, got[0].Loading)
	assert.False(t, got[1].Loading)
}

func TestResource_FailureKeepsData(t *testing.T) {
	fail := false
	r := New(context.Background(), "stats", signedIn(), func(context.Context, session.Snapshot) (int, error) {
		if fail {
			return 0, errors.New("boom")
		}
		return 42, nil
	}, logger.Nop())
	defer r.Close()

	r.Refetch()
	r.Wait()
	fail = true
	r.Refetch()
	r.Wait()

	assert.Equal(t, State[int]{Data: 42, Err: "boom"}, r.State())

	fail = false
	r.Refetch()
	r.Wait()
	assert.Equal(t, State[int]{Data: 42}, r.State())
}

func TestResource_StaleResultIsDropped(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32

	r := New(context.Background(), "stats", signedIn(), func(ctx context.Context, _ session.Snapshot) (int, error) {
		n := calls.Add(1)
		if n == 1 {
			// first fetch ignores cancellation and answers late
			<-release
			return 1, nil
		}
		return 2, nil
	}, logger.Nop())
	defer r.Close()

	r.Refetch()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	r.Refetch()
	require.Eventually(t, func() bool { return r.State().Data == 2 }, time.Second, time.Millisecond)

	close(release)
	r.Wait()

	assert.Equal(t, State[int]{Data: 2}, r.State())
}

func TestResource_RefetchCancelsInflight(t *testing.T) {
	cancelled := make(chan struct{})
	var calls atomic.Int32

	r := New(context.Background(), "stats", signedIn(), func(ctx context.Context, _ session.Snapshot) (int, error) {
		if calls.Add(1) == 1 {
			<-ctx.Done()
			close(cancelled)
			return 0, ctx.Err()
		}
		return 7, nil
	}, logger.Nop())
	defer r.Close()

	r.Refetch()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	r.Refetch()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight fetch was not cancelled")
	}
	r.Wait()
	assert.Equal(t, State[int]{Data: 7}, r.State())
}

func TestResource_ResultAfterCloseIsDropped(t *testing.T) {
	r := New(context.Background(), "stats", signedIn(), func(ctx context.Context, _ session.Snapshot) (int, error) {
		<-ctx.Done()
		return 99, nil
	}, logger.Nop())

	r.Refetch()
	r.Close()

	assert.Zero(t, r.State().Data)
	r.Refetch()
	assert.True(t, r.State().Loading)
}

func TestResource_SignOutResetsState(t *testing.T) {
	store := signedIn()
	r := New(context.Background(), "stats", store, func(context.Context, session.Snapshot) (int, error) {
		return 5, nil
	}, logger.Nop())
	defer r.Close()

	r.Refetch()
	r.Wait()
	store.Clear()
	r.Refetch()

	assert.Equal(t, State[int]{}, r.State())
}

func TestResource_SeedOnlyBeforeFirstSuccess(t *testing.T) {
	r := New(context.Background(), "stats", signedIn(), func(context.Context, session.Snapshot) (int, error) {
		return 3, nil
	}, logger.Nop())
	defer r.Close()

	r.Seed(1)
	assert.Equal(t, 1, r.State().Data)

	r.Refetch()
	r.Wait()
	r.Seed(1)
	assert.Equal(t, 3, r.State().Data)
}

func TestResource_Mutate(t *testing.T) {
	r := New(context.Background(), "count", signedIn(), func(context.Context, session.Snapshot) (int, error) {
		return 1, nil
	}, logger.Nop())
	defer r.Close()

	r.Refetch()
	r.Wait()
	r.Mutate(func(n int) int { return n + 1 })

	assert.Equal(t, 2, r.State().Data)
}
