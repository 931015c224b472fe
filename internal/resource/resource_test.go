package resource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/toast"
)

// gate lets a test decide when each accessor call returns
type gate struct {
	mu      sync.Mutex
	release map[string]chan struct{}
}

func newGate() *gate {
	return &gate{release: make(map[string]chan struct{})}
}

func (g *gate) ch(key string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.release[key]
	if !ok {
		c = make(chan struct{})
		g.release[key] = c
	}
	return c
}

func (g *gate) open(key string) { close(g.ch(key)) }

func (g *gate) accessor(ctx context.Context, key string) (string, error) {
	select {
	case <-g.ch(key):
		if key == "fail" {
			return "", errors.New("record not found")
		}
		return "value-" + key, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestFetchSetsLoadingImmediately(t *testing.T) {
	g := newGate()
	r := New(g.accessor)

	// settle a first value so "data unchanged" can be observed
	g.open("a")
	first := r.Load(context.Background(), "a")
	require.NotNil(t, first.Data)

	done := r.Fetch(context.Background(), "b")
	st := r.State()
	assert.True(t, st.Loading)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Data)
	assert.Equal(t, "value-a", *st.Data)

	g.open("b")
	<-done
}

func TestSuccessSettlesData(t *testing.T) {
	g := newGate()
	r := New(g.accessor)
	g.open("x")

	st := r.Load(context.Background(), "x")

	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Data)
	assert.Equal(t, "value-x", *st.Data)
}

func TestFailureKeepsDataAndToastsOnce(t *testing.T) {
	g := newGate()
	q := toast.NewQueue()
	defer q.Close()

	r := New(g.accessor,
		WithErrorMessage("Có lỗi xảy ra khi tải công nợ"),
		WithNotifier(q),
	)

	g.open("ok")
	r.Load(context.Background(), "ok")

	g.open("fail")
	st := r.Load(context.Background(), "fail")

	assert.False(t, st.Loading)
	require.NotNil(t, st.Data)
	assert.Equal(t, "value-ok", *st.Data)
	assert.Equal(t, "Có lỗi xảy ra khi tải công nợ", st.Error)
	assert.EqualError(t, st.Cause, "record not found")

	items := q.List()
	require.Len(t, items, 1)
	assert.Equal(t, toast.KindError, items[0].Kind)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	q := toast.NewQueue()
	defer q.Close()

	slowStarted := make(chan struct{})
	accessor := func(ctx context.Context, key string) (string, error) {
		if key == "slow" {
			close(slowStarted)
			<-ctx.Done()
			// ignore cancellation and answer anyway, like a late network reply
			return "stale", nil
		}
		return "fresh", nil
	}
	r := New(accessor, WithNotifier(q))

	slow := r.Fetch(context.Background(), "slow")
	<-slowStarted
	fast := r.Fetch(context.Background(), "fast")

	<-fast
	<-slow

	st := r.State()
	require.NotNil(t, st.Data)
	assert.Equal(t, "fresh", *st.Data)
	assert.False(t, st.Loading)
	assert.Empty(t, q.List())
}

func TestCloseDropsLateResults(t *testing.T) {
	g := newGate()
	r := New(g.accessor)

	done := r.Fetch(context.Background(), "late")
	r.Close()
	<-done

	st := r.State()
	assert.Nil(t, st.Data)
	assert.False(t, st.Loading)

	// fetches after close are no-ops
	<-r.Fetch(context.Background(), "late")
	assert.Nil(t, r.State().Data)
}

func TestCallerCancellationDoesNotReportError(t *testing.T) {
	q := toast.NewQueue()
	defer q.Close()

	g := newGate()
	r := New(g.accessor, WithNotifier(q))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	st := r.Load(ctx, "never")
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
	assert.Empty(t, q.List())
}

func TestRefetchReusesParams(t *testing.T) {
	calls := 0
	r := New(func(_ context.Context, n int) (int, error) {
		calls++
		return n * 2, nil
	})

	_, ok := r.Refetch(context.Background())
	assert.False(t, ok)

	r.Load(context.Background(), 21)
	done, ok := r.Refetch(context.Background())
	require.True(t, ok)
	<-done

	assert.Equal(t, 2, calls)
	assert.Equal(t, 42, *r.State().Data)
}
