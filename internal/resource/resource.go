// Package resource tracks the lifecycle of one asynchronous accessor:
// idle -> loading -> success, or loading -> error.
package resource

import (
	"context"
	"errors"
	"sync"

	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// DefaultErrorMessage is shown when no message was configured
const DefaultErrorMessage = "Có lỗi xảy ra khi tải dữ liệu"

// Accessor loads a value for the given parameters
type Accessor[P, T any] func(ctx context.Context, params P) (T, error)

// State is a snapshot of a resource
type State[T any] struct {
	Data    *T     `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	// Cause is the accessor error behind Error
	Cause error `json:"-"`
}

// Option configures a Resource
type Option func(*options)

type options struct {
	name     string
	message  string
	notifier toast.Notifier
	logger   *logger.Logger
}

// WithName labels the resource in logs
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithErrorMessage sets the user-facing message stored on failure
func WithErrorMessage(message string) Option {
	return func(o *options) { o.message = message }
}

// WithNotifier enqueues one error toast per failed invocation
func WithNotifier(n toast.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithLogger sets the logger
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Resource runs an accessor and keeps the latest settled state.
// Every Fetch supersedes the previous one: the older call is cancelled and its result dropped.
type Resource[P, T any] struct {
	accessor Accessor[P, T]
	opts     options

	mu        sync.Mutex
	state     State[T]
	params    P
	hasParams bool
	seq       uint64
	cancel    context.CancelFunc
	closed    bool
}

// New creates an idle resource
func New[P, T any](accessor Accessor[P, T], opts ...Option) *Resource[P, T] {
	o := options{
		name:    "resource",
		message: DefaultErrorMessage,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNopLogger()
	}

	return &Resource[P, T]{
		accessor: accessor,
		opts:     o,
	}
}

// Fetch starts a new invocation. Loading is set and Error cleared before Fetch returns;
// Data keeps its previous value. The returned channel closes when this invocation settles,
// whether its result was applied or discarded.
func (r *Resource[P, T]) Fetch(ctx context.Context, params P) <-chan struct{} {
	done := make(chan struct{})

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		close(done)
		return done
	}
	if r.cancel != nil {
		r.cancel()
	}
	r.seq++
	seq := r.seq
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.params = params
	r.hasParams = true
	r.state.Loading = true
	r.state.Error = ""
	r.state.Cause = nil
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		value, err := r.accessor(runCtx, params)
		r.settle(runCtx, seq, value, err)
	}()

	return done
}

// Load fetches and waits for the invocation to settle
func (r *Resource[P, T]) Load(ctx context.Context, params P) State[T] {
	<-r.Fetch(ctx, params)
	return r.State()
}

// Refetch repeats the last invocation's parameters. It returns false when nothing was fetched yet.
func (r *Resource[P, T]) Refetch(ctx context.Context) (<-chan struct{}, bool) {
	r.mu.Lock()
	params, ok := r.params, r.hasParams
	r.mu.Unlock()

	if !ok {
		return nil, false
	}
	return r.Fetch(ctx, params), true
}

// State returns the current snapshot
func (r *Resource[P, T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Close cancels any in-flight invocation; results arriving afterwards are ignored
func (r *Resource[P, T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.state.Loading = false
}

func (r *Resource[P, T]) settle(ctx context.Context, seq uint64, value T, err error) {
	r.mu.Lock()

	if r.closed || seq != r.seq {
		r.mu.Unlock()
		r.opts.logger.WithFields(map[string]interface{}{
			"resource": r.opts.name,
			"seq":      seq,
		}).Debug("Discarded stale result")
		return
	}

	r.cancel = nil
	r.state.Loading = false

	if err == nil {
		v := value
		r.state.Data = &v
		r.mu.Unlock()
		return
	}

	// Cancelled by the caller rather than superseded: stop loading without reporting.
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		r.mu.Unlock()
		return
	}

	r.state.Error = r.opts.message
	r.state.Cause = err
	r.mu.Unlock()

	r.opts.logger.WithError(err).WithField("resource", r.opts.name).Warn("Accessor failed")
	if r.opts.notifier != nil {
		r.opts.notifier.Show(r.opts.message, toast.KindError, toast.DefaultDuration)
	}
}
