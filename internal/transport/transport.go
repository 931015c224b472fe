package transport

import (
	"context"
	"net/http"
	"sync"
	"time"

	"student-portal-svc/pkg/logger"
)

// Weight classifies how expensive a simulated endpoint is
type Weight int

const (
	Light Weight = iota
	Normal
	Heavy
)

// Default delays per weight before scaling
var defaultDelays = map[Weight]time.Duration{
	Light:  300 * time.Millisecond,
	Normal: 800 * time.Millisecond,
	Heavy:  2000 * time.Millisecond,
}

// Request describes one simulated round trip
type Request struct {
	Method string
	Path   string
	Weight Weight
	Header http.Header
}

// Get builds a GET request for path
func Get(path string, weight Weight) Request {
	return Request{Method: http.MethodGet, Path: path, Weight: weight}
}

// Post builds a POST request for path
func Post(path string, weight Weight) Request {
	return Request{Method: http.MethodPost, Path: path, Weight: weight}
}

// Config controls latency and observation of the fake transport
type Config struct {
	// Scale multiplies every delay. 0 disables waiting.
	Scale float64
	// Delays overrides the per-weight defaults
	Delays map[Weight]time.Duration
	// OnRequest is called for every request after headers are set
	OnRequest func(Request)
}

// Transport simulates the remote API every domain service talks to.
// Accessors run in-process after an artificial delay; failures can be injected per path.
type Transport struct {
	mu       sync.RWMutex
	scale    float64
	delays   map[Weight]time.Duration
	failures map[string]error
	observe  func(Request)
	logger   *logger.Logger
}

// New creates a Transport
func New(cfg Config, logger *logger.Logger) *Transport {
	delays := make(map[Weight]time.Duration, len(defaultDelays))
	for w, d := range defaultDelays {
		delays[w] = d
	}
	for w, d := range cfg.Delays {
		delays[w] = d
	}

	scale := cfg.Scale
	if scale < 0 {
		scale = 0
	}

	return &Transport{
		scale:    scale,
		delays:   delays,
		failures: make(map[string]error),
		observe:  cfg.OnRequest,
		logger:   logger,
	}
}

// NewInstant creates a Transport without latency, used by tests
func NewInstant(logger *logger.Logger) *Transport {
	return New(Config{Scale: 0}, logger)
}

// Fail makes every call to path return err until Heal is called
func (t *Transport) Fail(path string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures[path] = err
}

// Heal removes an injected failure
func (t *Transport) Heal(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.failures, path)
}

// Delay returns the scaled delay for a weight
func (t *Transport) Delay(w Weight) time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return time.Duration(float64(t.delays[w]) * t.scale)
}

func (t *Transport) injected(path string) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.failures[path]
}

// wait blocks for the request's delay or until ctx is done
func (t *Transport) wait(ctx context.Context, req Request) error {
	d := t.Delay(req.Weight)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Call performs a simulated round trip then runs fn
func Call[T any](ctx context.Context, t *Transport, req Request, fn func() (T, error)) (T, error) {
	var zero T

	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if t.observe != nil {
		t.observe(req)
	}

	t.logger.WithFields(map[string]interface{}{
		"method":        req.Method,
		"path":          req.Path,
		"authenticated": req.Header.Get("Authorization") != "",
	}).Debug("Simulated request")

	if err := t.wait(ctx, req); err != nil {
		return zero, err
	}

	if err := t.injected(req.Path); err != nil {
		t.logger.WithError(err).WithField("path", req.Path).Debug("Injected failure")
		return zero, err
	}

	return fn()
}

type tokenKey struct{}

// WithToken attaches a bearer token to ctx
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token attached to ctx, if any
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
