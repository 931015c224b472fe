package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the visual category of a toast
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// DefaultDuration is used when Show is called with a non-positive duration
const DefaultDuration = 3000 * time.Millisecond

// Toast is one ephemeral message
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Notifier is what views need to report outcomes
type Notifier interface {
	Show(message string, kind Kind, duration time.Duration) string
}

// Queue is an ordered list of toasts that expire on their own.
// Insertion order is display order; identical messages are not merged.
type Queue struct {
	mu     sync.Mutex
	items  []Toast
	timers map[string]*time.Timer
	closed bool
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		timers: make(map[string]*time.Timer),
	}
}

// Show appends a toast and schedules its removal after duration. It returns the toast id.
func (q *Queue) Show(message string, kind Kind, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}
	switch kind {
	case KindSuccess, KindError, KindInfo, KindWarning:
	default:
		kind = KindInfo
	}

	now := time.Now()
	t := Toast{
		ID:        uuid.New().String(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return t.ID
	}

	q.items = append(q.items, t)
	q.timers[t.ID] = time.AfterFunc(duration, func() { q.remove(t.ID) })

	return t.ID
}

// Success shows a success toast with the default duration
func (q *Queue) Success(message string) string {
	return q.Show(message, KindSuccess, DefaultDuration)
}

// Error shows an error toast with the default duration
func (q *Queue) Error(message string) string {
	return q.Show(message, KindError, DefaultDuration)
}

// Info shows an info toast with the default duration
func (q *Queue) Info(message string) string {
	return q.Show(message, KindInfo, DefaultDuration)
}

// Warning shows a warning toast with the default duration
func (q *Queue) Warning(message string) string {
	return q.Show(message, KindWarning, DefaultDuration)
}

// Hide removes a toast immediately. Unknown ids are ignored.
func (q *Queue) Hide(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
	}
	q.removeLocked(id)
}

// List returns the current toasts, oldest first
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of visible toasts
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops every pending timer and empties the queue. Later Show calls are dropped.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.items = nil
	q.closed = true
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removeLocked(id)
}

func (q *Queue) removeLocked(id string) {
	delete(q.timers, id)
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}
