// Package viewstate holds the per-session state of each portal page: the resources it
// loads, the filter the student picked, and the actions it offers.
package viewstate

import (
	"context"
	"strings"
	"sync"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/toast"
)

// InvalidFilterMessage is shown when a filter value is outside its allowed set
const InvalidFilterMessage = "Bộ lọc không hợp lệ"

type normalizer[F any] interface {
	Normalize() F
}

// ListSnapshot is a fetched list plus the local keyword narrowing applied on top of it
type ListSnapshot[F, T any] struct {
	Filter  F      `json:"filter"`
	Keyword string `json:"keyword,omitempty"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Items   []T    `json:"items"`
	// Fetched is the number of items before keyword narrowing
	Fetched int `json:"fetched"`
}

// list is a filtered resource whose result can be narrowed again locally by keyword
type list[F normalizer[F], T any] struct {
	res      *resource.Resource[F, []T]
	contains func(item T, keyword string) bool
	notifier toast.Notifier

	mu      sync.Mutex
	filter  F
	keyword string
}

func newList[F normalizer[F], T any](accessor resource.Accessor[F, []T], contains func(T, string) bool, notifier toast.Notifier, opts ...resource.Option) *list[F, T] {
	l := &list[F, T]{
		contains: contains,
		notifier: notifier,
	}
	l.res = resource.New(accessor, append(opts, resource.WithNotifier(notifier))...)
	var zero F
	l.filter = zero.Normalize()
	return l
}

// apply validates and stores f. An invalid filter leaves the current one in place.
func (l *list[F, T]) apply(f F) error {
	f = f.Normalize()
	if err := models.Validate(f); err != nil {
		l.notifier.Show(InvalidFilterMessage, toast.KindWarning, toast.DefaultDuration)
		return err
	}

	l.mu.Lock()
	l.filter = f
	l.mu.Unlock()
	return nil
}

// setFilter applies f and loads the list alone
func (l *list[F, T]) setFilter(ctx context.Context, f F) error {
	if err := l.apply(f); err != nil {
		return err
	}
	<-l.fetch(ctx)
	return nil
}

// fetch starts a load with the current filter
func (l *list[F, T]) fetch(ctx context.Context) <-chan struct{} {
	l.mu.Lock()
	f := l.filter
	l.mu.Unlock()
	return l.res.Fetch(ctx, f)
}

func (l *list[F, T]) setKeyword(keyword string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keyword = strings.TrimSpace(keyword)
}

func (l *list[F, T]) snapshot() ListSnapshot[F, T] {
	l.mu.Lock()
	f, keyword := l.filter, l.keyword
	l.mu.Unlock()

	st := l.res.State()
	snap := ListSnapshot[F, T]{
		Filter:  f,
		Keyword: keyword,
		Loading: st.Loading,
		Error:   st.Error,
		Items:   []T{},
	}
	if st.Data == nil {
		return snap
	}

	fetched := *st.Data
	snap.Fetched = len(fetched)
	snap.Items = narrow(fetched, keyword, l.contains)
	return snap
}

func (l *list[F, T]) close() {
	l.res.Close()
}

// narrow returns a new slice of the items containing keyword; items is never modified
func narrow[T any](items []T, keyword string, contains func(T, string) bool) []T {
	out := make([]T, 0, len(items))
	keyword = strings.ToLower(keyword)
	for _, item := range items {
		if keyword == "" || contains(item, keyword) {
			out = append(out, item)
		}
	}
	return out
}

// containsAny reports whether any field contains the lower-cased keyword
func containsAny(keyword string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}

// wait blocks until every channel is closed
func wait(chans ...<-chan struct{}) {
	for _, ch := range chans {
		<-ch
	}
}

// unit adapts a parameterless service call returning a pointer into an accessor
func unit[T any](fn func(context.Context) (*T, error)) resource.Accessor[struct{}, T] {
	return func(ctx context.Context, _ struct{}) (T, error) {
		return deref(fn(ctx))
	}
}

func deref[T any](v *T, err error) (T, error) {
	if err != nil || v == nil {
		var zero T
		return zero, err
	}
	return *v, nil
}
