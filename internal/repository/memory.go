package repository

import (
	"errors"
	"slices"
	"sync"

	"student-portal-svc/internal/models"
)

// ErrRecordNotFound is returned when no record matches the requested id
var ErrRecordNotFound = errors.New("record not found")

// collection is an append-only, goroutine-safe slice of records.
// Reads hand out copies. Records holding slices need withClone to copy those too.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
	clone func(T) T
}

func newCollection[T any](items []T, id func(T) string) *collection[T] {
	c := &collection[T]{id: id, clone: func(item T) T { return item }}
	c.items = append(c.items, items...)
	return c
}

// withClone sets the copy applied on every read and write and re-copies the seed records
func (c *collection[T]) withClone(clone func(T) T) *collection[T] {
	c.clone = clone
	for i, item := range c.items {
		c.items[i] = clone(item)
	}
	return c
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) find(id string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.id(item) == id {
			found := c.clone(item)
			return &found, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (c *collection[T]) add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, c.clone(item))
}

func cloneService(s models.Service) models.Service {
	s.RequiredDocuments = slices.Clone(s.RequiredDocuments)
	return s
}

func cloneCourse(c models.Course) models.Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}

func cloneExportFile(f models.ExportFile) models.ExportFile {
	f.Content = slices.Clone(f.Content)
	return f
}

func cloneStudent(s models.Student) models.Student {
	s.PasswordHash = slices.Clone(s.PasswordHash)
	return s
}
