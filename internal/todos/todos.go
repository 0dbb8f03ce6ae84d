// Package todos implements the in-memory todo list behind the CRUD demo.
package todos

import (
	"errors"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/asw0210/htmx-demo/pkg/metrics"
)

var (
	// ErrNotFound indicates the referenced todo id does not exist.
	ErrNotFound = errors.New("todo not found")
	// ErrEmptyText indicates an add with no text after trimming.
	ErrEmptyText = errors.New("todo text is empty")
)

// Todo is a single task on the demo list.
type Todo struct {
	ID   int
	Text string
	Done bool
}

// Service holds the todo list. All mutations happen under the mutex; reads
// return copies so callers never alias internal state.
type Service struct {
	logger *zap.Logger
	policy *bluemonday.Policy

	mu     sync.Mutex
	items  []Todo
	nextID int
}

// NewService creates a todo service seeded with the demo tasks.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
		policy: bluemonday.StrictPolicy(),
		items: []Todo{
			{ID: 1, Text: "Skim the HTMX docs"},
			{ID: 2, Text: "Wire a form with hx-post"},
			{ID: 3, Text: "Try hx-swap-oob", Done: true},
		},
		nextID: 4,
	}
}

// List returns a snapshot of the current todos.
func (s *Service) List() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Todo, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends a new todo. The text is trimmed and stripped of markup before
// it is stored; an empty result is rejected with ErrEmptyText.
func (s *Service) Add(text string) (Todo, error) {
	clean := strings.TrimSpace(s.policy.Sanitize(text))
	if clean == "" {
		return Todo{}, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	todo := Todo{ID: s.nextID, Text: clean}
	s.items = append(s.items, todo)
	s.nextID++

	metrics.TodoOps.WithLabelValues("add").Inc()
	s.logger.Debug("todo added", zap.Int("id", todo.ID))
	return todo, nil
}

// Toggle flips the done flag of the todo with the given id.
func (s *Service) Toggle(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Done = !s.items[i].Done
			metrics.TodoOps.WithLabelValues("toggle").Inc()
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the todo with the given id.
func (s *Service) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			metrics.TodoOps.WithLabelValues("delete").Inc()
			return nil
		}
	}
	return ErrNotFound
}
