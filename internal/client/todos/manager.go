package todos

import (
	"context"
	"sync"

	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/logging"
)

// Filter selects a view over the current list.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Counts are derived from the in-memory list on every call, never cached.
// Total is always Pending + Completed.
type Counts struct {
	Total     int
	Pending   int
	Completed int
}

// ClearResult is the per-item outcome of a ClearCompleted run.
type ClearResult struct {
	ID  string
	Err error
}

// Manager holds the ordered list of todos for the session and keeps it in
// step with its Store: local state changes only after the store confirms.
type Manager struct {
	store Store
	log   logging.Logger

	mu      sync.Mutex
	todos   []models.Todo
	loaded  bool
	loading bool
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Refresh replaces the local list wholesale with the store's contents. On
// failure the previously loaded data is kept and the error surfaced. The
// loading flag is set for the duration of the call.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	list, err := m.store.List(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		return err
	}
	m.todos = list
	m.loaded = true
	return nil
}

// ensureLoaded runs the initial fetch once, on first use of the manager.
func (m *Manager) ensureLoaded(ctx context.Context) error {
	m.mu.Lock()
	loaded := m.loaded
	m.mu.Unlock()
	if loaded {
		return nil
	}
	return m.Refresh(ctx)
}

// Loading reports whether a Refresh is in flight, so callers can defer
// rendering instead of blocking.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Todos returns a copy of the current list in insertion order.
func (m *Manager) Todos(ctx context.Context) ([]models.Todo, error) {
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Todo, len(m.todos))
	copy(out, m.todos)
	return out, nil
}

// Add validates the request client-side, applies the MEDIUM priority
// default, creates the record, and appends the canonical result to the list.
// On failure the list is left unchanged.
func (m *Manager) Add(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	created, err := m.store.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.todos = append(m.todos, *created)
	m.mu.Unlock()
	return created, nil
}

// Update sends a partial update and replaces the matching record in place.
func (m *Manager) Update(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	updated, err := m.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	m.replace(id, *updated)
	return updated, nil
}

// ToggleComplete flips completion through the store (the authoritative flip
// happens there, not by local negation) and mirrors the returned state.
func (m *Manager) ToggleComplete(ctx context.Context, id string) (*models.Todo, error) {
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	toggled, err := m.store.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}

	m.replace(id, *toggled)
	return toggled, nil
}

// Remove deletes the record in the store, then drops it from the list. On
// failure the record remains.
func (m *Manager) Remove(ctx context.Context, id string) error {
	if err := m.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.todos {
		if t.ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			break
		}
	}
	return nil
}

// ClearCompleted deletes the currently completed subset one item at a time,
// awaiting each delete before the next. A failure is logged and recorded in
// the returned per-item results without aborting the rest of the batch.
func (m *Manager) ClearCompleted(ctx context.Context) ([]ClearResult, error) {
	if err := m.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	var ids []string
	for _, t := range m.todos {
		if t.Completed {
			ids = append(ids, t.ID)
		}
	}
	m.mu.Unlock()

	results := make([]ClearResult, 0, len(ids))
	for _, id := range ids {
		err := m.Remove(ctx, id)
		if err != nil {
			m.log.Warn(ctx, "clearing completed todo failed", "id", id, "err", err)
		}
		results = append(results, ClearResult{ID: id, Err: err})
	}
	return results, nil
}

// Filtered returns the todos matching f, preserving relative order.
func (m *Manager) Filtered(ctx context.Context, f Filter) ([]models.Todo, error) {
	list, err := m.Todos(ctx)
	if err != nil {
		return nil, err
	}
	if f == FilterAll || f == "" {
		return list, nil
	}

	out := make([]models.Todo, 0, len(list))
	for _, t := range list {
		if (f == FilterCompleted) == t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

// CountsNow recomputes counts from the current list.
func (m *Manager) CountsNow(ctx context.Context) (Counts, error) {
	list, err := m.Todos(ctx)
	if err != nil {
		return Counts{}, err
	}

	c := Counts{Total: len(list)}
	for _, t := range list {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c, nil
}

// replace swaps the record with the given id for the store's canonical copy.
func (m *Manager) replace(id string, t models.Todo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.todos {
		if m.todos[i].ID == id {
			m.todos[i] = t
			return
		}
	}
}
