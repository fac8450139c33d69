package todos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/common"
	"github.com/mvolkova/taskquest/internal/logging"
)

// LocalStore is the offline storage strategy: the whole list lives in one
// JSON file that is rewritten after every mutation. Ids are generated
// client-side; timestamps round-trip through RFC3339. There is no network
// failure mode here — only storage-read parse failures, which are logged and
// treated as "no saved data".
type LocalStore struct {
	path string
	log  logging.Logger

	mu     sync.Mutex
	todos  []models.Todo
	loaded bool
}

func NewLocalStore(path string, log logging.Logger) *LocalStore {
	return &LocalStore{path: path, log: log}
}

// load reads the saved list once. A missing or unparseable file starts an
// empty list.
func (s *LocalStore) load(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn(ctx, "reading saved tasks failed, starting empty", "path", s.path, "err", err)
		}
		return
	}

	var todos []models.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		s.log.Warn(ctx, "saved tasks unparseable, starting empty", "path", s.path, "err", err)
		return
	}
	s.todos = todos
}

func (s *LocalStore) persist() error {
	data, err := json.MarshalIndent(s.todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

func (s *LocalStore) List(ctx context.Context) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out, nil
}

func (s *LocalStore) Get(ctx context.Context, id string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("todo %s: %w", id, common.ErrorNotFound)
	}
	t := s.todos[i]
	return &t, nil
}

func (s *LocalStore) Create(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now().UTC()
	t := models.Todo{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		DueDate:     req.DueDate,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.todos = append(s.todos, t)
	if err := s.persist(); err != nil {
		s.todos = s.todos[:len(s.todos)-1]
		return nil, err
	}
	return &t, nil
}

func (s *LocalStore) Update(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("todo %s: %w", id, common.ErrorNotFound)
	}

	prev := s.todos[i]
	t := prev
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	t.UpdatedAt = time.Now().UTC()

	s.todos[i] = t
	if err := s.persist(); err != nil {
		s.todos[i] = prev
		return nil, err
	}
	return &t, nil
}

func (s *LocalStore) Toggle(ctx context.Context, id string) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	i := s.index(id)
	if i < 0 {
		return nil, fmt.Errorf("todo %s: %w", id, common.ErrorNotFound)
	}

	prev := s.todos[i]
	t := prev
	t.Completed = !t.Completed
	t.UpdatedAt = time.Now().UTC()

	s.todos[i] = t
	if err := s.persist(); err != nil {
		s.todos[i] = prev
		return nil, err
	}
	return &t, nil
}

func (s *LocalStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("todo %s: %w", id, common.ErrorNotFound)
	}

	prev := s.todos
	s.todos = append(append([]models.Todo{}, s.todos[:i]...), s.todos[i+1:]...)
	if err := s.persist(); err != nil {
		s.todos = prev
		return err
	}
	return nil
}

// index returns the position of id, or -1. Caller holds the lock.
func (s *LocalStore) index(id string) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
