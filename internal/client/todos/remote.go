package todos

import (
	"context"

	"github.com/mvolkova/taskquest/internal/client/api"
	"github.com/mvolkova/taskquest/internal/client/models"
)

// RemoteStore is the API-backed storage strategy.
type RemoteStore struct {
	client api.Client
}

func NewRemoteStore(client api.Client) *RemoteStore {
	return &RemoteStore{client: client}
}

func (s *RemoteStore) List(ctx context.Context) ([]models.Todo, error) {
	return s.client.ListTodos(ctx)
}

func (s *RemoteStore) Get(ctx context.Context, id string) (*models.Todo, error) {
	return s.client.GetTodo(ctx, id)
}

func (s *RemoteStore) Create(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	return s.client.CreateTodo(ctx, req)
}

func (s *RemoteStore) Update(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	return s.client.UpdateTodo(ctx, id, req)
}

func (s *RemoteStore) Toggle(ctx context.Context, id string) (*models.Todo, error) {
	return s.client.ToggleTodo(ctx, id)
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	return s.client.DeleteTodo(ctx, id)
}
