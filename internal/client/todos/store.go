package todos

import (
	"context"

	"github.com/mvolkova/taskquest/internal/client/models"
)

// Store is the storage strategy behind a Manager. Implementations return
// the canonical record after each mutation; the Manager mirrors it into the
// in-memory list only on success.
type Store interface {
	List(ctx context.Context) ([]models.Todo, error)
	Get(ctx context.Context, id string) (*models.Todo, error)
	Create(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error)
	Update(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error)

	// Toggle flips the completion flag authoritatively (server-side for the
	// remote strategy), rather than trusting a client-side negation.
	Toggle(ctx context.Context, id string) (*models.Todo, error)

	Delete(ctx context.Context, id string) error
}
