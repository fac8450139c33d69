package api

import (
	"context"

	"github.com/mvolkova/taskquest/internal/client/models"
)

// Client is the API contract against the taskquest backend.
type Client interface {
	// Register creates a new account. Unauthenticated path.
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)

	// Login authenticates with credentials and, on success, persists the
	// returned token pair in the token store before returning the user.
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)

	// Logout invalidates the refresh token server-side. It does not touch
	// the token store.
	Logout(ctx context.Context, refreshToken string) error

	// VerifyEmail confirms the address behind an emailed verification token
	// and returns the server's acknowledgement message.
	VerifyEmail(ctx context.Context, token string) (string, error)

	ListTodos(ctx context.Context) ([]models.Todo, error)
	GetTodo(ctx context.Context, id string) (*models.Todo, error)
	CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error)

	// ToggleTodo flips completion server-side; the returned record is
	// authoritative.
	ToggleTodo(ctx context.Context, id string) (*models.Todo, error)

	DeleteTodo(ctx context.Context, id string) error
}
