package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkova/taskquest/internal/client/api"
	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/client/session"
	"github.com/mvolkova/taskquest/internal/client/todos"
	"github.com/mvolkova/taskquest/internal/client/tokenstore"
	"github.com/mvolkova/taskquest/internal/logging"
)

type fakeAPI struct {
	registerReq *models.RegisterRequest
	loginReq    *models.LoginRequest
	loginErr    error
	verifyToken string
	user        *models.User
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	f.registerReq = &req
	return &models.RegisterResponse{Message: "check your email"}, nil
}
func (f *fakeAPI) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	f.loginReq = &req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}
func (f *fakeAPI) Logout(ctx context.Context, refreshToken string) error { return nil }
func (f *fakeAPI) VerifyEmail(ctx context.Context, token string) (string, error) {
	f.verifyToken = token
	return "email verified", nil
}
func (f *fakeAPI) ListTodos(ctx context.Context) ([]models.Todo, error) { return nil, nil }
func (f *fakeAPI) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeAPI) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeAPI) UpdateTodo(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeAPI) ToggleTodo(ctx context.Context, id string) (*models.Todo, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeAPI) DeleteTodo(ctx context.Context, id string) error { return nil }

func stubPrompts(t *testing.T, texts []string, password string) {
	t.Helper()
	origText := getSimpleText
	origPw := getPassword
	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(texts) {
			return "", errors.New("unexpected prompt: " + prompt)
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(w io.Writer) (string, error) {
		return password, nil
	}
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPw
	})
}

func newTestApp(t *testing.T, fa *fakeAPI) *App {
	t.Helper()
	log := logging.NewDefault()
	tokens := tokenstore.NewMemStore()
	store := todos.NewLocalStore(filepath.Join(t.TempDir(), "tasks.json"), log)

	var lc session.LogoutClient
	var client api.Client
	if fa != nil {
		lc = fa
		client = fa
	}

	return &App{
		session: session.NewManager(tokens, lc, session.StartupTrustToken, log),
		tasks:   todos.NewManager(store, log),
		api:     client,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

func TestApp_LoginCachesUserInSession(t *testing.T) {
	api := &fakeAPI{user: &models.User{ID: "u1", Email: "hero@quest.dev", Name: "Hero"}}
	app := newTestApp(t, api)
	stubPrompts(t, []string{"hero@quest.dev"}, "pw123")

	err := app.Login(context.Background())
	require.NoError(t, err)
	require.NotNil(t, api.loginReq)
	require.Equal(t, "hero@quest.dev", api.loginReq.Email)
	require.Equal(t, "pw123", api.loginReq.Password)

	require.True(t, app.session.IsAuthenticated())
	require.Equal(t, "hero@quest.dev", app.session.User().Email)
}

func TestApp_LoginFailureLeavesSessionAnonymous(t *testing.T) {
	api := &fakeAPI{loginErr: errors.New("invalid credentials")}
	app := newTestApp(t, api)
	stubPrompts(t, []string{"hero@quest.dev"}, "wrong")

	err := app.Login(context.Background())
	require.Error(t, err)
	require.False(t, app.session.IsAuthenticated())
}

func TestApp_RegisterSendsAllFields(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(t, api)
	stubPrompts(t, []string{"Hero", "hero@quest.dev"}, "pw123")

	err := app.Register(context.Background())
	require.NoError(t, err)
	require.NotNil(t, api.registerReq)
	require.Equal(t, "Hero", api.registerReq.Name)
	require.Equal(t, "hero@quest.dev", api.registerReq.Email)
	require.Equal(t, "pw123", api.registerReq.Password)
}

func TestApp_VerifyEmailForwardsToken(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(t, api)

	err := app.VerifyEmail(context.Background(), "tok-42")
	require.NoError(t, err)
	require.Equal(t, "tok-42", api.verifyToken)
}

func TestApp_OfflineAuthCommandsAreNoOps(t *testing.T) {
	app := newTestApp(t, nil)
	app.offline = true

	require.NoError(t, app.Register(context.Background()))
	require.NoError(t, app.Login(context.Background()))
	require.NoError(t, app.VerifyEmail(context.Background(), "tok"))
	require.True(t, app.isLoggedIn())
}

func TestApp_LogoutDropsSession(t *testing.T) {
	api := &fakeAPI{user: &models.User{ID: "u1", Email: "hero@quest.dev"}}
	app := newTestApp(t, api)
	app.session.SetUser(api.user)
	require.True(t, app.session.IsAuthenticated())

	err := app.Logout(context.Background())
	require.NoError(t, err)
	require.False(t, app.session.IsAuthenticated())
	require.False(t, app.isLoggedIn())
}
