package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mvolkova/taskquest/internal/client/models"
	"github.com/mvolkova/taskquest/internal/client/tokenstore"
	"github.com/mvolkova/taskquest/internal/common"
)

// HTTPClient implements Client over the backend's JSON REST endpoints.
//
// The access token is read from the token store on every call rather than
// cached, so the store stays the single source of truth across restarts.
type HTTPClient struct {
	baseURL string
	tokens  tokenstore.Store
	timeout time.Duration
	http    *http.Client
}

// NewHTTPClient builds a client against baseURL (no trailing slash).
// timeout bounds each request; zero disables the bound.
func NewHTTPClient(baseURL string, tokens tokenstore.Store, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		timeout: timeout,
		http:    &http.Client{},
	}
}

// request performs an authenticated call. When no access token is stored the
// call fails immediately without touching the network.
func (c *HTTPClient) request(ctx context.Context, method, endpoint string, body, out any) error {
	token := c.tokens.Access()
	if token == "" {
		return common.ErrNotAuthenticated
	}
	return c.do(ctx, method, endpoint, body, out, token)
}

// public performs a call on the unauthenticated path (register, login,
// logout, email verification).
func (c *HTTPClient) public(ctx context.Context, method, endpoint string, body, out any) error {
	return c.do(ctx, method, endpoint, body, out, "")
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body, out any, token string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response received: generic network failure, no status code.
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return serverError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverError extracts the server-supplied message from an error body,
// falling back to a generic message.
func serverError(status int, body []byte) *Error {
	var payload struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" && len(payload.Errors) > 0 {
		msg = strings.Join(payload.Errors, ", ")
	}
	if msg == "" {
		msg = "API request failed"
	}
	return &Error{Message: msg, Status: status, Details: payload.Errors}
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.public(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var resp models.LoginResponse
	if err := c.public(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" && resp.RefreshToken != "" {
		if err := c.tokens.Save(resp.AccessToken, resp.RefreshToken); err != nil {
			return nil, fmt.Errorf("store tokens: %w", err)
		}
	}
	return &resp.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	return c.public(ctx, http.MethodPost, "/auth/logout", body, nil)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (string, error) {
	var resp models.MessageResponse
	endpoint := "/auth/verify-email?token=" + url.QueryEscape(token)
	if err := c.public(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ListTodos(ctx context.Context) ([]models.Todo, error) {
	var resp models.TodosResponse
	if err := c.request(ctx, http.MethodGet, "/todos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Todos, nil
}

func (c *HTTPClient) GetTodo(ctx context.Context, id string) (*models.Todo, error) {
	var resp models.TodoResponse
	if err := c.request(ctx, http.MethodGet, "/todos/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

func (c *HTTPClient) CreateTodo(ctx context.Context, req models.CreateTodoRequest) (*models.Todo, error) {
	var resp models.TodoResponse
	if err := c.request(ctx, http.MethodPost, "/todos", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

func (c *HTTPClient) UpdateTodo(ctx context.Context, id string, req models.UpdateTodoRequest) (*models.Todo, error) {
	var resp models.TodoResponse
	if err := c.request(ctx, http.MethodPut, "/todos/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

func (c *HTTPClient) ToggleTodo(ctx context.Context, id string) (*models.Todo, error) {
	var resp models.TodoResponse
	if err := c.request(ctx, http.MethodPatch, "/todos/"+url.PathEscape(id)+"/toggle", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

func (c *HTTPClient) DeleteTodo(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, nil)
}
