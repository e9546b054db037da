package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"todo-api/internal/config"
	"todo-api/internal/domain"
)

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("todo api: %d %s: %s", e.StatusCode, e.Title, e.Detail)
	}
	return fmt.Sprintf("todo api: %d %s", e.StatusCode, e.Title)
}

// ErrorHook observes every failed call before the error reaches the caller.
type ErrorHook func(ctx context.Context, op string, err error)

// Client talks to the todo HTTP API
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
	onError ErrorHook
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithErrorHook replaces the default error hook, which logs at error level
func WithErrorHook(hook ErrorHook) Option {
	return func(c *Client) { c.onError = hook }
}

// WithLogger sets the logger used by the default error hook
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the API at cfg.BaseURL
func New(cfg config.ClientConfig, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", cfg.BaseURL)
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.onError == nil {
		c.onError = c.logError
	}
	return c, nil
}

func (c *Client) logError(ctx context.Context, op string, err error) {
	c.logger.ErrorContext(ctx, "todo api call failed", "op", op, "error", err)
}

// GetTasks lists every task
func (c *Client) GetTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, "get tasks", http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// GetTask fetches a single task
func (c *Client) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, "get task", http.MethodGet, taskPath(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// AddTask creates an incomplete task
func (c *Client) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, "add task", http.MethodPost, "/tasks", domain.NewTask(name), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// SetCompleted changes the completion flag. The server replaces the whole
// task on update, so the current name is fetched first and sent back.
func (c *Client) SetCompleted(ctx context.Context, id int64, isComplete bool) error {
	task, err := c.GetTask(ctx, id)
	if err != nil {
		return err
	}
	return c.do(ctx, "set completed", http.MethodPut, taskPath(id), task.WithCompleted(isComplete), nil)
}

// RenameTask changes the name and keeps the completion flag
func (c *Client) RenameTask(ctx context.Context, id int64, name string) error {
	task, err := c.GetTask(ctx, id)
	if err != nil {
		return err
	}
	task.Name = name
	return c.do(ctx, "rename task", http.MethodPut, taskPath(id), task, nil)
}

// DeleteTask removes a task
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, "delete task", http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return fmt.Sprintf("/tasks/%d", id)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (err error) {
	defer func() {
		if err != nil {
			c.onError(ctx, op, err)
		}
	}()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}

	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &problem); err == nil {
		if problem.Title != "" {
			apiErr.Title = problem.Title
		}
		apiErr.Detail = problem.Detail
	} else if text := strings.TrimSpace(string(data)); text != "" {
		apiErr.Detail = text
	}
	return apiErr
}
