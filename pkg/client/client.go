// Package client wraps HTTP access to the remote mock API serving users and
// tasks. It issues one request per operation and never retries: every failure
// is normalized into ErrNetwork, ErrDecode or *RemoteError and handed to the
// caller as-is.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskboard/taskboard.go/pkg/model"
)

// DefaultBaseURL is the fixed remote mock API endpoint. The remote does not
// persist writes.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const contentType = "application/json; charset=utf-8"

// Client is a thin wrapper to make HTTP calls to the remote mock API.
type Client struct {
	// BaseURL is the base URL of the remote API, without a trailing slash.
	BaseURL string

	httpClient *http.Client
}

// New creates a Client against the given base URL. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		// No request timeout: a stuck request is the caller's problem,
		// surfaced by its own loader fallback.
		httpClient: &http.Client{},
	}
}

// SetTimeout sets the timeout on the underlying HTTP client.
func (c *Client) SetTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// ListUsers calls GET /users and returns every user profile.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser calls GET /users/{id} and returns one user profile.
func (c *Client) GetUser(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListTasksForUser calls GET /todos?userId={id} and returns the user's tasks
// in remote order.
func (c *Client) ListTasksForUser(ctx context.Context, userID int) (model.Tasks, error) {
	var tasks model.Tasks
	if err := c.get(ctx, fmt.Sprintf("/todos?userId=%d", userID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask calls POST /todos. The remote mock accepts the payload and echoes
// a fabricated record whose id must not be trusted; callers assign their own.
func (c *Client) CreateTask(ctx context.Context, ownerID int, title string, completed bool) (*model.Task, error) {
	payload := model.Task{
		UserID:    ownerID,
		Title:     title,
		Completed: completed,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}

	var created model.Task
	if err := c.request(ctx, http.MethodPost, "/todos", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	return c.request(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteError{Status: resp.StatusCode}
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return nil
}
