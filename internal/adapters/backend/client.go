package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventsboard/internal/domain"
)

// APIError is a non-2xx response from the events backend.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %s", e.Status)
}

// Is lets errors.Is(err, domain.ErrNotFound) match a 404.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to the events REST backend. It implements domain.EventClient
// and domain.ReferenceRepository.
type Client struct {
	baseURL string
	client  *http.Client
}

var (
	_ domain.EventClient         = (*Client)(nil)
	_ domain.ReferenceRepository = (*Client)(nil)
)

// NewClient returns a client for the backend at baseURL (e.g. "http://localhost:3000").
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (c *Client) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.doJSON(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	var event domain.Event
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &event); err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return &event, nil
}

func (c *Client) CreateEvent(ctx context.Context, payload domain.NewEventPayload) (*domain.Event, error) {
	var event domain.Event
	if err := c.doJSON(ctx, http.MethodPost, "/events", payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}
