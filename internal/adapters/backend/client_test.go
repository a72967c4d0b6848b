package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHandler captures the incoming request and returns a canned response.
type testHandler struct {
	method      string
	path        string
	body        string
	contentType string
	calls       int

	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.calls++
	h.method = r.Method
	h.path = r.URL.Path
	h.contentType = r.Header.Get("Content-Type")
	data, _ := io.ReadAll(r.Body)
	h.body = string(data)

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", srv.Client())
}

func TestClient_ListEvents(t *testing.T) {
	h := &testHandler{responseBody: `[
		{"id":1,"createdBy":2,"title":"Jazz Night","description":"Live","image":"https://img/1.png","categoryIds":[1],"location":"Club","startTime":"2030-03-10T20:00","endTime":"2030-03-10T23:00"},
		{"id":2,"createdBy":1,"title":"Tech Talk","categoryIds":[2,3]}
	]`}
	c := newTestClient(t, h)

	events, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, http.MethodGet, h.method)
	assert.Equal(t, "/events", h.path)
	assert.Equal(t, domain.Event{
		ID: 1, CreatedBy: 2, Title: "Jazz Night", Description: "Live", Image: "https://img/1.png",
		CategoryIDs: []int{1}, Location: "Club", StartTime: "2030-03-10T20:00", EndTime: "2030-03-10T23:00",
	}, events[0])
	assert.Equal(t, []int{2, 3}, events[1].CategoryIDs)
}

func TestClient_ListEvents_EmptyBody(t *testing.T) {
	c := newTestClient(t, &testHandler{responseBody: `null`})

	events, err := c.ListEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestClient_ListEvents_ServerError(t *testing.T) {
	c := newTestClient(t, &testHandler{statusCode: http.StatusInternalServerError})

	_, err := c.ListEvents(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "500 Internal Server Error")
}

func TestClient_CreateEvent(t *testing.T) {
	h := &testHandler{statusCode: http.StatusCreated, responseBody: `{"id":42,"title":"Jazz Night","categoryIds":[1,2],"createdBy":3}`}
	c := newTestClient(t, h)

	event, err := c.CreateEvent(context.Background(), domain.NewEventPayload{
		Title:       "Jazz Night",
		Description: "Live",
		Image:       "https://img/1.png",
		Location:    "Club",
		StartTime:   "2030-03-10T20:00",
		EndTime:     "2030-03-10T23:00",
		CategoryIDs: []int{1, 2},
		CreatedBy:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, event.ID)
	assert.Equal(t, http.MethodPost, h.method)
	assert.Equal(t, "/events", h.path)
	assert.Equal(t, "application/json", h.contentType)
	assert.JSONEq(t, `{
		"title":"Jazz Night","description":"Live","image":"https://img/1.png","location":"Club",
		"startTime":"2030-03-10T20:00","endTime":"2030-03-10T23:00","categoryIds":[1,2],"createdBy":3
	}`, h.body)
}

func TestClient_CreateEvent_Failure(t *testing.T) {
	c := newTestClient(t, &testHandler{statusCode: http.StatusServiceUnavailable})

	_, err := c.CreateEvent(context.Background(), domain.NewEventPayload{Title: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "backend returned 503 Service Unavailable", err.Error())
}

func TestClient_CreateEvent_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := NewClient(url, nil)

	_, err := c.CreateEvent(context.Background(), domain.NewEventPayload{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach backend")
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	h := &testHandler{statusCode: http.StatusNotFound, responseBody: `{}`}
	c := newTestClient(t, h)

	_, err := c.GetEvent(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "/events/7", h.path)
}

func TestClient_ReferenceData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Ada","image":"https://img/ada.png"},{"id":2,"name":"Linus"}]`))
	})
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Music"},{"id":2,"name":"Tech"}]`))
	})
	c := newTestClient(t, mux)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.User{{ID: 1, Name: "Ada", Image: "https://img/ada.png"}, {ID: 2, Name: "Linus"}}, users)

	categories, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Music"}, {ID: 2, Name: "Tech"}}, categories)
}

func TestClient_DecodeError(t *testing.T) {
	c := newTestClient(t, &testHandler{responseBody: `not json`})

	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode backend response")
}
