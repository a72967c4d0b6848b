package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"eventsboard/internal/domain"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventClient is an in-memory EventClient for tests.
type fakeEventClient struct {
	mu          sync.Mutex
	events      []domain.Event
	listErr     error
	createErr   error
	created     *domain.Event
	createCalls int
	lastPayload domain.NewEventPayload
	// when set, CreateEvent signals started and waits for release
	started chan struct{}
	release chan struct{}
}

func (f *fakeEventClient) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventClient) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventClient) CreateEvent(ctx context.Context, payload domain.NewEventPayload) (*domain.Event, error) {
	f.mu.Lock()
	f.createCalls++
	f.lastPayload = payload
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &domain.Event{
		ID:          100,
		Title:       payload.Title,
		CategoryIDs: payload.CategoryIDs,
		CreatedBy:   payload.CreatedBy,
	}, nil
}

func (f *fakeEventClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

// fakeReferenceRepo is an in-memory ReferenceRepository for tests.
type fakeReferenceRepo struct {
	users         []domain.User
	categories    []domain.Category
	usersErr      error
	categoriesErr error
}

func (f *fakeReferenceRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	return f.users, f.usersErr
}

func (f *fakeReferenceRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, f.categoriesErr
}

// recordingNotifier records every notification.
type recordingNotifier struct {
	mu    sync.Mutex
	items []domain.Notification
	err   error
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
	return r.err
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.items...)
}

var (
	testCategories = []domain.Category{{ID: 1, Name: "Music"}, {ID: 2, Name: "Tech"}, {ID: 3, Name: "Sports"}}
	testUsers      = []domain.User{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Linus"}}
)

func testEvents() []domain.Event {
	return []domain.Event{
		{ID: 1, Title: "Jazz Night", CategoryIDs: []int{1}},
		{ID: 2, Title: "Tech Talk", CategoryIDs: []int{2}},
		{ID: 3, Title: "Jazz & Tech Meetup", CategoryIDs: []int{1, 2}},
		{ID: 4, Title: "Yoga in the Park", CategoryIDs: []int{3}},
	}
}

func ids(events []domain.Event) []int {
	out := make([]int, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}
