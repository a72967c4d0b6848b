package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventsboard/internal/domain"
)

// Snapshot is everything the board needs at page load.
type Snapshot struct {
	Events    []domain.Event
	Reference domain.ReferenceData
}

// DataFetcher loads the event list and reference data.
type DataFetcher struct {
	events         domain.EventClient
	reference      domain.ReferenceRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewDataFetcher returns a fetcher. A zero timeout lets requests run to completion.
func NewDataFetcher(events domain.EventClient, reference domain.ReferenceRepository, logger *slog.Logger, timeout time.Duration) *DataFetcher {
	return &DataFetcher{
		events:         events,
		reference:      reference,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (f *DataFetcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.contextTimeout)
}

// LoadEvents fetches the full event list.
func (f *DataFetcher) LoadEvents(ctx context.Context) ([]domain.Event, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	events, err := f.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}

// LoadReference fetches users and categories.
func (f *DataFetcher) LoadReference(ctx context.Context) (domain.ReferenceData, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	users, err := f.reference.ListUsers(ctx)
	if err != nil {
		return domain.ReferenceData{}, fmt.Errorf("load users: %w", err)
	}
	categories, err := f.reference.ListCategories(ctx)
	if err != nil {
		return domain.ReferenceData{}, fmt.Errorf("load categories: %w", err)
	}
	if len(users) == 0 || len(categories) == 0 {
		f.logger.WarnContext(ctx, "reference data is incomplete, form options will be empty",
			"users", len(users), "categories", len(categories))
	}
	return domain.ReferenceData{Users: users, Categories: categories}, nil
}

// Load fetches reference data and events.
func (f *DataFetcher) Load(ctx context.Context) (*Snapshot, error) {
	ref, err := f.LoadReference(ctx)
	if err != nil {
		return nil, err
	}
	events, err := f.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}
	f.logger.InfoContext(ctx, "board data loaded", "events", len(events),
		"users", len(ref.Users), "categories", len(ref.Categories))
	return &Snapshot{Events: events, Reference: ref}, nil
}
