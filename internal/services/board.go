package services

import (
	"context"
	"log/slog"

	"eventsboard/internal/domain"
)

// Board ties the data fetcher, the filter engine and the submission workflow
// together: a created event is appended to the engine's dataset.
type Board struct {
	Fetcher  *DataFetcher
	Engine   *FilterEngine
	Workflow *SubmissionWorkflow
	logger   *slog.Logger
}

// NewBoard builds a board with an empty dataset. Call Reload to populate it.
func NewBoard(fetcher *DataFetcher, client domain.EventClient, notifier domain.Notifier, navigator domain.Navigator, logger *slog.Logger, opts ...WorkflowOption) *Board {
	engine := NewFilterEngine(nil, nil)
	opts = append(opts, OnCreated(engine.Append))
	return &Board{
		Fetcher:  fetcher,
		Engine:   engine,
		Workflow: NewSubmissionWorkflow(client, notifier, navigator, logger, opts...),
		logger:   logger,
	}
}

// Reload fetches events and reference data and swaps them into the engine and
// the form. On failure the previous dataset stays in place.
func (b *Board) Reload(ctx context.Context) error {
	snap, err := b.Fetcher.Load(ctx)
	if err != nil {
		b.logger.ErrorContext(ctx, "board reload failed", "err", err)
		return err
	}
	b.Engine.Load(snap.Events, snap.Reference.Categories)
	b.Workflow.SetReferenceData(snap.Reference)
	return nil
}
