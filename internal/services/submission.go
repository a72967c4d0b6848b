package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventsboard/internal/domain"
)

// Notification texts emitted by the submission workflow.
const (
	SuccessTitle       = "Success"
	SuccessDescription = "Event was added"
	FailureTitle       = "Error while creating event"
)

// SubmissionWorkflow validates the new-event form, submits it and reacts to the
// outcome. It moves Idle -> Validating -> Submitting -> Succeeded|Failed and
// rejects a second Submit while one is in flight.
type SubmissionWorkflow struct {
	client    domain.EventClient
	notifier  domain.Notifier
	navigator domain.Navigator
	logger    *slog.Logger
	now       func() time.Time
	location  *time.Location
	onCreated func(domain.Event)

	mu        sync.Mutex
	reference domain.ReferenceData
	state     domain.WorkflowState
	open      bool
	minDate   string
}

// WorkflowOption configures a SubmissionWorkflow.
type WorkflowOption func(*SubmissionWorkflow)

// WithClock sets the clock used to compute the form's minimum date.
func WithClock(now func() time.Time) WorkflowOption {
	return func(w *SubmissionWorkflow) { w.now = now }
}

// WithLocation sets the time zone the minimum date is expressed in. Defaults to UTC.
func WithLocation(loc *time.Location) WorkflowOption {
	return func(w *SubmissionWorkflow) { w.location = loc }
}

// WithReferenceData sets the users and categories the form offers.
func WithReferenceData(ref domain.ReferenceData) WorkflowOption {
	return func(w *SubmissionWorkflow) { w.reference = ref }
}

// OnCreated registers a callback run with each event the backend creates.
func OnCreated(fn func(domain.Event)) WorkflowOption {
	return func(w *SubmissionWorkflow) { w.onCreated = fn }
}

// NewSubmissionWorkflow returns an idle workflow with the form closed.
func NewSubmissionWorkflow(client domain.EventClient, notifier domain.Notifier, navigator domain.Navigator, logger *slog.Logger, opts ...WorkflowOption) *SubmissionWorkflow {
	w := &SubmissionWorkflow{
		client:    client,
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
		now:       time.Now,
		location:  time.UTC,
		state:     domain.StateIdle,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Open shows the form and fixes its minimum date to the current minute.
// The minimum is not re-evaluated until the form is opened again.
func (w *SubmissionWorkflow) Open() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = true
	w.minDate = w.now().In(w.location).Format(domain.DateTimeLayout)
	if w.state != domain.StateSubmitting {
		w.state = domain.StateIdle
	}
	return w.minDate
}

// Close hides the form. An in-flight submission still runs to completion.
func (w *SubmissionWorkflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = false
	if w.state != domain.StateSubmitting {
		w.state = domain.StateIdle
	}
}

// IsOpen reports whether the form is shown.
func (w *SubmissionWorkflow) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// MinDate returns the minimum start and end time computed by Open.
func (w *SubmissionWorkflow) MinDate() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minDate
}

// State returns the current workflow state.
func (w *SubmissionWorkflow) State() domain.WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Reference returns the users and categories offered by the form.
func (w *SubmissionWorkflow) Reference() domain.ReferenceData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reference
}

// SetReferenceData replaces the form options, e.g. after a reload.
func (w *SubmissionWorkflow) SetReferenceData(ref domain.ReferenceData) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reference = ref
}

// Submit validates form and, when valid, issues a single create request.
// Validation failures return domain.ValidationErrors without any network call.
// Backend failures are reported through the notifier and returned; the form stays open.
func (w *SubmissionWorkflow) Submit(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	payload, err := w.begin(form)
	if err != nil {
		return nil, err
	}

	created, err := w.client.CreateEvent(ctx, payload)
	if err != nil {
		w.fail(ctx, err)
		return nil, fmt.Errorf("create event: %w", err)
	}
	w.succeed(ctx, *created)
	return created, nil
}

func (w *SubmissionWorkflow) begin(form domain.EventForm) (domain.NewEventPayload, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == domain.StateSubmitting {
		return domain.NewEventPayload{}, domain.ErrSubmissionInProgress
	}
	if !w.open {
		return domain.NewEventPayload{}, domain.ErrFormClosed
	}
	w.state = domain.StateValidating
	if errs := form.Validate(w.minDate, w.reference); len(errs) > 0 {
		w.state = domain.StateIdle
		return domain.NewEventPayload{}, errs
	}
	w.state = domain.StateSubmitting
	return form.Payload(), nil
}

func (w *SubmissionWorkflow) succeed(ctx context.Context, created domain.Event) {
	w.mu.Lock()
	w.state = domain.StateSucceeded
	w.open = false
	w.mu.Unlock()

	w.logger.InfoContext(ctx, "event created", "event_id", created.ID)
	w.notify(ctx, domain.Notification{
		Status:      domain.NotificationSuccess,
		Title:       SuccessTitle,
		Description: SuccessDescription,
	})
	if w.onCreated != nil {
		w.onCreated(created)
	}
	w.navigator.Navigate(ctx, domain.EventPath(created.ID))
}

func (w *SubmissionWorkflow) fail(ctx context.Context, cause error) {
	w.mu.Lock()
	w.state = domain.StateFailed
	w.mu.Unlock()

	w.logger.ErrorContext(ctx, "event creation failed", "err", cause)
	w.notify(ctx, domain.Notification{
		Status:      domain.NotificationError,
		Title:       FailureTitle,
		Description: cause.Error(),
	})
}

func (w *SubmissionWorkflow) notify(ctx context.Context, n domain.Notification) {
	if err := w.notifier.Notify(ctx, n); err != nil {
		w.logger.WarnContext(ctx, "notification not delivered", "title", n.Title, "err", err)
	}
}
