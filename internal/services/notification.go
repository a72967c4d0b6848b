package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"eventsboard/internal/domain"
)

// inboxCapacity bounds the undelivered notifications an Inbox keeps.
const inboxCapacity = 50

// Inbox queues notifications until a client drains them.
type Inbox struct {
	mu    sync.Mutex
	items []domain.Notification
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

func (i *Inbox) Notify(_ context.Context, n domain.Notification) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append(i.items, n)
	if len(i.items) > inboxCapacity {
		i.items = slices.Clone(i.items[len(i.items)-inboxCapacity:])
	}
	return nil
}

// Drain returns queued notifications oldest first and empties the inbox.
func (i *Inbox) Drain() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.items
	i.items = nil
	if out == nil {
		out = []domain.Notification{}
	}
	return out
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs success at info and errors at error level.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(ctx context.Context, n domain.Notification) error {
	level := slog.LevelInfo
	if n.Status == domain.NotificationError {
		level = slog.LevelError
	}
	l.logger.Log(ctx, level, n.Title, "status", n.Status, "description", n.Description)
	return nil
}

// EmailNotifier mails a copy of each notification to a fixed address.
type EmailNotifier struct {
	mailer   domain.Mailer
	renderer domain.NotificationRenderer
	to       string
}

// NewEmailNotifier returns a notifier using the given Mailer and renderer.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.NotificationRenderer, to string) *EmailNotifier {
	return &EmailNotifier{mailer: mailer, renderer: renderer, to: to}
}

func (e *EmailNotifier) Notify(ctx context.Context, n domain.Notification) error {
	msg, err := e.renderer.RenderNotification(domain.NotificationEmailData{
		Email:       e.to,
		Status:      n.Status,
		Title:       n.Title,
		Description: n.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to render notification email: %w", err)
	}
	if err := e.mailer.Send(ctx, e.to, msg.Subject, msg.HTML, msg.Text); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

// FanOut delivers each notification to every notifier and joins their errors.
type FanOut []domain.Notifier

func (f FanOut) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, notifier := range f {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// History records navigation targets.
type History struct {
	mu    sync.Mutex
	paths []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

func (h *History) Navigate(_ context.Context, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, path)
}

// Current returns the last navigation target, or "" before any navigation.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.paths) == 0 {
		return ""
	}
	return h.paths[len(h.paths)-1]
}

// Paths returns every navigation target in order.
func (h *History) Paths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.paths)
}
