package services

import (
	"slices"
	"sync"

	"eventsboard/internal/domain"
)

// FilterEngine owns the filter state of the events list and the visible subset
// derived from it. Every transition recomputes from the full snapshot.
type FilterEngine struct {
	mu         sync.RWMutex
	events     []domain.Event
	categories []domain.Category
	state      domain.FilterState
	visible    []domain.Event
}

// NewFilterEngine returns an engine over a snapshot of events. A nil snapshot
// is the pre-load state and behaves as an empty dataset.
func NewFilterEngine(events []domain.Event, categories []domain.Category) *FilterEngine {
	e := &FilterEngine{
		events:     slices.Clone(events),
		categories: slices.Clone(categories),
	}
	e.visible = domain.Filter(e.events, e.state)
	return e
}

// ApplySearch stores text as the search query and returns the new visible set.
func (e *FilterEngine) ApplySearch(text string) []domain.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transition(e.state.WithSearch(text))
}

// ApplyCategory stores the category selector and returns the new visible set.
// An empty categoryID clears the category filter.
func (e *FilterEngine) ApplyCategory(categoryID string) []domain.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transition(e.state.WithCategory(categoryID))
}

// Reset clears both filters. The visible set becomes the full dataset.
func (e *FilterEngine) Reset() []domain.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transition(domain.FilterState{})
}

func (e *FilterEngine) transition(next domain.FilterState) []domain.Event {
	e.state = next
	e.visible = domain.Filter(e.events, e.state)
	return slices.Clone(e.visible)
}

// Visible returns a copy of the currently visible events.
func (e *FilterEngine) Visible() []domain.Event {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.visible)
}

// State returns the current filter state.
func (e *FilterEngine) State() domain.FilterState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// CanReset reports whether any filter is active.
func (e *FilterEngine) CanReset() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.CategoryActive() || e.state.SearchActive()
}

// Len returns the size of the full dataset.
func (e *FilterEngine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.events)
}

// Load replaces the snapshot, keeping the current filters.
func (e *FilterEngine) Load(events []domain.Event, categories []domain.Category) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = slices.Clone(events)
	e.categories = slices.Clone(categories)
	e.visible = domain.Filter(e.events, e.state)
}

// Append adds an event returned by the backend to the snapshot. It replaces an
// existing event with the same id.
func (e *FilterEngine) Append(event domain.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := slices.IndexFunc(e.events, func(ev domain.Event) bool { return ev.ID == event.ID }); i >= 0 {
		e.events[i] = event
	} else {
		e.events = append(e.events, event)
	}
	e.visible = domain.Filter(e.events, e.state)
}

// Categories returns the category reference data.
func (e *FilterEngine) Categories() []domain.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.categories)
}

// CategoryNames resolves the event's category ids to names, skipping unknown ids.
func (e *FilterEngine) CategoryNames(event domain.Event) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(event.CategoryIDs))
	for _, id := range event.CategoryIDs {
		for _, c := range e.categories {
			if c.ID == id {
				names = append(names, c.Name)
				break
			}
		}
	}
	return names
}
