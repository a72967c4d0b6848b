package domain

import (
	"context"
	"fmt"
	"slices"
)

// DateTimeLayout is the wire format of event start and end times (HTML datetime-local).
const DateTimeLayout = "2006-01-02T15:04"

// Event represents a scheduled event as stored by the backend.
// swagger:model Event
type Event struct {
	ID          int    `json:"id"`
	CreatedBy   int    `json:"createdBy"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CategoryIDs []int  `json:"categoryIds"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// HasCategory reports whether categoryID is one of the event's categories.
func (e Event) HasCategory(categoryID int) bool {
	return slices.Contains(e.CategoryIDs, categoryID)
}

// EventPath returns the detail view path for the event with the given id.
func EventPath(id int) string {
	return fmt.Sprintf("/event/%d", id)
}

// EventClient is the events REST backend.
type EventClient interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id int) (*Event, error)
	CreateEvent(ctx context.Context, payload NewEventPayload) (*Event, error)
}
