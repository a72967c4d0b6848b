package domain

import "math"

// PaginationParams holds offset-based pagination parameters for list queries.
// A PageSize of 0 means the whole list on a single page.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize, saturating at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Paginate returns the page of events selected by p. A page past the end is empty.
func Paginate(events []Event, p PaginationParams) []Event {
	if p.PageSize <= 0 {
		return events
	}
	start := p.Offset()
	if start >= len(events) {
		return []Event{}
	}
	end := start + min(p.PageSize, len(events)-start)
	return events[start:end]
}
