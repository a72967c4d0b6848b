package domain

import (
	"strconv"
	"strings"
)

// FilterState is the transient view state of the events list.
// Category holds the raw selector value; "" means no category filter.
type FilterState struct {
	SearchQuery string `json:"search_query"`
	Category    string `json:"category"`
}

// CategoryActive reports whether a category filter is selected.
func (f FilterState) CategoryActive() bool {
	return f.Category != ""
}

// SearchActive reports whether a non-empty search string is set.
func (f FilterState) SearchActive() bool {
	return f.SearchQuery != ""
}

// MatchesCategory tests category membership. A selector that is not an integer
// never matches, so a malformed id narrows the view to nothing.
func (f FilterState) MatchesCategory(e Event) bool {
	id, err := strconv.Atoi(strings.TrimSpace(f.Category))
	if err != nil {
		return false
	}
	return e.HasCategory(id)
}

// MatchesSearch tests whether the event title contains the search query, ignoring case.
func (f FilterState) MatchesSearch(e Event) bool {
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(f.SearchQuery))
}

// WithSearch returns the state with the search query replaced.
func (f FilterState) WithSearch(text string) FilterState {
	f.SearchQuery = text
	return f
}

// WithCategory returns the state with the category selector replaced.
func (f FilterState) WithCategory(categoryID string) FilterState {
	f.Category = categoryID
	return f
}

// Filter derives the visible events from the full dataset. It never reads a
// previously filtered set, so the order in which filters were applied does not
// change the result.
func Filter(events []Event, state FilterState) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if state.CategoryActive() && !state.MatchesCategory(e) {
			continue
		}
		if state.SearchActive() && !state.MatchesSearch(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
