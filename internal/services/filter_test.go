package services

import (
	"strconv"
	"testing"

	"eventsboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEngine_ApplySearch(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []int
	}{
		{"empty query shows all", "", []int{1, 2, 3, 4}},
		{"case insensitive", "JAZZ", []int{1, 3}},
		{"inner substring", "zz", []int{1, 3}},
		{"matches across words", "h m", []int{3}},
		{"no match", "opera", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFilterEngine(testEvents(), testCategories)
			got := e.ApplySearch(tt.search)
			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, tt.search, e.State().SearchQuery)
		})
	}
}

func TestFilterEngine_ApplyCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantIDs  []int
	}{
		{"music", "1", []int{1, 3}},
		{"tech", "2", []int{2, 3}},
		{"unused category", "9", []int{}},
		{"malformed id yields empty set", "music", []int{}},
		{"surrounding whitespace tolerated", " 3 ", []int{4}},
		{"empty clears the filter", "", []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFilterEngine(testEvents(), testCategories)
			got := e.ApplyCategory(tt.category)
			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, tt.category, e.State().Category)
		})
	}
}

func TestFilterEngine_SearchWithinCategory(t *testing.T) {
	e := NewFilterEngine(testEvents(), testCategories)

	e.ApplyCategory("2")
	assert.Equal(t, []int{3}, ids(e.ApplySearch("jazz")))

	// Widening the search recomputes from the full dataset, not the narrowed view.
	assert.Equal(t, []int{2, 3}, ids(e.ApplySearch("")))
}

func TestFilterEngine_CategoryChangeKeepsSearch(t *testing.T) {
	e := NewFilterEngine(testEvents(), testCategories)

	e.ApplySearch("tech")
	assert.Equal(t, []int{2, 3}, ids(e.ApplyCategory("2")))
	// Switching category does not narrow within the previous category.
	assert.Equal(t, []int{3}, ids(e.ApplyCategory("1")))
	assert.Equal(t, []int{}, ids(e.ApplyCategory("3")))
}

func TestFilterEngine_Commutative(t *testing.T) {
	for _, c := range []string{"1", "2", "3", "7"} {
		for _, s := range []string{"", "jazz", "t", "park"} {
			a := NewFilterEngine(testEvents(), testCategories)
			a.ApplyCategory(c)
			gotA := a.ApplySearch(s)

			b := NewFilterEngine(testEvents(), testCategories)
			b.ApplySearch(s)
			gotB := b.ApplyCategory(c)

			require.Equal(t, ids(gotA), ids(gotB), "category %s search %q", c, s)
		}
	}
}

func TestFilterEngine_Reset(t *testing.T) {
	e := NewFilterEngine(testEvents(), testCategories)
	assert.False(t, e.CanReset())

	e.ApplyCategory("1")
	e.ApplySearch("night")
	assert.True(t, e.CanReset())

	assert.Equal(t, []int{1, 2, 3, 4}, ids(e.Reset()))
	assert.Equal(t, domain.FilterState{}, e.State())
	assert.False(t, e.CanReset())

	// idempotent
	assert.Equal(t, []int{1, 2, 3, 4}, ids(e.Reset()))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(e.Visible()))
}

func TestFilterEngine_EndToEnd(t *testing.T) {
	events := []domain.Event{
		{ID: 1, Title: "Jazz Night", CategoryIDs: []int{1}},
		{ID: 2, Title: "Tech Talk", CategoryIDs: []int{2}},
	}
	categories := []domain.Category{{ID: 1, Name: "Music"}, {ID: 2, Name: "Tech"}}

	e := NewFilterEngine(events, categories)
	e.ApplyCategory(strconv.Itoa(1))
	assert.Equal(t, []domain.Event{events[0]}, e.ApplySearch("jazz"))

	fresh := NewFilterEngine(events, categories)
	assert.Equal(t, []domain.Event{events[0]}, fresh.ApplySearch("zz"))
}

func TestFilterEngine_PreLoadIsEmpty(t *testing.T) {
	e := NewFilterEngine(nil, nil)
	assert.Empty(t, e.Visible())
	assert.Empty(t, e.ApplySearch("jazz"))
	assert.Empty(t, e.ApplyCategory("1"))
	assert.Equal(t, 0, e.Len())
}

func TestFilterEngine_LoadKeepsFilters(t *testing.T) {
	e := NewFilterEngine(nil, nil)
	e.ApplySearch("jazz")

	e.Load(testEvents(), testCategories)
	assert.Equal(t, []int{1, 3}, ids(e.Visible()))
	assert.Equal(t, "jazz", e.State().SearchQuery)
}

func TestFilterEngine_Append(t *testing.T) {
	e := NewFilterEngine(testEvents(), testCategories)
	e.ApplyCategory("1")

	e.Append(domain.Event{ID: 5, Title: "Jazz Brunch", CategoryIDs: []int{1}})
	assert.Equal(t, []int{1, 3, 5}, ids(e.Visible()))
	assert.Equal(t, 5, e.Len())

	// same id replaces
	e.Append(domain.Event{ID: 5, Title: "Tech Brunch", CategoryIDs: []int{2}})
	assert.Equal(t, []int{1, 3}, ids(e.Visible()))
	assert.Equal(t, 5, e.Len())
}

func TestFilterEngine_SnapshotIsolation(t *testing.T) {
	events := testEvents()
	e := NewFilterEngine(events, testCategories)
	events[0].Title = "Changed"

	got := e.Visible()
	assert.Equal(t, "Jazz Night", got[0].Title)
	got[1].Title = "Mutated"
	assert.Equal(t, "Tech Talk", e.Visible()[1].Title)
}

func TestFilterEngine_CategoryNames(t *testing.T) {
	e := NewFilterEngine(testEvents(), testCategories)
	assert.Equal(t, []string{"Music", "Tech"}, e.CategoryNames(domain.Event{CategoryIDs: []int{1, 2}}))
	assert.Equal(t, []string{"Sports"}, e.CategoryNames(domain.Event{CategoryIDs: []int{42, 3}}))
	assert.Empty(t, e.CategoryNames(domain.Event{}))
	assert.Equal(t, testCategories, e.Categories())
}
