package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"eventsboard/internal/domain"
	"eventsboard/internal/services"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printEventList(w io.Writer, engine *services.FilterEngine) {
	visible := engine.Visible()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTART\tEND\tLOCATION\tCATEGORIES")
	for _, e := range visible {
		title := e.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			title,
			e.StartTime,
			e.EndTime,
			e.Location,
			strings.Join(engine.CategoryNames(e), ", "),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d events (%d total)\n", len(visible), engine.Len())
}

func printEvent(w io.Writer, e domain.Event, categories []string) {
	fmt.Fprintf(w, "ID:          %d\n", e.ID)
	fmt.Fprintf(w, "Title:       %s\n", e.Title)
	fmt.Fprintf(w, "Start:       %s\n", e.StartTime)
	fmt.Fprintf(w, "End:         %s\n", e.EndTime)
	fmt.Fprintf(w, "Location:    %s\n", e.Location)
	if len(categories) > 0 {
		fmt.Fprintf(w, "Categories:  %s\n", strings.Join(categories, ", "))
	}
	if e.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", e.Description)
	}
	fmt.Fprintf(w, "Link:        %s\n", domain.EventPath(e.ID))
}

// categoryNames resolves ids against categories, falling back to the raw id.
func categoryNames(ids []int, categories []domain.Category) []string {
	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, strconv.Itoa(id))
		}
	}
	return names
}
