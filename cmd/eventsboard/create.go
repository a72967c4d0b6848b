package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"eventsboard/internal/domain"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := formFromFlags(cmd)

		board, closeRef, err := newBoard(cmd.Context(), newNotifier(cfg, logger, terminalNotifier{w: os.Stderr}), terminalNavigator{w: os.Stdout})
		if err != nil {
			return err
		}
		defer closeRef()

		// Reference data only tightens validation; the backend still decides.
		if err := board.Reload(cmd.Context()); err != nil {
			logger.Warn("could not load reference data", "err", err)
		}

		minDate := board.Workflow.Open()
		logger.Debug("form opened", "min_date", minDate)

		created, err := board.Workflow.Submit(cmd.Context(), form)
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			printFieldErrors(os.Stderr, verrs)
			return errors.New("event form is invalid")
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(os.Stdout, created)
		}
		printEvent(os.Stdout, *created, board.Engine.CategoryNames(*created))
		return nil
	},
}

func init() {
	createCmd.Flags().StringP("title", "t", "", "event title")
	createCmd.Flags().StringP("description", "d", "", "event description")
	createCmd.Flags().String("image", "", "image URL")
	createCmd.Flags().StringP("location", "l", "", "event location")
	createCmd.Flags().String("start", "", "start time (YYYY-MM-DDTHH:MM)")
	createCmd.Flags().String("end", "", "end time (YYYY-MM-DDTHH:MM)")
	createCmd.Flags().StringSliceP("category", "c", nil, "category id (repeatable)")
	createCmd.Flags().StringP("organizer", "o", "", "organizer user id")
}

func formFromFlags(cmd *cobra.Command) domain.EventForm {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	image, _ := cmd.Flags().GetString("image")
	location, _ := cmd.Flags().GetString("location")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	categories, _ := cmd.Flags().GetStringSlice("category")
	organizer, _ := cmd.Flags().GetString("organizer")
	selected := make([]domain.Selection, 0, len(categories))
	for _, c := range categories {
		selected = append(selected, domain.Selection(c))
	}
	return domain.EventForm{
		Title:       title,
		Description: description,
		Image:       image,
		Location:    location,
		StartTime:   start,
		EndTime:     end,
		CategoryIDs: selected,
		CreatedBy:   domain.Selection(organizer),
	}
}

// terminalNotifier prints notifications the way the page shows toasts.
type terminalNotifier struct {
	w io.Writer
}

func (t terminalNotifier) Notify(_ context.Context, n domain.Notification) error {
	_, err := fmt.Fprintf(t.w, "[%s] %s: %s\n", n.Status, n.Title, n.Description)
	return err
}

// terminalNavigator prints where the page would navigate to.
type terminalNavigator struct {
	w io.Writer
}

func (t terminalNavigator) Navigate(_ context.Context, path string) {
	fmt.Fprintf(t.w, "Created %s\n", path)
}

func printFieldErrors(w io.Writer, verrs domain.ValidationErrors) {
	for _, fe := range verrs {
		fmt.Fprintf(w, "  %-12s %s\n", flagName(fe.Field)+":", fe.Message)
	}
}

// flagName maps a form field to the create flag that sets it.
func flagName(field string) string {
	switch field {
	case "startTime":
		return "start"
	case "endTime":
		return "end"
	case "categoryIds":
		return "category"
	case "createdBy":
		return "organizer"
	default:
		return field
	}
}
