package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show details of an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		client := newBackendClient(cfg)
		event, err := client.GetEvent(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(os.Stdout, event)
		}

		names := categoryNames(event.CategoryIDs, nil)
		if reference, closeRef, err := newReferenceRepository(cmd.Context(), cfg, client); err == nil {
			defer closeRef()
			if categories, err := reference.ListCategories(cmd.Context()); err == nil {
				names = categoryNames(event.CategoryIDs, categories)
			} else {
				logger.Warn("could not load categories", "err", err)
			}
		}
		printEvent(os.Stdout, *event, names)
		return nil
	},
}
