package main

import (
	"os"

	"github.com/spf13/cobra"

	"eventsboard/internal/services"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events, optionally filtered by title and category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")

		client := newBackendClient(cfg)
		reference, closeRef, err := newReferenceRepository(cmd.Context(), cfg, client)
		if err != nil {
			return err
		}
		defer closeRef()

		snap, err := services.NewDataFetcher(client, reference, logger, cfg.BackendTimeout).Load(cmd.Context())
		if err != nil {
			return err
		}

		engine := services.NewFilterEngine(snap.Events, snap.Reference.Categories)
		if search != "" {
			engine.ApplySearch(search)
		}
		if category != "" {
			engine.ApplyCategory(category)
		}

		if jsonOutput {
			return printJSON(os.Stdout, engine.Visible())
		}
		printEventList(os.Stdout, engine)
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "case-insensitive title substring")
	listCmd.Flags().StringP("category", "c", "", "category id")
}
