package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent memories",
		Long:  "Lists the newest journal memories. Falls back to sample data when the backend is unreachable and mock data is enabled.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecent(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultRecentLimit, "Maximum number of memories to display")

	return cmd
}

func runRecent(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		cards := d.Library.Recent(ctx, limit)
		if len(cards) == 0 {
			fmt.Println("No memories found.")
			return nil
		}

		fmt.Printf("Showing %d memories:\n\n", len(cards))
		for _, card := range cards {
			displayCard(card)
		}
		return nil
	})
}

func newLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the location book",
		Long:  "Lists every place record. Falls back to sample data when the backend is unreachable and mock data is enabled.",
		RunE:  runLocations,
	}
}

func runLocations(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		locations := d.Library.Locations(ctx)
		if len(locations) == 0 {
			fmt.Println("No locations found.")
			return nil
		}

		fmt.Printf("Showing %d locations:\n\n", len(locations))
		for _, loc := range locations {
			fmt.Printf("  %s", loc.Name)
			if loc.Region != "" {
				fmt.Printf(" (%s)", loc.Region)
			}
			fmt.Println()
			if loc.Description != "" {
				fmt.Printf("    %s\n", loc.Description)
			}
			fmt.Printf("    visits: %d\n", loc.VisitCount)
		}
		return nil
	})
}
