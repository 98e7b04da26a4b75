package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/api"
)

func newPopulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "populate",
		Short: "Ask the backend to load sample data",
		Long:  "Triggers the backend's dummy-data endpoint, resetting it to the sample data set. Development only.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(client *api.Client) error {
				if err := client.PopulateDummyData(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Backend repopulated with sample data.")
				return nil
			})
		},
	}
}
