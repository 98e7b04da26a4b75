package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/devserver"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local development backend",
		Long:  "Starts an in-memory backend with sample data, serving the full API on the given address.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger("info")
			fmt.Printf("Development backend listening on %s\n", addr)
			return devserver.NewServer(log).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8477", "Address to listen on")

	return cmd
}
