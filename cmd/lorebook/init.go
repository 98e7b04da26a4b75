package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize lorebook configuration",
		Long:  "Creates a .lorebook directory with default configuration pointing at a local backend.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("lorebook already initialized in %s", cwd)
	}

	if err := config.Write(cwd, config.Default()); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.FilePath(cwd))
	fmt.Println("Lorebook initialized successfully!")
	fmt.Println("Run 'lorebook serve' to start a local development backend.")
	return nil
}
