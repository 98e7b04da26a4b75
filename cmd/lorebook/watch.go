package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/infrastructure/config"
)

func newWatchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive search mode",
		Long: "Type queries and see results as you go. Input is debounced, so rapid retyping " +
			"only ever issues one request, and a newer query always supersedes an older one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultSearchLimit, "Maximum results per bucket")

	return cmd
}

func runWatch(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withInternalDeps(func(d *internalDeps) error {
		// Config edits apply without a restart. This mostly matters for
		// the mock-data toggle while a session is open.
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			watcher := config.NewWatcher(d.BasePath, d.Log)
			if err := watcher.Run(watchCtx, func(c *config.Config) {
				d.Registry.SetEnabled(c.Mock.Enabled)
			}); err != nil {
				d.Log.Warn().Err(err).Msg("config watching unavailable")
			}
		}()

		// Surface toggle changes so a mid-session config edit is visible
		// without restarting.
		toggles := d.Registry.Subscribe()
		go func() {
			for {
				select {
				case <-watchCtx.Done():
					return
				case enabled := <-toggles:
					if enabled {
						fmt.Println("\nMock data enabled: empty lists fall back to sample data.")
					} else {
						fmt.Println("\nMock data disabled: only live results are shown.")
					}
					fmt.Print("> ")
				}
			}
		}()

		session := services.NewSearchSession(d.searchSvc, 0, limit)
		defer session.Close()

		go printSessionResults(watchCtx, session)

		return runWatchLoop(ctx, session)
	})
}

func runWatchLoop(ctx context.Context, session *services.SearchSession) error {
	fmt.Println("Lorebook interactive search. Type a query and press Enter.")
	fmt.Println("Commands: 'quit' to exit, 'help' for help")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return nil
		case "help":
			fmt.Println("Enter any text to search. A newer query cancels the previous one.")
			continue
		}

		session.Submit(line)
	}

	return scanner.Err()
}

func printSessionResults(ctx context.Context, session *services.SearchSession) {
	for {
		select {
		case <-ctx.Done():
			return
		case result, ok := <-session.Results():
			if !ok {
				return
			}
			fmt.Println()
			total := services.TotalMemories(result.Results)
			if total == 0 {
				fmt.Printf("No memories found for %q.\n", result.Query)
			} else {
				fmt.Printf("Results for %q:\n\n", result.Query)
				for _, bucket := range result.Results {
					displayBucket(bucket)
				}
			}
			fmt.Print("> ")
		}
	}
}
