package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/application/handlers"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search memories",
		Long:  "Runs semantic and keyword search in parallel and shows the aggregated result buckets.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultSearchLimit, "Maximum results per bucket")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		outcome := d.Search.Handle(ctx, query, limit)
		displayOutcome(outcome)
		return nil
	})
}

func displayOutcome(outcome *handlers.SearchOutcome) {
	if outcome.Total == 0 {
		fmt.Printf("No memories found for %q.\n", outcome.Query)
		return
	}

	fmt.Printf("Found %d memories for %q:\n\n", outcome.Total, outcome.Query)
	for _, bucket := range outcome.Results {
		displayBucket(bucket)
	}
}

func displayBucket(bucket entities.SearchResult) {
	switch bucket.Type {
	case entities.ResultTypeSemantic:
		fmt.Println("Semantic matches:")
	case entities.ResultTypeKeyword:
		fmt.Println("Keyword matches:")
	case entities.ResultTypeCluster:
		fmt.Printf("Cluster: %s", bucket.ClusterLabel)
		if bucket.ClusterReason != "" {
			fmt.Printf(" (%s)", bucket.ClusterReason)
		}
		fmt.Println()
	}

	for _, card := range bucket.Memories {
		displayCard(card)
	}
	fmt.Println()
}

func displayCard(card entities.Card) {
	fmt.Printf("  %s", card.Title)
	if !card.Date.IsZero() {
		fmt.Printf("  [%s]", card.Date.Format("2006-01-02"))
	}
	fmt.Println()
	if len(card.Tags) > 0 {
		fmt.Printf("    tags: %s\n", strings.Join(card.Tags, ", "))
	}
	if card.Mood != "" {
		fmt.Printf("    mood: %s\n", card.Mood)
	}
}
