package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/application/handlers"
)

func newProposalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Review pending extraction proposals",
	}

	cmd.AddCommand(
		newProposalsListCmd(),
		newProposalsApproveCmd(),
		newProposalsRejectCmd(),
	)

	return cmd
}

func newProposalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending proposals grouped by risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				queue, err := d.Review.Pending(cmd.Context())
				if err != nil {
					return err
				}
				displayQueue(queue)
				return nil
			})
		},
	}
}

func newProposalsApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <proposal-id>",
		Short: "Approve a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				queue, err := d.Review.Approve(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Approved %s. %d proposals remaining.\n", args[0], queue.Total)
				return nil
			})
		},
	}
}

func newProposalsRejectCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <proposal-id>",
		Short: "Reject a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				queue, err := d.Review.Reject(cmd.Context(), args[0], reason)
				if err != nil {
					return err
				}
				fmt.Printf("Rejected %s. %d proposals remaining.\n", args[0], queue.Total)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Why the proposal is being rejected")

	return cmd
}

func displayQueue(queue *handlers.Queue) {
	if queue.Total == 0 {
		fmt.Println("No pending proposals.")
		return
	}

	fmt.Printf("%d pending proposals:\n\n", queue.Total)
	for _, group := range queue.Groups {
		fmt.Printf("[%s]\n", group.Level)
		for _, p := range group.Proposals {
			fmt.Printf("  %s\n", p.ID)
			fmt.Printf("    %s (confidence %.0f%%)\n", p.ClaimText, p.Confidence*100)
			if p.SourceExcerpt != "" {
				fmt.Printf("    source: %q\n", p.SourceExcerpt)
			}
		}
		fmt.Println()
	}
}
