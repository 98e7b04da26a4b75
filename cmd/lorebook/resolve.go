package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Manage duplicate entity resolution",
	}

	cmd.AddCommand(
		newResolveDashboardCmd(),
		newResolveMergeCmd(),
		newResolveDismissCmd(),
		newResolveRevertCmd(),
	)

	return cmd
}

func newResolveDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show entities, conflicts and merge history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				snap, err := d.Resolution.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				displayDashboard(snap)
				return nil
			})
		},
	}
}

func newResolveMergeCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "merge <source-id> <target-id>",
		Short: "Merge the source entity into the target",
		Long:  "Merges two entity records. A reason is required and the merge can be reverted later.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				snap, err := d.Resolution.Merge(cmd.Context(), args[0], args[1], reason)
				if err != nil {
					return err
				}
				fmt.Printf("Merged %s into %s.\n", args[0], args[1])
				fmt.Printf("%d conflicts remaining.\n", len(snap.Conflicts))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Why the entities are being merged (required)")

	return cmd
}

func newResolveDismissCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "dismiss <conflict-id>",
		Short: "Dismiss a conflict without merging",
		Long:  "Marks a suspected duplicate pair as distinct. The conflict will not resurface.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.InOrStdin(), fmt.Sprintf("Dismiss conflict %s? It will not resurface.", args[0])) {
				fmt.Println("Cancelled.")
				return nil
			}
			return withDeps(func(d *Deps) error {
				snap, err := d.Resolution.Dismiss(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Dismissed. %d conflicts remaining.\n", len(snap.Conflicts))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newResolveRevertCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "revert <merge-id>",
		Short: "Undo a previous merge",
		Long:  "Undoes a merge, restoring the absorbed entity. A merge can only be reverted once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.InOrStdin(), fmt.Sprintf("Revert merge %s?", args[0])) {
				fmt.Println("Cancelled.")
				return nil
			}
			return withDeps(func(d *Deps) error {
				_, err := d.Resolution.Revert(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Reverted merge %s.\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// confirm asks a yes/no question. Anything but an explicit yes is
// treated as no.
func confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(in)
	response, _ := reader.ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func displayDashboard(snap *entities.DashboardSnapshot) {
	fmt.Printf("Entities (%d):\n", len(snap.Entities))
	for _, e := range snap.Entities {
		fmt.Printf("  %s  [%s] %s", e.ID, e.Kind, e.Name)
		if len(e.Aliases) > 0 {
			fmt.Printf(" (aka %s)", strings.Join(e.Aliases, ", "))
		}
		fmt.Printf("  mentions: %d\n", e.MentionCount)
	}

	fmt.Printf("\nConflicts (%d):\n", len(snap.Conflicts))
	if len(snap.Conflicts) == 0 {
		fmt.Println("  none")
	}
	for _, c := range snap.Conflicts {
		fmt.Printf("  %s  %s <-> %s  similarity %.2f\n", c.ID, c.EntityAID, c.EntityBID, c.Similarity)
	}

	fmt.Printf("\nMerge history (%d):\n", len(snap.MergeHistory))
	if len(snap.MergeHistory) == 0 {
		fmt.Println("  none")
	}
	for _, m := range snap.MergeHistory {
		state := "revertible"
		if !m.CanRevert() {
			state = "final"
		}
		fmt.Printf("  %s  %s -> %s  %q  [%s]\n", m.ID, m.SourceID, m.TargetID, m.Reason, state)
	}
}
