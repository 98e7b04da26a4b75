package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abelxmendoza/Lore-Book-sub011/internal/application/handlers"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/entities"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/ports"
	"github.com/abelxmendoza/Lore-Book-sub011/internal/domain/services"
)

func newSkillsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Track skills and XP",
	}

	cmd.AddCommand(
		newSkillsListCmd(),
		newSkillsShowCmd(),
		newSkillsCreateCmd(),
		newSkillsUpdateCmd(),
		newSkillsDeleteCmd(),
		newSkillsAddXPCmd(),
		newSkillsExtractCmd(),
	)

	return cmd
}

func newSkillsListCmd() *cobra.Command {
	var (
		activeOnly bool
		category   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List skills with level progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				rows, err := d.Skills.List(cmd.Context(), ports.SkillListOptions{
					ActiveOnly: activeOnly,
					Category:   category,
				})
				if err != nil {
					return err
				}

				if len(rows) == 0 {
					fmt.Println("No skills found.")
					return nil
				}
				for _, row := range rows {
					displaySkillRow(row)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&activeOnly, "active", "a", false, "Show only active skills")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")

	return cmd
}

func newSkillsShowCmd() *cobra.Command {
	var history int

	cmd := &cobra.Command{
		Use:   "show <skill-id>",
		Short: "Show one skill with its progress history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				row, log, err := d.Skills.Show(cmd.Context(), args[0], history)
				if err != nil {
					return err
				}

				displaySkillRow(*row)
				if len(log) == 0 {
					fmt.Println("  no recorded progress")
					return nil
				}
				for _, p := range log {
					fmt.Printf("  %s  +%.0f XP", p.RecordedAt.Format("2006-01-02"), p.XPDelta)
					if p.Reason != "" {
						fmt.Printf("  (%s)", p.Reason)
					}
					fmt.Println()
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&history, "history", DefaultHistoryLimit, "Number of progress records to show")

	return cmd
}

func newSkillsCreateCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a new skill",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				row, err := d.Skills.Create(cmd.Context(), strings.Join(args, " "), category)
				if err != nil {
					return err
				}
				fmt.Println("Skill created:")
				displaySkillRow(*row)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Skill category")

	return cmd
}

func newSkillsUpdateCmd() *cobra.Command {
	var (
		name     string
		category string
		active   bool
	)

	cmd := &cobra.Command{
		Use:   "update <skill-id>",
		Short: "Update a skill's name, category or active state",
		Long:  "Patches a skill. Flags that are not set leave the current values unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := services.UpdateSkillRequest{Name: name, Category: category}
			if cmd.Flags().Changed("active") {
				req.Active = &active
			}

			return withDeps(func(d *Deps) error {
				row, err := d.Skills.Update(cmd.Context(), args[0], req)
				if err != nil {
					return err
				}
				fmt.Println("Skill updated:")
				displaySkillRow(*row)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().BoolVar(&active, "active", true, "Set the active state")

	return cmd
}

func newSkillsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <skill-id>",
		Short: "Remove a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				if err := d.Skills.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Deleted skill %s.\n", args[0])
				return nil
			})
		},
	}
}

func newSkillsAddXPCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "add-xp <skill-id> <amount>",
		Short: "Credit XP to a skill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			return withDeps(func(d *Deps) error {
				row, err := d.Skills.AddXP(cmd.Context(), args[0], amount, reason)
				if err != nil {
					return err
				}
				fmt.Printf("Added %.0f XP.\n", amount)
				displaySkillRow(*row)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "What earned the XP")

	return cmd
}

func newSkillsExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <text>",
		Short: "Extract skill mentions from free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				skills, err := d.Skills.Extract(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}

				if len(skills) == 0 {
					fmt.Println("No skills found in text.")
					return nil
				}
				fmt.Printf("Found %d skills:\n", len(skills))
				for _, s := range skills {
					displaySkill(s)
				}
				return nil
			})
		},
	}
}

func displaySkillRow(row handlers.SkillRow) {
	displaySkill(row.Skill)
	fmt.Printf("    level progress: %.0f%%\n", row.Progress)
}

func displaySkill(s entities.Skill) {
	status := ""
	if !s.Active {
		status = "  (inactive)"
	}
	fmt.Printf("  %s  Lv%d %s%s\n", s.ID, s.Level, s.Name, status)
	if s.Category != "" {
		fmt.Printf("    category: %s\n", s.Category)
	}
}
