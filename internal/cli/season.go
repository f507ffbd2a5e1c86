package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Season management commands",
	}

	cmd.AddCommand(newSeasonListCmd())
	cmd.AddCommand(newSeasonCreateCmd())
	cmd.AddCommand(newSeasonCurrentCmd())
	cmd.AddCommand(newSeasonSelectCmd())
	cmd.AddCommand(newSeasonSubstitutesCmd())
	cmd.AddCommand(newSeasonFundCmd())
	cmd.AddCommand(newSeasonDeleteCmd())

	return cmd
}

func newSeasonListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all seasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Season

			if err := client.Get("/api/v1/seasons", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSeasonCreateCmd() *cobra.Command {
	var name string
	var year int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"name": name, "year": year}
			var result Season

			if err := client.Post("/api/v1/seasons", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Season name, e.g. 2025/26 (required)")
	cmd.Flags().IntVar(&year, "year", 0, "Season year")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeasonCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current season",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Season

			if err := client.Get("/api/v1/seasons/current", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSeasonSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <season-id>",
		Short: "Switch the current season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Put("/api/v1/seasons/"+args[0]+"/current", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Current season set to " + args[0])
			return nil
		},
	}
}

func newSeasonSubstitutesCmd() *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:   "substitutes <season-id>",
		Short: "Toggle whether substitute appearances count toward locks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"substitute_counts": counts}
			var result Season

			if err := client.Patch("/api/v1/seasons/"+args[0]+"/substitute-counts", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&counts, "counts", true, "Whether substitutes count")

	return cmd
}

func newSeasonFundCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "fund <season-id>",
		Short: "Set the team fund balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]float64{"amount": amount}
			var result Season

			if err := client.Patch("/api/v1/seasons/"+args[0]+"/fund", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Fund balance in euros (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newSeasonDeleteCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete <season-id>",
		Short: "Delete a season and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("deleting a season removes all its data; pass --yes to confirm")
			}

			if err := client.Delete("/api/v1/seasons/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Season deleted")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "yes", false, "Confirm the delete")

	return cmd
}
