package cli

import (
	"github.com/spf13/cobra"
)

func newPenaltyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "penalty",
		Short: "Penalty catalogue commands",
	}

	cmd.AddCommand(newPenaltyListCmd())
	cmd.AddCommand(newPenaltyCreateCmd())
	cmd.AddCommand(newPenaltyUpdateCmd())
	cmd.AddCommand(newPenaltyDeleteCmd())

	return cmd
}

func newPenaltyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the season's penalty catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Penalty

			if err := client.Get("/api/v1/penalties", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPenaltyCreateCmd() *cobra.Command {
	var text string
	var amount float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a catalogue entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"text": text, "amount": amount}
			var result Penalty

			if err := client.Post("/api/v1/penalties", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Description (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount in euros")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newPenaltyUpdateCmd() *cobra.Command {
	var text string
	var amount float64

	cmd := &cobra.Command{
		Use:   "update <penalty-id>",
		Short: "Edit a catalogue entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"text": text, "amount": amount}
			var result Penalty

			if err := client.Put("/api/v1/penalties/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Description (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount in euros")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newPenaltyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <penalty-id>",
		Short: "Remove a catalogue entry (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/penalties/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Penalty deleted")
			return nil
		},
	}
}
