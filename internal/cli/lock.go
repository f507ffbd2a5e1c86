package cli

import (
	"github.com/spf13/cobra"
)

func newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Fixed-player rule commands",
	}

	cmd.AddCommand(newLockListCmd())
	cmd.AddCommand(newLockRecomputeCmd())
	cmd.AddCommand(newLockAvailabilityCmd())

	return cmd
}

func newLockListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the lock index",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LockEntry

			if err := client.Get("/api/v1/locks", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLockRecomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Force a full eligibility recompute",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RecomputeResult

			if err := client.Post("/api/v1/locks/recompute", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLockAvailabilityCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show players already assigned on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string][]string

			if err := client.Get("/api/v1/availability?date="+date, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
