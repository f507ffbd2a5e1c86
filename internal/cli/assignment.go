package cli

import (
	"github.com/spf13/cobra"
)

func newAssignmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignment",
		Short: "Assignment management commands",
	}

	cmd.AddCommand(newAssignmentCreateCmd())
	cmd.AddCommand(newAssignmentStatusCmd())
	cmd.AddCommand(newAssignmentFinalizeCmd())
	cmd.AddCommand(newAssignmentDeleteCmd())

	return cmd
}

func newAssignmentCreateCmd() *cobra.Command {
	var gameID, playerID, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a player for a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"game_id":   gameID,
				"player_id": playerID,
				"status":    status,
			}
			var result Assignment

			if err := client.Post("/api/v1/assignments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&status, "status", "", "Status: tentative, planned, substitute, played")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

func newAssignmentStatusCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "status <assignment-id>",
		Short: "Change an assignment's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"status": status}
			var result Assignment

			if err := client.Patch("/api/v1/assignments/"+args[0]+"/status", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (required)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newAssignmentFinalizeCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "finalize <assignment-id>",
		Short: "Mark a line-up entry as confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"finalized": !undo}
			var result Assignment

			if err := client.Patch("/api/v1/assignments/"+args[0]+"/finalized", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the confirmation instead")

	return cmd
}

func newAssignmentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <assignment-id>",
		Short: "Remove a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/assignments/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Assignment deleted")
			return nil
		},
	}
}
