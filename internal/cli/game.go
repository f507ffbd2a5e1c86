package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game management commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameUpdateCmd())
	cmd.AddCommand(newGameAssignmentsCmd())
	cmd.AddCommand(newGameDeleteCmd())

	return cmd
}

func gameFlags(cmd *cobra.Command, teamID, date, kickoff, location *string) {
	cmd.Flags().StringVar(teamID, "team", "", "Team ID (required)")
	cmd.Flags().StringVar(date, "date", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(kickoff, "time", "", "Kick-off time, e.g. 14:00")
	cmd.Flags().StringVar(location, "location", "", "Location")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("date")
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the season's games ordered by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCreateCmd() *cobra.Command {
	var teamID, date, kickoff, location string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"team_id":  teamID,
				"date":     date,
				"time":     kickoff,
				"location": location,
			}
			var result Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	gameFlags(cmd, &teamID, &date, &kickoff, &location)

	return cmd
}

func newGameUpdateCmd() *cobra.Command {
	var teamID, date, kickoff, location string

	cmd := &cobra.Command{
		Use:   "update <game-id>",
		Short: "Update a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"team_id":  teamID,
				"date":     date,
				"time":     kickoff,
				"location": location,
			}
			var result Game

			if err := client.Put("/api/v1/games/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	gameFlags(cmd, &teamID, &date, &kickoff, &location)

	return cmd
}

func newGameAssignmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignments <game-id>",
		Short: "List a game's assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Assignment

			if err := client.Get("/api/v1/games/"+args[0]+"/assignments", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game and its assignments (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted")
			return nil
		},
	}
}
