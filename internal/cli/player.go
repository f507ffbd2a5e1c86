package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerBanCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

func playerFlags(cmd *cobra.Command, first, last, rating, color *string, rank *int) {
	cmd.Flags().StringVar(first, "first", "", "First name")
	cmd.Flags().StringVar(last, "last", "", "Last name")
	cmd.Flags().StringVar(rating, "rating", "", "League rating, e.g. 8,3")
	cmd.Flags().StringVar(color, "color", "", "Display color (hex)")
	cmd.Flags().IntVar(rank, "rank", 0, "Manual rank (0 = unranked)")
}

func newPlayerListCmd() *cobra.Command {
	var descending bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the season's players sorted by rating",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if descending {
				path += "?order=desc"
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&descending, "desc", false, "Sort descending")

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var first, last, rating, color string
	var rank int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"first_name": first,
				"last_name":  last,
				"rating":     rating,
				"rank":       rank,
				"color":      color,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	playerFlags(cmd, &first, &last, &rating, &color, &rank)

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var first, last, rating, color string
	var rank int

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Update a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"first_name": first,
				"last_name":  last,
				"rating":     rating,
				"rank":       rank,
				"color":      color,
			}
			var result Player

			if err := client.Put("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	playerFlags(cmd, &first, &last, &rating, &color, &rank)

	return cmd
}

func newPlayerBanCmd() *cobra.Command {
	var teamID string
	var clear bool

	cmd := &cobra.Command{
		Use:   "ban <player-id>",
		Short: "Set or clear a manual team ban (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"team_id": teamID,
				"active":  !clear,
			}
			var result Player

			if err := client.Put("/api/v1/players/"+args[0]+"/manual-ban", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&teamID, "team", "", "Team to ban the player from")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the ban instead of setting it")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Delete a player and their assignments (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player deleted")
			return nil
		},
	}
}
