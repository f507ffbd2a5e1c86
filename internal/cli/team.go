package cli

import (
	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team management commands",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamCreateCmd())
	cmd.AddCommand(newTeamUpdateCmd())
	cmd.AddCommand(newTeamEnforceCmd())
	cmd.AddCommand(newTeamDeleteCmd())

	return cmd
}

func teamFlags(cmd *cobra.Command, name, lockColor *string, lockable, enforce *bool) {
	cmd.Flags().StringVar(name, "name", "", "Team name (required)")
	cmd.Flags().BoolVar(lockable, "lockable", false, "Appearances count toward the fixed-player rule")
	cmd.Flags().BoolVar(enforce, "enforce", false, "Block assignments violating another team's lock")
	cmd.Flags().StringVar(lockColor, "lock-color", "", "Color propagated to locked players (hex)")
	_ = cmd.MarkFlagRequired("name")
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the season's teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Team

			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTeamCreateCmd() *cobra.Command {
	var name, lockColor string
	var lockable, enforce bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"lockable":     lockable,
				"enforce_lock": enforce,
				"lock_color":   lockColor,
			}
			var result Team

			if err := client.Post("/api/v1/teams", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	teamFlags(cmd, &name, &lockColor, &lockable, &enforce)

	return cmd
}

func newTeamUpdateCmd() *cobra.Command {
	var name, lockColor string
	var lockable, enforce bool

	cmd := &cobra.Command{
		Use:   "update <team-id>",
		Short: "Update a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"lockable":     lockable,
				"enforce_lock": enforce,
				"lock_color":   lockColor,
			}
			var result Team

			if err := client.Put("/api/v1/teams/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	teamFlags(cmd, &name, &lockColor, &lockable, &enforce)

	return cmd
}

func newTeamEnforceCmd() *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "enforce <team-id>",
		Short: "Toggle the enforce flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"enforce_lock": !off}
			var result Team

			if err := client.Patch("/api/v1/teams/"+args[0]+"/enforce", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Turn enforcement off instead of on")

	return cmd
}

func newTeamDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a team, its games and assignments (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/teams/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Team deleted")
			return nil
		},
	}
}
