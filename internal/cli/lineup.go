package cli

import (
	"github.com/spf13/cobra"
)

func newLineupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Squad lineup commands",
	}

	cmd.AddCommand(newLineupComputeCmd())
	cmd.AddCommand(newLineupShowCmd())
	cmd.AddCommand(newLineupUndoCmd())

	return cmd
}

func newLineupComputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compute <date> <half>",
		Short: "Compute and store the lineup for a half",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Lineup

			path := apiPath("lineups", args[0], args[1])
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLineupShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <date> <half>",
		Short: "Show the stored lineup for a half",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Lineup

			path := apiPath("lineups", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLineupUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <date> <half>",
		Short: "Discard the stored lineup for a half",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := apiPath("lineups", args[0], args[1])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Lineup discarded")
			return nil
		},
	}
}
