package cli

import (
	"github.com/spf13/cobra"
)

func newAttendanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Match-day check-in commands",
	}

	cmd.AddCommand(newAttendanceShowCmd())
	cmd.AddCommand(newAttendanceCheckinCmd())
	cmd.AddCommand(newAttendanceRemoveCmd())

	return cmd
}

func newAttendanceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <date>",
		Short: "Show the check-in list for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Attendance

			if err := client.Get(apiPath("attendance", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAttendanceCheckinCmd() *cobra.Command {
	var arrivedAt, note string

	cmd := &cobra.Command{
		Use:   "checkin <date> <handle>",
		Short: "Check a player in for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"handle": args[1]}
			if arrivedAt != "" {
				req["arrived_at"] = arrivedAt
			}
			if note != "" {
				req["note"] = note
			}
			var result CheckIn

			path := apiPath("attendance", args[0], "checkins")
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&arrivedAt, "at", "", "Arrival time HH:MM (defaults to now)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func newAttendanceRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <date> <handle>",
		Short: "Remove a player's check-in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := apiPath("attendance", args[0], "checkins", args[1])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Check-in removed")
			return nil
		},
	}
}
