package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func autoCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auto",
		Aliases: []string{"automation"},
		Short:   "Track chores worth automating",
	}

	var notes, status string
	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Start tracking a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Automation.Add(cmd.Context(), st.userID(), args[0], notes, status)
			return err
		},
	}
	addCmd.Flags().StringVar(&notes, "notes", "", "workflow notes")
	addCmd.Flags().StringVar(&status, "status", "", `initial status (default "To Automate")`)

	var listStatus string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked chores",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Automation.List(cmd.Context(), st.userID(), listStatus)
			return err
		},
	}
	listCmd.Flags().StringVar(&listStatus, "status", "", "To Automate, In Progress, Automated or Needs Review")

	setCmd := &cobra.Command{
		Use:   "set [id] [status]",
		Short: "Change a chore's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			return a.Automation.SetStatus(cmd.Context(), st.userID(), id, args[1])
		},
	}

	var clear bool
	notesCmd := &cobra.Command{
		Use:   "notes [id] [notes]",
		Short: "Replace or clear a chore's workflow notes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if clear == (len(args) == 2) {
				return errors.New("pass either new notes or --clear")
			}
			text := ""
			if len(args) == 2 {
				text = args[1]
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			return a.Automation.SetNotes(cmd.Context(), st.userID(), id, text, clear)
		},
	}
	notesCmd.Flags().BoolVar(&clear, "clear", false, "remove the notes")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Stop tracking a chore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			return a.Automation.Remove(cmd.Context(), st.userID(), id)
		},
	}

	cmd.AddCommand(addCmd, listCmd, setCmd, notesCmd, rmCmd)
	return cmd
}
