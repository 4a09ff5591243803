package cli

import (
	"github.com/spf13/cobra"
)

func userCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	addCmd := &cobra.Command{
		Use:   "add [id] [email]",
		Short: "Create a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			return a.User.Add(cmd.Context(), args[0], args[1])
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a user (default: the current user)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := st.userID()
			if len(args) == 1 {
				id = args[0]
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.User.Show(cmd.Context(), id)
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.User.List(cmd.Context())
			return err
		},
	}

	cmd.AddCommand(addCmd, showCmd, listCmd)
	return cmd
}
