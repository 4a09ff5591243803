package cli

import "github.com/spf13/cobra"

func focusCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "focus",
		Short: "Show today's open items by focus area",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Dashboard.Focus(cmd.Context(), st.userID())
			return err
		},
	}
}
