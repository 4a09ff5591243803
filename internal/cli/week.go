package cli

import (
	"github.com/spf13/cobra"
)

func weekCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Plan the week on a kanban board",
		Long: `Tasks live in one of four columns (Work, Side Hustle, Family, Self) of a
week identified by its Monday. New tasks go to the bottom of their column.`,
	}

	var week string
	cmd.PersistentFlags().StringVarP(&week, "week", "w", "", "Monday of the week (default: this week)")
	weekOf := func() string {
		if week == "" {
			return thisWeek()
		}
		return week
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the board",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Planner.Board(cmd.Context(), st.userID(), weekOf())
			return err
		},
	}

	var (
		column   string
		position int
	)
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pos *int
			if cmd.Flags().Changed("position") {
				pos = &position
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Planner.Add(cmd.Context(), st.userID(), weekOf(), args[0], column, pos)
			return err
		},
	}
	addCmd.Flags().StringVarP(&column, "column", "c", "Work", "Work, Side Hustle, Family or Self")
	addCmd.Flags().IntVarP(&position, "position", "p", 0, "explicit position (default: end of column)")

	var (
		moveColumn   string
		movePosition int
		moveWeek     string
	)
	moveCmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Move a task to another column, position or week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var pos *int
			if cmd.Flags().Changed("position") {
				pos = &movePosition
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			return a.Planner.Move(cmd.Context(), st.userID(), id, moveColumn, pos, moveWeek)
		},
	}
	moveCmd.Flags().StringVarP(&moveColumn, "column", "c", "", "target column")
	moveCmd.Flags().IntVarP(&movePosition, "position", "p", 0, "target position")
	moveCmd.Flags().StringVar(&moveWeek, "to-week", "", "target week (a Monday)")

	renameCmd := &cobra.Command{
		Use:   "rename [id] [title]",
		Short: "Rename a task",
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
			return a.Planner.Rename(cmd.Context(), st.userID(), id, args[1])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
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
			return a.Planner.Remove(cmd.Context(), st.userID(), id)
		},
	}

	cmd.AddCommand(showCmd, addCmd, moveCmd, renameCmd, rmCmd)
	return cmd
}
