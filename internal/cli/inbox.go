package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func inboxCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Capture and triage inbox items",
	}

	var tag string
	addCmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Capture a new item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Inbox.Add(cmd.Context(), st.userID(), args[0], tag)
			return err
		},
	}
	addCmd.Flags().StringVarP(&tag, "tag", "t", "Work", "Work, Personal, Side Hustle, Idea, Gratitude, Family or Self")

	var open, processed bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List items, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if open && processed {
				return errors.New("--open and --processed are mutually exclusive")
			}
			var filter *bool
			switch {
			case open:
				f := false
				filter = &f
			case processed:
				t := true
				filter = &t
			}

			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Inbox.List(cmd.Context(), st.userID(), filter)
			return err
		},
	}
	listCmd.Flags().BoolVar(&open, "open", false, "only unprocessed items")
	listCmd.Flags().BoolVar(&processed, "processed", false, "only processed items")

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark an item processed",
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
			return a.Inbox.Done(cmd.Context(), st.userID(), id)
		},
	}

	var content, newTag string
	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change an item's content or tag",
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
			return a.Inbox.Edit(cmd.Context(), st.userID(), id, content, newTag)
		},
	}
	editCmd.Flags().StringVar(&content, "content", "", "new content")
	editCmd.Flags().StringVar(&newTag, "tag", "", "new tag")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete an item",
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
			return a.Inbox.Remove(cmd.Context(), st.userID(), id)
		},
	}

	cmd.AddCommand(addCmd, listCmd, doneCmd, editCmd, rmCmd)
	return cmd
}
