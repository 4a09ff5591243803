package cli

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	corereview "github.com/example/dayboard/internal/core/review"
	"github.com/example/dayboard/internal/models"
)

func reviewCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record and read AM/PM daily reviews",
	}

	var date string
	cmd.PersistentFlags().StringVarP(&date, "date", "d", "", "review date (default: today)")
	dateOf := func() string {
		if date == "" {
			return today()
		}
		return date
	}

	cmd.AddCommand(
		recordCmd(st, models.ReviewAM, dateOf),
		recordCmd(st, models.ReviewPM, dateOf),
	)

	var showType string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a review",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Review.Show(cmd.Context(), st.userID(), dateOf(), showType)
			return err
		},
	}
	showCmd.Flags().StringVar(&showType, "type", "", "AM or PM (default: either)")

	var from, to, listType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews in a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				to = today()
			}
			if from == "" {
				end, err := models.ParseDate(to)
				if err != nil {
					return err
				}
				from = models.FormatDate(end.Add(-6 * 24 * time.Hour))
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Review.List(cmd.Context(), st.userID(), from, to, listType)
			return err
		},
	}
	listCmd.Flags().StringVar(&from, "from", "", "first date (default: six days before --to)")
	listCmd.Flags().StringVar(&to, "to", "", "last date (default: today)")
	listCmd.Flags().StringVar(&listType, "type", "", "AM or PM (default: both)")

	var clear bool
	setCmd := &cobra.Command{
		Use:   "set [id] [field] [answer]",
		Short: "Change one answer on a review",
		Long: `Change one answer on a review. Fields: todays_one_thing, top_three_tasks,
gratitude, accomplished, distractions, tomorrows_shift. Pass --clear instead
of an answer to blank the field.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			answer := ""
			switch {
			case clear && len(args) == 3:
				return errors.New("pass either an answer or --clear")
			case !clear && len(args) == 2:
				return errors.New("missing answer (or pass --clear)")
			case len(args) == 3:
				answer = args[2]
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			return a.Review.Answer(cmd.Context(), st.userID(), id, args[1], answer, clear)
		},
	}
	setCmd.Flags().BoolVar(&clear, "clear", false, "blank the field")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a review",
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
			return a.Review.Remove(cmd.Context(), st.userID(), id)
		},
	}

	cmd.AddCommand(showCmd, listCmd, setCmd, rmCmd)
	return cmd
}

// recordCmd builds "review am" or "review pm" with one flag per prompt.
func recordCmd(st *state, t models.ReviewType, dateOf func() string) *cobra.Command {
	prompts := corereview.PromptsFor(t)
	answers := make(map[string]*string, len(prompts))

	cmd := &cobra.Command{
		Use:   strings.ToLower(string(t)),
		Short: "Record the " + string(t) + " review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(answers))
			for field, v := range answers {
				values[field] = *v
			}
			a, err := st.adapters(cmd)
			if err != nil {
				return err
			}
			_, err = a.Review.Record(cmd.Context(), st.userID(), dateOf(), string(t), values)
			return err
		},
	}
	for _, p := range prompts {
		answers[p.Field] = cmd.Flags().String(p.Field, "", p.Question)
	}
	return cmd
}
