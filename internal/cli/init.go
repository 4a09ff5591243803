package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/dayboard/internal/db"
	"github.com/example/dayboard/internal/wire"
)

func initCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the dayboard database",
		Long:  `Create the database (default ~/.dayboard/dayboard.db), apply the schema and provision the default user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing dayboard database at %s\n", st.cfg.Database.Path)

			database, err := wire.DB()
			if err != nil {
				return err
			}
			version, err := db.CurrentVersion(cmd.Context(), database)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Schema at version %d\n", version)

			if err := db.EnsureUser(cmd.Context(), database, st.cfg.Auth.DefaultUserID, st.cfg.Auth.DefaultEmail); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Default user %s ready\n", st.cfg.Auth.DefaultUserID)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, `  dayboard inbox add "buy milk" --tag Personal`)
			fmt.Fprintln(out, "  dayboard serve")
			return nil
		},
	}
}
