package cli

import (
	"encoding/json"
	"fmt"
	"net"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/dayboard/internal/adapters/rpc"
)

func callCmd(st *state) *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:   "call [procedure] [json input]",
		Short: "Call a procedure on a running dayboard server",
		Long: `Call a procedure on a running dayboard server and print its result.
Queries are sent with GET and mutations with POST, as the --user identity.

Example:
  dayboard call createInboxItem '{"content":"buy milk","tag":"Personal"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input json.RawMessage
			if len(args) == 2 {
				input = json.RawMessage(args[1])
				if !json.Valid(input) {
					return fmt.Errorf("input is not valid JSON: %s", args[1])
				}
			}

			if server == "" {
				server = localURL(st.cfg.Server.Addr)
			}
			client := rpc.NewClient(server, rpc.WithUserID(st.userID()))

			var result json.RawMessage
			var in any
			if input != nil {
				in = input
			}
			if err := client.Call(cmd.Context(), args[0], in, &result); err != nil {
				return err
			}

			pretty, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "server base URL (default http://localhost<server.addr>)")
	return cmd
}

// localURL turns a listen address into a URL for a client on the same host.
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func proceduresCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "procedures",
		Short:             "List the procedures the server exposes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "PROCEDURE\tKIND")
			for _, p := range rpc.Procedures() {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Kind)
			}
			return w.Flush()
		},
	}
}
