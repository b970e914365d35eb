package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountsCmd(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.client.Accounts(cmd.Context(), token)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLES\tRESTRICTED")
			for _, a := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
					a.ID, a.Email, a.Name.Full(), strings.Join(a.Roles, ","), a.Restricted)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session token")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
