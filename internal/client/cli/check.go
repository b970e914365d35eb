package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show which account a token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := app.client.Check(cmd.Context(), token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "id: %s\n", s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session token")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
