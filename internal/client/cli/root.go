package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the slugmart CLI.
func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "slugmart",
		Short:             "slugmart marketplace client",
		Long:              `Command-line client for the slugmart GraphQL API.`,
		SilenceUsage:      true,
		PersistentPreRunE: app.prepare,
	}

	cmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&app.serverURL, "server", "", "GraphQL endpoint URL")
	cmd.PersistentFlags().DurationVar(&app.timeout, "timeout", 10*time.Second, "request timeout")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newAccountsCmd(app))
	cmd.AddCommand(newUploadCmd(app))

	return cmd
}
