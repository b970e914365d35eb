package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/slugmart/slugmart/internal/client/client"
	"github.com/slugmart/slugmart/internal/client/config"
)

// ClientFactory builds the API client once configuration is resolved.
type ClientFactory func(cfg *config.Config) client.Client

func defaultClientFactory(cfg *config.Config) client.Client {
	return client.NewGraphQLClient(cfg.ServerURL, cfg.RequestTimeout)
}

// App carries state shared by the subcommands of one invocation.
type App struct {
	newClient ClientFactory

	configFile string
	serverURL  string
	timeout    time.Duration

	config *config.Config
	client client.Client
}

func NewApp(newClient ClientFactory) *App {
	if newClient == nil {
		newClient = defaultClientFactory
	}
	return &App{newClient: newClient}
}

// prepare resolves configuration and builds the client. Flags given on
// the command line win over every other source.
func (a *App) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cmd.Context(), a.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerURL = a.serverURL
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = a.timeout
	}

	a.config = cfg
	a.client = a.newClient(cfg)
	return nil
}
