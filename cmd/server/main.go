package main

import (
	"context"
	"fmt"
	"os"

	"github.com/slugmart/slugmart/internal/server"
	"github.com/slugmart/slugmart/internal/server/config"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
