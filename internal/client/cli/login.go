package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slugmart/slugmart/internal/common"
)

type loginConfig struct {
	email string
}

func newLoginCmd(app *App) *cobra.Command {
	cfg := &loginConfig{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.login(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "account email (prompted when empty)")

	return cmd
}

func (a *App) login(cmd *cobra.Command, cfg *loginConfig) error {
	out := cmd.OutOrStdout()

	email := cfg.email
	if email == "" {
		var err error
		email, err = GetSimpleText(bufio.NewReader(cmd.InOrStdin()), "Enter email", out)
		if err != nil {
			return err
		}
	}
	if email == "" {
		return errors.New("email is required")
	}

	password, err := GetPassword(out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	auth, err := a.client.Login(cmd.Context(), email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "id:    %s\n", auth.ID)
	fmt.Fprintf(out, "name:  %s\n", auth.Name.Full())
	fmt.Fprintf(out, "token: %s\n", auth.AccessToken)
	return nil
}
