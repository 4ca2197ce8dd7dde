package cli

import (
	"bufio"
	"context"
	"fmt"

	"github.com/dmitrijs2005/ragrelay/internal/client/client"
	"github.com/spf13/cobra"
)

func (a *App) registerCmd() *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a RAGFlow account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			if err := credentials(cmd, in, &email, &password); err != nil {
				return err
			}
			if name == "" {
				v, err := GetSimpleText(in, "Nickname", cmd.ErrOrStderr())
				if err != nil {
					return fmt.Errorf("read nickname: %w", err)
				}
				name = v
			}

			reply, err := a.withRelay(cmd.Context(), func(ctx context.Context, c client.Client) (string, error) {
				return c.Register(ctx, email, name, password)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&name, "name", "n", "", "account nickname")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	return a.credentialCmd("login", "Check credentials against RAGFlow",
		func(ctx context.Context, c client.Client, email, password string) (string, error) {
			return c.Login(ctx, email, password)
		})
}

func (a *App) apiKeyCmd() *cobra.Command {
	return a.credentialCmd("apikey", "Log in and obtain a RAGFlow API token",
		func(ctx context.Context, c client.Client, email, password string) (string, error) {
			return c.GetAPIKey(ctx, email, password)
		})
}

func (a *App) credentialCmd(use, short string, call func(ctx context.Context, c client.Client, email, password string) (string, error)) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credentials(cmd, bufio.NewReader(cmd.InOrStdin()), &email, &password); err != nil {
				return err
			}

			reply, err := a.withRelay(cmd.Context(), func(ctx context.Context, c client.Client) (string, error) {
				return call(ctx, c, email, password)
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}
