package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/growthbox-backend/internal/auth"
	"github.com/heartmarshall/growthbox-backend/internal/config"
)

var tokenIdentity string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage identity tokens",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Sign an identity token",
	Long: `Sign an identity token for --identity, or for a fresh identity when
the flag is omitted. The identity is printed on the first line and the
token on the second.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		identity := tokenIdentity
		if identity == "" {
			if identity, err = auth.NewIdentity(); err != nil {
				return err
			}
		}

		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := jwtManager.GenerateAccessToken(identity)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), identity)
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenIssueCmd.Flags().StringVar(&tokenIdentity, "identity", "", "owner reference to sign (default: a new identity)")
	tokenCmd.AddCommand(tokenIssueCmd)
}
