package main

import (
	"crew-dispatch/auth"
	"crew-dispatch/domain"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// newTokenCmd mints a bearer token signed with JWT_SECRET. It is how the first
// admin token is obtained: the hook routes only trust the role claim.
func newTokenCmd() *cobra.Command {
	var (
		userID   string
		roles    []string
		duration time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			token, err := auth.NewTokens(secret, duration).GenerateToken(domain.UserID(userID), roles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id carried by the token")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "role claims, repeatable (e.g. --role admin)")
	cmd.Flags().DurationVar(&duration, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
