package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hackhub/config"
	"hackhub/internal/adapters/auth"
)

var (
	tokenUser   string
	tokenEmail  string
	tokenRoles  []string
	tokenExpiry time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development bearer token",
	Long: `Issue a signed bearer token for a user ID using JWT_SECRET.

Examples:
  hackhub token --user user-123
  curl -H "Authorization: Bearer $(hackhub token --user user-123)" http://localhost:8080/api/events`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUser == "" {
			return errors.New("--user is required")
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		expiry := tokenExpiry
		if expiry <= 0 {
			expiry = cfg.JWTExpiry
		}
		token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(tokenUser, tokenEmail, tokenRoles, expiry)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user ID placed in the token subject")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().StringSliceVar(&tokenRoles, "role", nil, "role claim (repeatable)")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", 0, "token lifetime (default: JWT_EXPIRY)")
}
