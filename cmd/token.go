package cmd

import (
	"errors"
	"fmt"
	"time"

	"trending-ingest/infrastructure/utils"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the HTTP trigger",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.App.SecretKey == "" {
			return errors.New("app.secretKey (SECRET_KEY) is required to sign tokens")
		}
		if tokenTTL <= 0 {
			return fmt.Errorf("--ttl must be positive, got %s", tokenTTL)
		}
		token, err := utils.GenerateTriggerToken(tokenSubject, tokenTTL, cfg.App.SecretKey)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "scheduler", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
