package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"trending-ingest/domain/model"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one ingestion and print the result",
	Long: `Run performs a single search, details fetch and archive write, then prints
the result as {"statusCode": ..., "body": {...}}. The exit code is 0 when the
status code is 200 and 1 otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := runOnce(cmd.Context())

		out, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if !result.Succeeded() {
			return errRunFailed
		}
		return nil
	},
}

// runOnce turns every failure, including configuration errors, into a result.
func runOnce(ctx context.Context) model.InvocationResult {
	cfg, err := loadConfig()
	if err != nil {
		return model.NewFailureResult(err)
	}
	uc, cleanup, err := newTrendingUsecase(ctx, cfg)
	defer cleanup()
	if err != nil {
		return model.NewFailureResult(err)
	}
	return uc.Run(ctx)
}
