package cmd

import (
	"errors"

	"trending-ingest/infrastructure/configuration"
	"trending-ingest/infrastructure/logger"

	"github.com/spf13/cobra"
)

// errRunFailed reports a failed invocation whose result was already printed.
var errRunFailed = errors.New("trending ingestion failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trending-ingest",
	Short: "Archive YouTube trending video statistics to object storage",
	Long: `trending-ingest searches YouTube, fetches details and statistics for the
matching videos and writes one JSON document per run to object storage under
a year/month/day/hour partitioned key.

Examples:
  trending-ingest run                  # one invocation, for cron or scheduled tasks
  trending-ingest serve --port 10001   # HTTP trigger on POST /api/trending/run
  trending-ingest token --ttl 720h     # mint a trigger token for a scheduler`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load env from files (non-destructive; OS env still has precedence)
		if files := configuration.LoadEnvFromFile("config.env", ".env"); len(files) > 0 {
			logger.GetLogger().WithField("files", files).Info("Loaded env files")
		}
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errRunFailed) {
		logger.GetLogger().WithField("error", err).Error("Command failed")
	}
	return err
}

// loadConfig reads configuration and applies its logger settings. Commands
// call it themselves so run can still report a load failure as a result.
func loadConfig() (*configuration.Config, error) {
	cfg, err := configuration.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.Configure(cfg.Logger.Level, cfg.Logger.Format)
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd, serveCmd, tokenCmd)
}
