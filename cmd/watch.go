package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch for external profile changes",
	Long: `Re-resolve the active selection on an interval and log whenever it
changes, e.g. after another tool or shell edits the stores or environment.

The watch is read-only: it never switches profiles. It runs until the
process is stopped.

Examples:
  awsctx watch
  awsctx watch --interval 10s`,
	RunE: runWatch,
}

var watchInterval time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "Poll interval")
}

func runWatch(cmd *cobra.Command, args []string) error {
	resolver, _, err := newResolver()
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	last := resolver.ResolveActive()
	logger.Info("watching active selection",
		zap.String("profile", last.Profile),
		zap.String("region", last.Region),
		zap.Duration("interval", watchInterval))

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
			sel := resolver.ResolveActive()
			if sel == last {
				continue
			}
			logger.Info("active selection changed",
				zap.String("profile", sel.Profile),
				zap.String("region", sel.Region),
				zap.String("previous_profile", last.Profile),
				zap.String("previous_region", last.Region))
			last = sel
		}
	}
}
