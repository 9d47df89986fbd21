package cmd

import (
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"

	"github.com/jsphweid/midilint/lint"
)

func init() {
	addPipelineFlags(watchCmd)
	watchCmd.Flags().Duration("interval", time.Second, "how often to poll SOURCE for changes")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch SOURCE DEST",
	Short: "Re-lints SOURCE into DEST whenever it changes",
	Long: `Polls SOURCE and re-runs the lint pipeline into DEST on every change.
Editor write bursts are debounced into a single run.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := pipelineFromFlags(cmd)
		if err != nil {
			return err
		}
		interval, _ := cmd.Flags().GetDuration("interval")
		return watch(args[0], args[1], pipeline, interval)
	},
}

func watch(source string, dest string, pipeline lint.Pipeline, interval time.Duration) error {
	logger := newLogger("watch")
	debounced := debounce.New(2 * interval)

	relint := func() {
		if err := runLint(source, dest, pipeline); err != nil {
			logger.Error("lint failed", "err", err)
		}
	}

	var last time.Time
	if stat, err := os.Stat(source); err == nil {
		last = stat.ModTime()
	}
	relint()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		stat, err := os.Stat(source)
		if err != nil {
			logger.Warn("could not stat source", "err", err)
			continue
		}
		if stat.ModTime().After(last) {
			last = stat.ModTime()
			logger.Debug("source changed", "modTime", last)
			debounced(relint)
		}
	}
	return nil
}
