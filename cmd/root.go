package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "midilint",
	Short: "Normalizes, aligns and pitch-corrects midi files",
	Long: `midilint rewrites midi files: velocity normalization, alignment of
notes to a beat grid, and pitch correction into a musical key.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger(prefix string) *charmlog.Logger {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
