package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midilint/config"
	"github.com/jsphweid/midilint/lint"
	"github.com/jsphweid/midilint/midi"
	"github.com/jsphweid/midilint/theory"
)

func init() {
	addPipelineFlags(lintCmd)
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint SOURCE DEST",
	Short: "Lints a midi file",
	Long: `Reads SOURCE, applies the selected transforms in the order normalize,
align, correct-pitch, and writes the result to DEST.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := pipelineFromFlags(cmd)
		if err != nil {
			return err
		}
		return runLint(args[0], args[1], pipeline)
	},
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().Int("velocity", 0, "set every note velocity to this value (0-127)")
	cmd.Flags().Int("align", 0, "quantize notes to a 1/Nth-of-a-beat grid (power of 2)")
	cmd.Flags().String("key", "", "correct pitches into this key, e.g. c_major")
	cmd.Flags().String("strategy", "", "pitch correction strategy: up, down or nearest")
	cmd.Flags().String("profile", "", "yaml file of default settings")
}

// pipelineFromFlags merges an optional profile with the flags; flags
// win wherever both are set.
func pipelineFromFlags(cmd *cobra.Command) (lint.Pipeline, error) {
	var p lint.Pipeline

	var profile config.Profile
	if path, _ := cmd.Flags().GetString("profile"); path != "" {
		var err error
		profile, err = config.LoadProfile(path)
		if err != nil {
			return p, err
		}
	}

	p.Velocity = profile.Velocity
	p.Precision = profile.Align
	keyName := profile.Key
	strategyName := profile.Strategy

	if cmd.Flags().Changed("velocity") {
		v, _ := cmd.Flags().GetInt("velocity")
		vel := uint8(v)
		p.Velocity = &vel
	}
	if cmd.Flags().Changed("align") {
		a, _ := cmd.Flags().GetInt("align")
		p.Precision = &a
	}
	if v, _ := cmd.Flags().GetString("key"); v != "" {
		keyName = v
	}
	if v, _ := cmd.Flags().GetString("strategy"); v != "" {
		strategyName = v
	}

	if keyName != "" {
		key, err := theory.ParseKey(keyName)
		if err != nil {
			return p, err
		}
		p.Allowed = key.Pitches()
	}
	if strategyName != "" {
		strategy, err := lint.ParseStrategy(strategyName)
		if err != nil {
			return p, err
		}
		p.Strategy = strategy
	}
	return p, nil
}

func runLint(source string, dest string, pipeline lint.Pipeline) error {
	if pipeline.Empty() {
		return errors.New("nothing to do: pass --velocity, --align, --key or --profile")
	}
	logger := newLogger("lint")
	s, err := midi.ReadMidiFile(source)
	if err != nil {
		return err
	}
	logger.Debug("loaded", "source", source, "tracks", len(s.Tracks))
	if err := pipeline.Apply(s); err != nil {
		return err
	}
	if err := midi.WriteMidiFile(dest, s); err != nil {
		return err
	}
	logger.Info("linted", "source", source, "dest", dest)
	return nil
}
