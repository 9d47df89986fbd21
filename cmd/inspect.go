package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midilint/event"
	"github.com/jsphweid/midilint/midi"
	"github.com/jsphweid/midilint/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Inspects a midi file",
	Long:  `Prints the time format and per-track event counts, note counts, tick totals and pitch range.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("timeFormat: %v\n", s.TimeFormat)
	for i, track := range s.Tracks {
		var notes int
		var ticks uint64
		lo := uint8(127)
		hi := uint8(0)
		for _, ev := range track {
			ticks += uint64(ev.Delta)
			if _, key, _, ok := event.Note(ev.Message); ok {
				notes++
				lo = util.Min(lo, key)
				hi = util.Max(hi, key)
			}
		}
		fmt.Printf("track %v: %v events, %v notes, %v ticks", i, len(track), notes, ticks)
		if notes > 0 {
			fmt.Printf(", pitches %v-%v", lo, hi)
		}
		fmt.Printf("\n")
	}
	return nil
}
