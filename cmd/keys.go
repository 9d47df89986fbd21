package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midilint/theory"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists every supported key",
	Long:  `Lists every supported key`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range theory.KeyNames() {
			fmt.Println(name)
		}
	},
}
