package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordid",
	Short: "Chord recognition for live and recorded midi",
	Long:  `Names the chord behind any set of midi notes, from a live port, a midi file or plain note numbers.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
