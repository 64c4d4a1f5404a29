package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/file"
	"github.com/jsphweid/chordid/midi"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Names the chords in midi files",
	Long:  `Names the chords in a midi file, or in every midi file under a directory`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 midi file or directory path...")
		}
		analyzeAll(args[0])
	},
}

func analyzeAll(root string) {
	paths, err := file.FindMidiPaths(root)
	if err != nil {
		panic("Could not find midi files because: " + err.Error())
	}
	if len(paths) == 0 {
		fmt.Printf("No midi files under %v\n", root)
		return
	}

	for i, path := range paths {
		if len(paths) > 1 {
			fmt.Printf("=== %v (%v of %v)\n", path, i+1, len(paths))
		}
		analyze(path)
	}
}

func analyze(path string) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	var lastName string
	for _, change := range midi.ChordChanges(s) {
		matches := chord.Recognize(change.Notes)
		if len(matches) == 0 {
			continue
		}

		best := chord.FormatMatch(matches[0], change.Notes)
		if best.DisplayName == lastName {
			continue
		}
		lastName = best.DisplayName

		offset := time.Duration(change.OffsetMS) * time.Millisecond
		fmt.Printf("%8v %v (%v)\n", offset, best.DisplayName, best.LongName)
	}
}
