package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
	"github.com/jsphweid/chordid/util"
)

func init() {
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Names the chord behind midi note numbers",
	Long:  `Names the chord behind midi note numbers, e.g. "name 60 64 67"`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 midi note number...")
		}
		var notes model.Notes
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				panic("Not a note number: " + arg)
			}
			notes = append(notes, n)
		}
		name(notes)
	},
}

func name(notes model.Notes) {
	matches := chord.Recognize(notes)
	if len(matches) == 0 {
		return
	}

	best := chord.FormatMatch(matches[0], notes)
	fmt.Printf("%v (%v)\n", best.DisplayName, best.LongName)
	if best.Inversion != nil {
		fmt.Printf("voicing: %v, bass %v\n", *best.Inversion, *best.BassName)
	}

	root := matches[0].Root
	for _, pc := range util.SortedKeys(theory.ReduceToPitchClassSet(notes)) {
		fmt.Printf("%3v = %v\n", theory.NoteName(pc), theory.IntervalName(pc-root))
	}

	limit := util.Min(len(matches), 9)
	for _, m := range matches[1:limit] {
		alt := chord.FormatMatch(m, notes)
		fmt.Printf("also: %v (%v)\n", alt.DisplayName, alt.LongName)
	}
}
