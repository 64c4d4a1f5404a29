package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/theory"
)

var showTemplates bool

func init() {
	vocabCmd.Flags().BoolVar(&showTemplates, "templates", false, "dump the expanded template bank")
	rootCmd.AddCommand(vocabCmd)
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Prints the chord vocabulary",
	Long:  `Prints the chord vocabulary`,
	Run: func(cmd *cobra.Command, args []string) {
		if showTemplates {
			dumpTemplates()
		} else {
			dumpVocab()
		}
	},
}

func dumpVocab() {
	for _, typeKey := range theory.ChordOrder {
		fmt.Printf("%-10v %-36v suffix=%-6q intervals=%v\n",
			typeKey, theory.LongName(typeKey), theory.Suffix(typeKey), theory.Formulas[typeKey])
	}
}

func dumpTemplates() {
	for _, tpl := range chord.Templates() {
		names := make([]string, 0, len(tpl.PCs))
		for _, pc := range tpl.PCs {
			names = append(names, theory.NoteName(pc))
		}
		fmt.Printf("%-2v %-10v %v\n", theory.NoteName(tpl.Root), tpl.TypeKey, strings.Join(names, " "))
	}
}
