package chord

import (
	"sort"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
)

// RankSortMatches orders candidates best first: chords the player has
// played nothing foreign to, then more pressed tones accounted for,
// then vocabulary priority, then smaller chords, then root as the final
// deterministic tie break.
func RankSortMatches(matches []model.Match) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.ExactMatch != b.ExactMatch {
			return a.ExactMatch
		}
		if a.MatchedCount != b.MatchedCount {
			return a.MatchedCount > b.MatchedCount
		}
		if pa, pb := theory.PriorityIndex(a.TypeKey), theory.PriorityIndex(b.TypeKey); pa != pb {
			return pa < pb
		}
		if a.ChordSize != b.ChordSize {
			return a.ChordSize < b.ChordSize
		}
		return a.Root < b.Root
	})
}
