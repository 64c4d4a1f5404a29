package chord

import (
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
	"github.com/jsphweid/chordid/util"
	"golang.org/x/exp/slices"
)

// Recognize names every template the sounding notes could belong to,
// best candidate first. Empty input is a valid "nothing sounding" state
// and yields an empty result. Single notes and bare fifths/fourths are
// resolved from the absolute pitches before any template is consulted,
// because their root depends on which note is physically lower, which a
// pitch class set cannot tell.
func Recognize(notes model.Notes) []model.Match {
	if len(notes) == 0 {
		return nil
	}

	pressed := theory.ReduceToPitchClassSet(notes)
	pcs := util.SortedKeys(pressed)

	if len(pcs) == 1 {
		return []model.Match{singleMatch(pcs[0])}
	}
	if len(pcs) == 2 {
		if m, ok := dyadMatch(notes, pcs); ok {
			return []model.Match{m}
		}
	}

	matches := scanTemplates(pcs)
	RankSortMatches(matches)
	return matches
}

func singleMatch(pc int) model.Match {
	return model.Match{
		Root:         pc,
		TypeKey:      theory.TypeSingle,
		MatchedCount: 1,
		ChordSize:    1,
		IsSubset:     true,
		ExactMatch:   true,
		MatchedPCs:   []int{pc},
		MissingPCs:   []int{},
		ExtraPCs:     []int{},
	}
}

// dyadMatch applies the register-aware two note rules: a perfect fifth
// roots on the lower pitch class, a fourth is a fifth heard from above
// and roots on the upper one. Every other dyad goes through the general
// scan.
func dyadMatch(notes model.Notes, pcs []int) (model.Match, bool) {
	lowest := lowestByPitchClass(notes)
	lowPC, highPC := pcs[0], pcs[1]
	if lowest[highPC] < lowest[lowPC] {
		lowPC, highPC = highPC, lowPC
	}

	// two distinct pitch classes, so the interval is never 0 here
	switch theory.ToPitchClass(lowest[highPC] - lowest[lowPC]) {
	case 7:
		return fifthMatch(lowPC, pcs), true
	case 5:
		return fifthMatch(highPC, pcs), true
	}
	return model.Match{}, false
}

func fifthMatch(root int, pcs []int) model.Match {
	return model.Match{
		Root:         root,
		TypeKey:      theory.TypeFifth,
		MatchedCount: 2,
		ChordSize:    2,
		IsSubset:     true,
		ExactMatch:   true,
		MatchedPCs:   slices.Clone(pcs),
		MissingPCs:   []int{},
		ExtraPCs:     []int{},
	}
}

func lowestByPitchClass(notes model.Notes) map[int]int {
	lowest := make(map[int]int, len(notes))
	for _, n := range notes {
		pc := theory.ToPitchClass(n)
		if cur, ok := lowest[pc]; !ok || n < cur {
			lowest[pc] = n
		}
	}
	return lowest
}

// scanTemplates scores every template by pitch class overlap. A
// template with no overlap at all is not a candidate. exactMatch means
// the template covers everything pressed, i.e. the player has hit
// nothing foreign to that chord, even if tones are still missing.
func scanTemplates(pcs []int) []model.Match {
	var matches []model.Match
	for _, t := range Templates() {
		matched := make([]int, 0, len(t.PCs))
		missing := make([]int, 0, len(t.PCs))
		for _, pc := range t.PCs {
			if slices.Contains(pcs, pc) {
				matched = append(matched, pc)
			} else {
				missing = append(missing, pc)
			}
		}
		if len(matched) == 0 {
			continue
		}

		extra := make([]int, 0, len(pcs))
		for _, pc := range pcs {
			if !slices.Contains(t.PCs, pc) {
				extra = append(extra, pc)
			}
		}

		matches = append(matches, model.Match{
			Root:         t.Root,
			TypeKey:      t.TypeKey,
			MatchedCount: len(matched),
			ChordSize:    t.Size,
			IsSubset:     len(extra) == 0,
			ExactMatch:   len(matched) == len(pcs),
			MatchedPCs:   matched,
			MissingPCs:   missing,
			ExtraPCs:     extra,
		})
	}
	return matches
}
