package chord

import (
	"fmt"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
	"golang.org/x/exp/slices"
)

// FormatMatch renders a match for display. The raw sounding notes are
// needed here because the true bass is the lowest absolute pitch,
// which the match's pitch class data cannot supply.
func FormatMatch(m model.Match, notes model.Notes) model.FormattedMatch {
	if m.TypeKey == theory.TypeSingle {
		return model.FormattedMatch{
			DisplayName: theory.NoteName(m.Root),
			LongName:    theory.LongName(m.TypeKey),
		}
	}

	res := model.FormattedMatch{
		DisplayName: theory.NoteName(m.Root) + theory.Suffix(m.TypeKey),
		LongName:    theory.LongName(m.TypeKey),
	}
	if len(notes) == 0 {
		// no bass to reason about
		return res
	}

	bassPC := theory.ToPitchClass(slices.Min(notes))
	bassName := theory.NoteName(bassPC)
	res.BassName = &bassName

	var inversion string
	if m.ChordSize > 4 {
		// 9ths and up always take slash notation, never ordinal inversions
		inversion = "slash bass"
		res.DisplayName += "/" + bassName
	} else {
		tones := theory.ChordTones(m.Root, m.TypeKey)
		switch idx := slices.Index(tones, bassPC); {
		case idx < 0:
			inversion = "no chord tone in bass"
		case idx == 0:
			inversion = "root position"
		default:
			inversion = ordinal(idx) + " inversion"
		}
		if m.TypeKey == theory.TypeFifth && bassPC != m.Root {
			// an inverted fourth named as a fifth still shows its real
			// bottom note
			res.DisplayName += "/" + bassName
		}
	}
	res.Inversion = &inversion
	return res
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%vth", n)
	}
}
