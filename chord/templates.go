package chord

import (
	"sync/atomic"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
	"golang.org/x/exp/slices"
)

var bank atomic.Pointer[[]model.Template]

func init() {
	Regenerate()
}

// Templates returns the current bank snapshot. The slice is shared and
// must be treated as read-only.
func Templates() []model.Template {
	return *bank.Load()
}

// Regenerate rebuilds the whole bank and swaps it in as one unit, so a
// concurrent reader never sees a partially built bank.
func Regenerate() {
	templates := buildTemplates()
	bank.Store(&templates)
}

func buildTemplates() []model.Template {
	templates := make([]model.Template, 0, 12*len(theory.ChordOrder))
	for _, typeKey := range theory.ChordOrder {
		intervals := theory.Formulas[typeKey]
		for root := 0; root < 12; root++ {
			pcs := transpose(root, intervals)
			templates = append(templates, model.Template{
				Root:    root,
				TypeKey: typeKey,
				PCs:     pcs,
				Size:    len(pcs),
			})
		}
	}
	return templates
}

// transpose reduces a formula to a sorted pitch class set. Compound
// intervals can collapse onto existing tones, so Size counts unique
// pitch classes rather than raw intervals.
func transpose(root int, intervals []int) []int {
	pcs := make([]int, 0, len(intervals))
	for _, interval := range intervals {
		pc := theory.ToPitchClass(root + interval)
		if !slices.Contains(pcs, pc) {
			pcs = append(pcs, pc)
		}
	}
	slices.Sort(pcs)
	return pcs
}
