package theory

// reserved type keys the matcher special-cases
const (
	TypeSingle = "single"
	TypeFifth  = "fifth"
)

// Formulas maps a chord type to its interval stack above the root.
// Intervals above 11 are compound (9th = 14, 11th = 17, 13th = 21) and
// collapse mod 12 when templates are built. "fifth" omits the third on
// purpose (power chord).
var Formulas = map[string][]int{
	TypeSingle: {0},
	"major":    {0, 4, 7},
	"minor":    {0, 3, 7},
	TypeFifth:  {0, 7},
	"sus2":     {0, 2, 7},
	"sus4":     {0, 5, 7},
	"dim":      {0, 3, 6},
	"aug":      {0, 4, 8},
	// NOTE: conservative interval set, see vocab_test before changing
	"flat5":    {0, 4, 6},
	"six":      {0, 4, 7, 9},
	"min6":     {0, 3, 7, 9},
	"dom7":     {0, 4, 7, 10},
	"maj7":     {0, 4, 7, 11},
	"min7":     {0, 3, 7, 10},
	"minmaj7":  {0, 3, 7, 11},
	"dim7":     {0, 3, 6, 9},
	"m7b5":     {0, 3, 6, 10},
	"aug7":     {0, 4, 8, 10},
	"dom7sus4": {0, 5, 7, 10},
	"add9":     {0, 4, 7, 14},
	"nine":     {0, 4, 7, 10, 14},
	"maj9":     {0, 4, 7, 11, 14},
	"min9":     {0, 3, 7, 10, 14},
	"eleven":   {0, 4, 7, 10, 14, 17},
	"thirteen": {0, 4, 7, 10, 14, 17, 21},
}

// ChordOrder fixes both the template generation order and the ranking
// priority: simpler and more common types first, triads before sevenths
// before extensions. Ties between equally matched candidates break
// toward the earlier entry.
var ChordOrder = []string{
	TypeSingle,
	"major",
	"minor",
	TypeFifth,
	"sus4",
	"sus2",
	"dom7",
	"min7",
	"maj7",
	"six",
	"min6",
	"dim",
	"aug",
	"add9",
	"minmaj7",
	"dom7sus4",
	"dim7",
	"m7b5",
	"aug7",
	"flat5",
	"nine",
	"maj9",
	"min9",
	"eleven",
	"thirteen",
}

var suffixes = map[string]string{
	TypeSingle: "",
	"major":    "",
	"minor":    "m",
	TypeFifth:  "5",
	"sus2":     "sus2",
	"sus4":     "sus4",
	"dim":      "dim",
	"aug":      "aug",
	"flat5":    "(b5)",
	"six":      "6",
	"min6":     "m6",
	"dom7":     "7",
	"maj7":     "maj7",
	"min7":     "m7",
	"minmaj7":  "mMaj7",
	"dim7":     "dim7",
	"m7b5":     "m7b5",
	"aug7":     "aug7",
	"dom7sus4": "7sus4",
	"add9":     "add9",
	"nine":     "9",
	"maj9":     "maj9",
	"min9":     "m9",
	"eleven":   "11",
	"thirteen": "13",
}

var longNames = map[string]string{
	TypeSingle: "Single Note",
	"major":    "Major",
	"minor":    "Minor",
	TypeFifth:  "Fifth (Power Chord)",
	"sus2":     "Suspended Second",
	"sus4":     "Suspended Fourth",
	"dim":      "Diminished",
	"aug":      "Augmented",
	"flat5":    "Major Flat Five",
	"six":      "Major Sixth",
	"min6":     "Minor Sixth",
	"dom7":     "Dominant Seventh",
	"maj7":     "Major Seventh",
	"min7":     "Minor Seventh",
	"minmaj7":  "Minor Major Seventh",
	"dim7":     "Diminished Seventh",
	"m7b5":     "Half-Diminished Seventh",
	"aug7":     "Augmented Seventh",
	"dom7sus4": "Dominant Seventh Suspended Fourth",
	"add9":     "Added Ninth",
	"nine":     "Dominant Ninth",
	"maj9":     "Major Ninth",
	"min9":     "Minor Ninth",
	"eleven":   "Eleventh",
	"thirteen": "Thirteenth",
}

var priorityIndex = func() map[string]int {
	m := make(map[string]int, len(ChordOrder))
	for i, typeKey := range ChordOrder {
		m[typeKey] = i
	}
	return m
}()

// PriorityIndex positions a type in the ranking order. Unknown types
// sort after everything in the table.
func PriorityIndex(typeKey string) int {
	if i, ok := priorityIndex[typeKey]; ok {
		return i
	}
	return len(ChordOrder)
}

func Suffix(typeKey string) string {
	return suffixes[typeKey]
}

// LongName falls back to the raw type key for types outside the table.
func LongName(typeKey string) string {
	if name, ok := longNames[typeKey]; ok {
		return name
	}
	return typeKey
}

// ChordTones transposes a formula to a root, preserving interval order.
// Index position in the result is what turns a bass note into an
// inversion ordinal.
func ChordTones(root int, typeKey string) []int {
	intervals := Formulas[typeKey]
	tones := make([]int, 0, len(intervals))
	for _, interval := range intervals {
		tones = append(tones, ToPitchClass(root+interval))
	}
	return tones
}
