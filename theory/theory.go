package theory

// NoteNames are the 12 pitch class names, sharps only, indexed by pitch class.
var NoteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// scale degree labels indexed by semitones above the root
var intervalNames = []string{"1", "♭2", "2", "♭3", "3", "4", "♭5", "5", "#5", "6", "♭7", "7"}

// ToPitchClass reduces any note id to [0,11], staying non-negative
// even for negative inputs.
func ToPitchClass(n int) int {
	return ((n % 12) + 12) % 12
}

func NoteName(pc int) string {
	return NoteNames[ToPitchClass(pc)]
}

func ReduceToPitchClassSet(notes []int) map[int]bool {
	set := make(map[int]bool, len(notes))
	for _, n := range notes {
		set[ToPitchClass(n)] = true
	}
	return set
}

// IntervalName labels a semitone offset as a scale degree. Display only,
// never used for matching.
func IntervalName(semitones int) string {
	return intervalNames[ToPitchClass(semitones)]
}
