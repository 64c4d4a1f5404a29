package model

// NoteEvent is a note on/off flattened out of a midi file track.
// Offset is absolute microseconds from the start of the file.
type NoteEvent struct {
	Offset    int64
	Note      uint8
	IsNoteOff bool
}

// ChordChange is one snapshot of the sounding note set in a timeline.
type ChordChange struct {
	OffsetMS int64
	Notes    Notes
}
