package model

// Notes are absolute note ids (midi note numbers or piano key indexes).
// Negative ids are tolerated and normalize during pitch class reduction.
type Notes = []int

// OnNotes tracks which keys a live midi input currently holds down.
type OnNotes = map[uint8]bool

type Template struct {
	Root    int    `json:"root"`
	TypeKey string `json:"type"`
	PCs     []int  `json:"pcs"`
	Size    int    `json:"size"`
}

type Match struct {
	Root         int    `json:"root"`
	TypeKey      string `json:"type"`
	MatchedCount int    `json:"matched_count"`
	ChordSize    int    `json:"chord_size"`
	IsSubset     bool   `json:"is_subset"`
	ExactMatch   bool   `json:"exact_match"`
	MatchedPCs   []int  `json:"matched_pcs"`
	MissingPCs   []int  `json:"missing_pcs"`
	ExtraPCs     []int  `json:"extra_pcs"`
}

type FormattedMatch struct {
	DisplayName string  `json:"display_name"`
	Inversion   *string `json:"inversion"`
	BassName    *string `json:"bass_name"`
	LongName    string  `json:"long_name"`
}
