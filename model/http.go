package model

type RecognizeRequestBody struct {
	Notes Notes `json:"notes"`
}

type Degree struct {
	PC    int    `json:"pc"`
	Note  string `json:"note"`
	Label string `json:"label"`
}

type RecognizeResponse struct {
	Matches []Match         `json:"matches"`
	Best    *FormattedMatch `json:"best"`
	Degrees []Degree        `json:"degrees"`
}

type VocabularyEntry struct {
	TypeKey   string `json:"type"`
	Intervals []int  `json:"intervals"`
	Suffix    string `json:"suffix"`
	LongName  string `json:"long_name"`
}

type VocabularyResponse struct {
	NoteNames []string          `json:"note_names"`
	Chords    []VocabularyEntry `json:"chords"`
}

type TemplatesResponse struct {
	Count     int        `json:"count"`
	Templates []Template `json:"templates"`
}

type RegenResponse struct {
	Count int `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
