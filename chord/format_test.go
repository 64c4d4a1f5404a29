package chord

import (
	"testing"

	"github.com/jsphweid/chordid/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatSingleNote(t *testing.T) {
	res := FormatMatch(model.Match{Root: 4, TypeKey: "single", ChordSize: 1}, model.Notes{64})

	assert := assert.New(t)
	assert.Equal("E", res.DisplayName)
	assert.Equal("Single Note", res.LongName)
	assert.Nil(res.Inversion)
	assert.Nil(res.BassName)
}

func TestFormatRootPosition(t *testing.T) {
	m := model.Match{Root: 0, TypeKey: "major", ChordSize: 3}
	res := FormatMatch(m, model.Notes{60, 64, 67})

	assert := assert.New(t)
	assert.Equal("C", res.DisplayName)
	assert.Equal("Major", res.LongName)
	assert.Equal("root position", *res.Inversion)
	assert.Equal("C", *res.BassName)
}

func TestFormatFirstInversion(t *testing.T) {
	m := model.Match{Root: 0, TypeKey: "major", ChordSize: 3}
	res := FormatMatch(m, model.Notes{64, 67, 72})

	assert := assert.New(t)
	assert.Equal("C", res.DisplayName)
	assert.Equal("1st inversion", *res.Inversion)
	assert.Equal("E", *res.BassName)
}

func TestFormatSecondInversion(t *testing.T) {
	m := model.Match{Root: 0, TypeKey: "major", ChordSize: 3}
	res := FormatMatch(m, model.Notes{67, 72, 76})

	assert := assert.New(t)
	assert.Equal("2nd inversion", *res.Inversion)
	assert.Equal("G", *res.BassName)
}

func TestFormatThirdInversionSeventh(t *testing.T) {
	m := model.Match{Root: 0, TypeKey: "dom7", ChordSize: 4}
	res := FormatMatch(m, model.Notes{70, 72, 76, 79})

	assert := assert.New(t)
	assert.Equal("C7", res.DisplayName)
	assert.Equal("3rd inversion", *res.Inversion)
	assert.Equal("A#", *res.BassName)
}

func TestFormatNoChordToneInBass(t *testing.T) {
	m := model.Match{Root: 0, TypeKey: "major", ChordSize: 3}
	res := FormatMatch(m, model.Notes{59, 60, 64, 67})

	assert := assert.New(t)
	assert.Equal("C", res.DisplayName)
	assert.Equal("no chord tone in bass", *res.Inversion)
	assert.Equal("B", *res.BassName)
}

func TestFormatNinthUsesSlashBass(t *testing.T) {
	m := model.Match{Root: 0, TypeKey: "nine", ChordSize: 5}
	res := FormatMatch(m, model.Notes{64, 67, 70, 72, 74})

	assert := assert.New(t)
	assert.Equal("C9/E", res.DisplayName)
	assert.Equal("slash bass", *res.Inversion)
	assert.Equal("E", *res.BassName)
}

func TestFormatNinthWithRootInBassStillShowsSlash(t *testing.T) {
	matches := Recognize(model.Notes{60, 62, 64, 67, 70})
	assert := assert.New(t)
	assert.Equal("nine", matches[0].TypeKey)

	res := FormatMatch(matches[0], model.Notes{60, 62, 64, 67, 70})
	assert.Equal("C9/C", res.DisplayName)
	assert.Equal("slash bass", *res.Inversion)
}

func TestFormatFifthShowsTrueBottomNote(t *testing.T) {
	notes := model.Notes{60, 65}
	matches := Recognize(notes)
	res := FormatMatch(matches[0], notes)

	assert := assert.New(t)
	assert.Equal("F5/C", res.DisplayName)
	assert.Equal("1st inversion", *res.Inversion)
	assert.Equal("C", *res.BassName)
}

func TestFormatFifthRootPosition(t *testing.T) {
	notes := model.Notes{60, 67}
	matches := Recognize(notes)
	res := FormatMatch(matches[0], notes)

	assert := assert.New(t)
	assert.Equal("C5", res.DisplayName)
	assert.Equal("root position", *res.Inversion)
}

func TestFormatWithoutNotes(t *testing.T) {
	res := FormatMatch(model.Match{Root: 0, TypeKey: "major", ChordSize: 3}, nil)

	assert := assert.New(t)
	assert.Equal("C", res.DisplayName)
	assert.Nil(res.Inversion)
	assert.Nil(res.BassName)
}

func TestFormatUnknownTypeFallsBackToKey(t *testing.T) {
	res := FormatMatch(model.Match{Root: 0, TypeKey: "mystery", ChordSize: 3}, model.Notes{60})

	assert := assert.New(t)
	assert.Equal("mystery", res.LongName)
	assert.Equal("no chord tone in bass", *res.Inversion)
}
