package theory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPitchClass(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{60, 0},
		{61, 1},
		{71, 11},
		{72, 0},
		{127, 7},
		{-1, 11},
		{-12, 0},
		{-13, 11},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v reduces to %v", c.in, c.want), func(t *testing.T) {
			assert.Equal(t, c.want, ToPitchClass(c.in))
		})
	}
}

func TestReduceToPitchClassSetCollapsesOctaves(t *testing.T) {
	set := ReduceToPitchClassSet([]int{60, 72, 84, 64, -8})

	assert := assert.New(t)
	assert.Equal(2, len(set))
	assert.True(set[0])
	assert.True(set[4])
}

func TestNoteNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(12, len(NoteNames))
	assert.Equal("C", NoteName(0))
	assert.Equal("B", NoteName(11))
	assert.Equal("C#", NoteName(13))
	assert.Equal("B", NoteName(-1))
}

func TestIntervalName(t *testing.T) {
	wanted := []string{"1", "♭2", "2", "♭3", "3", "4", "♭5", "5", "#5", "6", "♭7", "7"}
	for semis, want := range wanted {
		t.Run(fmt.Sprintf("%v semitones is %v", semis, want), func(t *testing.T) {
			assert.Equal(t, want, IntervalName(semis))
		})
	}
}

func TestIntervalNameReducesCompoundAndNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("2", IntervalName(14))
	assert.Equal("7", IntervalName(-1))
	assert.Equal("1", IntervalName(24))
}
