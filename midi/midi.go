package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordid/model"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// ChordChanges flattens every track of an smf into one timeline and
// replays it, emitting the held note set at each point it changes.
func ChordChanges(s *smf.SMF) []model.ChordChange {
	var events []model.NoteEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, model.NoteEvent{
					Offset: absTime,
					Note:   key,
					// note on with velocity 0 is a release
					IsNoteOff: velocity == 0,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.NoteEvent{
					Offset:    absTime,
					Note:      key,
					IsNoteOff: true,
				})
			}
		}
	}

	return ReplayNoteEvents(events)
}

// ReplayNoteEvents walks note ons and offs in time order and records
// the pressed set after each distinct offset that leaves notes held.
func ReplayNoteEvents(events []model.NoteEvent) []model.ChordChange {
	// note offs first on equal offsets so retriggered notes don't cancel out
	sort.Slice(events, func(i, j int) bool {
		if events[i].Offset != events[j].Offset {
			return events[i].Offset < events[j].Offset
		}
		return events[i].IsNoteOff && !events[j].IsNoteOff
	})

	var changes []model.ChordChange
	pressed := make(map[uint8]bool)

	for i, event := range events {
		if event.IsNoteOff {
			delete(pressed, event.Note)
		} else {
			pressed[event.Note] = true
		}

		// coalesce simultaneous events into one change
		if i+1 < len(events) && events[i+1].Offset == event.Offset {
			continue
		}
		if len(pressed) == 0 {
			continue
		}

		notes := make(model.Notes, 0, len(pressed))
		for note := range pressed {
			notes = append(notes, int(note))
		}
		sort.Ints(notes)
		changes = append(changes, model.ChordChange{
			OffsetMS: event.Offset / 1000,
			Notes:    notes,
		})
	}

	return changes
}
