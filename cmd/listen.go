package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/config"
	"github.com/jsphweid/chordid/logger"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords from a live midi port",
	Long:  `Names chords from a live midi port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	cfg := config.ProvideConfig()
	log = logger.ProvideLogger(cfg.Debug)

	defer midi.CloseDriver()
	in, err := midi.InPort(cfg.MidiPort)
	if err != nil {
		log.Fatalf("could not open midi port %v: %v", cfg.MidiPort, err)
	}

	var mu sync.Mutex
	onNotes := make(model.OnNotes)

	// let fast arpeggios settle into one chord before naming it
	deb := debounce.New(time.Duration(cfg.DebounceMS) * time.Millisecond)
	report := func() {
		mu.Lock()
		keys := util.SortedKeys(onNotes)
		mu.Unlock()

		notes := make(model.Notes, 0, len(keys))
		for _, key := range keys {
			notes = append(notes, int(key))
		}

		matches := chord.Recognize(notes)
		if len(matches) == 0 {
			return
		}
		best := chord.FormatMatch(matches[0], notes)
		fmt.Printf("%v (%v)\n", best.DisplayName, best.LongName)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			deb(report)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			deb(report)
		default:
			// ignore
		}
	})
	if err != nil {
		log.Fatalf("could not listen to midi port %v: %v", cfg.MidiPort, err)
	}
	defer stop()

	log.Infow("listening", "port", cfg.MidiPort, "debounceMs", cfg.DebounceMS)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
