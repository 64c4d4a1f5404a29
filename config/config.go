package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port int `default:"8080"`

	MidiPort   int `envconfig:"MIDI_PORT" default:"0"`
	DebounceMS int `envconfig:"DEBOUNCE_MS" default:"40"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`

	Debug bool `default:"false"`
}

// ProvideConfig reads CHORDID_* env vars over the struct defaults.
func ProvideConfig() Config {
	var cfg Config
	err := envconfig.Process("chordid", &cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}
