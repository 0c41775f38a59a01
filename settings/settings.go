// Package settings loads the solver configuration from YAML.
//
// A settings file looks like:
//
//	weights: [1, 10, 100, 1000]
//	max_expansions: 0
//	log_level: info
//	trace: false
//	unfold: false
//
// Every field is optional; missing fields keep their Default value. Unknown
// fields are rejected.
package settings

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a settings value outside its allowed range.
var ErrInvalid = errors.New("settings: invalid value")

// Settings holds the tunables of a solve run.
type Settings struct {
	// Weights is the per-kind move weight table. Empty selects 1, 10, 100, ...
	Weights []int64 `yaml:"weights"`

	// MaxExpansions caps the search; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Trace prints every step of the solution.
	Trace bool `yaml:"trace"`

	// Unfold inserts the two extra room rows of the deep variant.
	Unfold bool `yaml:"unfold"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{LogLevel: "warn"}
}

// Load reads settings from the YAML file at path on top of Default.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%w (%s)", err, path)
	}

	return s, nil
}

// Decode reads settings from r on top of Default and validates them.
// An empty document yields Default.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("settings: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks every field.
func (s Settings) Validate() error {
	for i, w := range s.Weights {
		if w < 0 {
			return fmt.Errorf("%w: weights[%d]=%d is negative", ErrInvalid, i, w)
		}
	}
	if s.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions=%d is negative", ErrInvalid, s.MaxExpansions)
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level named by LogLevel, or Warn if it is invalid.
func (s Settings) Level() slog.Level {
	l, err := parseLevel(s.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}

	return l
}

func parseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, name)
	}

	return l, nil
}
