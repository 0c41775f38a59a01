// Package search defines options, results and sentinel errors for the
// uniform-cost search over burrow configurations.
package search

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/burrow/moves"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGenerator indicates that Solve was given a nil *moves.Generator.
	ErrNilGenerator = errors.New("search: generator is nil")

	// ErrInvalidStart indicates a start configuration that does not belong to
	// the generator's topology and roster.
	ErrInvalidStart = errors.New("search: invalid start configuration")

	// ErrExpansionLimit indicates that the expansion cap was reached before
	// the frontier drained. The accompanying Result holds the best terminal
	// found so far, which is not proven optimal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")
)

// Options configures Solve.
//
//   - MaxExpansions: cap on the number of configurations expanded; 0 means no cap.
//   - Bound: skip successors whose cost cannot beat the best terminal found
//     so far. Enabled by default; disabling it makes the search settle every
//     reachable configuration.
//   - Logger: receives progress records at Debug level.
type Options struct {
	MaxExpansions int
	Bound         bool
	Logger        *slog.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded configurations.
// Panics on a negative value.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithoutBound disables pruning against the best terminal found so far.
func WithoutBound() Option {
	return func(o *Options) {
		o.Bound = false
	}
}

// WithLogger routes progress records to l. A nil logger discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.Logger = l
	}
}

// DefaultOptions returns the defaults: no expansion cap, bounding enabled,
// logging discarded.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Bound:         true,
		Logger:        discardLogger(),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Step is one move of a reconstructed solution together with the
// configuration it produces.
type Step struct {
	Move          moves.Move
	Configuration moves.Configuration
}

// Result is the outcome of Solve.
//
// Found is false when no terminal configuration is reachable: this is an
// ordinary outcome, not an error. When Found is true, Cost is the minimal
// total movement cost and Steps lists the moves from Start to Final.
type Result struct {
	Found      bool
	Cost       int64
	Start      moves.Configuration
	Final      moves.Configuration
	Steps      []Step
	Expansions int

	// BestCosts maps every non-terminal configuration recorded by the search
	// to the cheapest cost found for it.
	BestCosts map[moves.Fingerprint]int64
}

// Trace returns the configurations of the solution in order, from Start to
// Final. It is empty when no solution was found.
func (r Result) Trace() []moves.Configuration {
	if !r.Found {
		return nil
	}
	out := make([]moves.Configuration, 0, len(r.Steps)+1)
	out = append(out, r.Start)
	for _, s := range r.Steps {
		out = append(out, s.Configuration)
	}

	return out
}
