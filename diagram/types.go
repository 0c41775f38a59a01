// Package diagram reads and writes the text form of a burrow:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The second line is the corridor. Every following line holding open cells
// ('.' or a letter) is one row of rooms; room columns are fixed by the first
// such row. Corridor cells directly above a room are doorways and are not
// modeled as stops. Distances are taken from the columns: consecutive stops
// are as far apart as their columns, and a room's top slot is one step
// further than the column gap to its nearest stop on each side.
//
// Letters name kinds: 'A' lives in the leftmost room, 'B' in the next one,
// and so on. Every kind must appear exactly as many times as a room is deep.
//
// Errors:
//
//	ErrMalformed   - the text does not describe a burrow.
//	ErrUnknownKind - a letter names a kind without a room.
//	ErrTokenCount  - a kind does not fill its room exactly.
package diagram

import (
	"errors"

	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/topology"
)

// Sentinel errors returned by Parse.
var (
	// ErrMalformed indicates text that does not follow the diagram format.
	ErrMalformed = errors.New("diagram: malformed burrow diagram")

	// ErrUnknownKind indicates a letter beyond the number of rooms.
	ErrUnknownKind = errors.New("diagram: letter has no home room")

	// ErrTokenCount indicates a kind whose token count differs from the room depth.
	ErrTokenCount = errors.New("diagram: kind does not fill its room")
)

// UnfoldRows are the two room rows inserted below the first one to turn the
// sample burrow into its deep variant.
var UnfoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Options configures Parse.
//
//   - Weights: per-kind move weights. Nil selects DefaultWeights. Extra
//     entries beyond the number of kinds are ignored.
//   - Insert: room rows spliced in after the first room row before parsing.
type Options struct {
	Weights []int64
	Insert  []string
}

// Option is a functional option for Parse.
type Option func(*Options)

// WithWeights sets the per-kind weight table.
func WithWeights(w []int64) Option {
	return func(o *Options) {
		o.Weights = append([]int64(nil), w...)
	}
}

// WithInsertedRows splices rows in after the first room row.
func WithInsertedRows(rows ...string) Option {
	return func(o *Options) {
		o.Insert = append(o.Insert, rows...)
	}
}

// DefaultOptions returns the defaults: decimal weights, nothing inserted.
func DefaultOptions() Options {
	return Options{}
}

// DefaultWeights returns the weight table 1, 10, 100, ... for n kinds.
func DefaultWeights(n int) []int64 {
	out := make([]int64, n)
	w := int64(1)
	for i := range out {
		out[i] = w
		w *= 10
	}

	return out
}

// Puzzle is a parsed diagram: the layout, the token roster, the starting
// configuration and the template used to draw configurations back.
type Puzzle struct {
	Graph  *topology.Graph
	Roster *moves.Roster
	Start  moves.Configuration
	Layout *Layout
}

// Layout remembers where each cell sits in the text so that configurations
// can be drawn in the same shape they were read from.
type Layout struct {
	lines [][]byte
	at    map[topology.Cell]position
}

type position struct {
	row, col int
}
