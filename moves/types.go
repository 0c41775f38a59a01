// Package moves holds the search-node data model (tokens, configurations,
// moves) and the legality rules that generate every single-token move
// available from a configuration.
//
// Rules enforced by Generator.Moves:
//
//   - A token in the corridor may only move into its home room, and only if
//     that room holds no token of a foreign kind.
//   - A token in a room may walk out to any corridor stop unless the room is
//     complete (every slot holds a token of the room's kind). A token in a
//     complete room never moves again.
//   - A token in a room other than its home may also walk straight into its
//     home room under the same entry rule as from the corridor.
//   - Rooms are always entered at their deepest empty slot.
//   - Every cell along the route, destination included, must be empty.
//   - Corridor to corridor moves are never generated.
//   - The cost of a move is its route distance times the kind's weight.
package moves

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/burrow/topology"
)

// MaxTokens bounds the number of tokens in a Configuration, which is stored
// as a fixed-size array so that it is a comparable value.
const MaxTokens = 32

// Sentinel errors for the move model.
var (
	// ErrTooManyTokens indicates a roster larger than MaxTokens.
	ErrTooManyTokens = errors.New("moves: too many tokens")

	// ErrBadRoster indicates mismatched kind counts and weights, or a
	// negative count or weight.
	ErrBadRoster = errors.New("moves: invalid roster")

	// ErrKindWithoutRoom indicates a kind whose home room does not exist.
	ErrKindWithoutRoom = errors.New("moves: kind has no home room")

	// ErrTokenCount indicates a configuration with the wrong number of cells.
	ErrTokenCount = errors.New("moves: token count does not match roster")

	// ErrOverlap indicates two tokens placed in the same cell.
	ErrOverlap = errors.New("moves: two tokens share a cell")

	// ErrOffLayout indicates a token placed outside the topology.
	ErrOffLayout = errors.New("moves: token placed outside the layout")

	// ErrIllegalMove indicates a move that the rules do not allow.
	ErrIllegalMove = errors.New("moves: illegal move")
)

// Kind identifies a token's home room: kind k lives in room k.
type Kind uint8

// Letter returns the diagram letter of k ('A' for kind 0).
func (k Kind) Letter() byte { return 'A' + byte(k) }

// String returns the diagram letter of k.
func (k Kind) String() string { return string(k.Letter()) }

// Token is an identity-bearing movable unit.
type Token struct {
	Index int
	Kind  Kind
}

// Move is a single-token step from one cell to another.
//
// Token is the index of the moving token in the configuration the move is
// applied to. Distance is the route length and Cost is Distance times the
// kind weight.
type Move struct {
	Token    int
	Kind     Kind
	From     topology.Cell
	To       topology.Cell
	Distance int64
	Cost     int64
}

// String renders a move as "B R1.0→H2 (40)".
func (m Move) String() string {
	return fmt.Sprintf("%s %s→%s (%d)", m.Kind, m.From, m.To, m.Cost)
}
