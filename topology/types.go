// Package topology defines the Cell, Edge and Graph types describing the
// fixed physical layout of a burrow: a corridor of stopping cells plus
// several rooms of configurable depth hanging off it.
//
// This file declares Place, Cell, Edge and the sentinel errors returned
// while building a Graph.
//
// Errors:
//
//	ErrEmptyLayout     - the builder holds no cells.
//	ErrBadDepth        - a room was added with depth < 1.
//	ErrBadCorridor     - a corridor was added with a non-positive length.
//	ErrUnknownCell     - a link references a cell outside the layout.
//	ErrSelfLink        - a link connects a cell to itself.
//	ErrBadDistance     - a link distance is not strictly positive.
//	ErrDuplicateLink   - the same pair of cells is linked twice.
//	ErrDisconnected    - some cell cannot be reached from the others.
package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout construction.
var (
	// ErrEmptyLayout indicates Build was called before any cell was added.
	ErrEmptyLayout = errors.New("topology: layout has no cells")

	// ErrBadDepth indicates a room depth smaller than one slot.
	ErrBadDepth = errors.New("topology: room depth must be at least 1")

	// ErrBadCorridor indicates a corridor length smaller than one stop.
	ErrBadCorridor = errors.New("topology: corridor length must be at least 1")

	// ErrUnknownCell indicates a link endpoint that is not part of the layout.
	ErrUnknownCell = errors.New("topology: cell not part of the layout")

	// ErrSelfLink indicates a link from a cell to itself.
	ErrSelfLink = errors.New("topology: cell cannot link to itself")

	// ErrBadDistance indicates a link distance that is zero or negative.
	ErrBadDistance = errors.New("topology: link distance must be positive")

	// ErrDuplicateLink indicates two links between the same pair of cells.
	ErrDuplicateLink = errors.New("topology: cells already linked")

	// ErrDisconnected indicates the layout graph is not connected.
	ErrDisconnected = errors.New("topology: layout is not connected")
)

// Place tags which variant a Cell is.
type Place uint8

const (
	// Nowhere is the zero Place; a Cell with this tag is not addressable.
	Nowhere Place = iota

	// Corridor marks a stopping cell in the corridor.
	Corridor

	// Room marks a slot inside a room.
	Room
)

// Cell identifies an addressable position. It is a small comparable value,
// usable as a map key and storable in fixed-size arrays.
//
// For Corridor cells Slot is the stop position along the corridor and Room
// is zero. For Room cells Room is the room index and Slot is the depth,
// where 0 is the slot next to the corridor.
type Cell struct {
	Place Place
	Room  uint8
	Slot  uint8
}

// Hall returns the corridor cell at stop position pos.
func Hall(pos int) Cell {
	return Cell{Place: Corridor, Slot: uint8(pos)}
}

// RoomSlot returns the slot of the given room at the given depth.
func RoomSlot(room, depth int) Cell {
	return Cell{Place: Room, Room: uint8(room), Slot: uint8(depth)}
}

// IsCorridor reports whether c is a corridor stop.
func (c Cell) IsCorridor() bool { return c.Place == Corridor }

// IsRoom reports whether c is a room slot.
func (c Cell) IsRoom() bool { return c.Place == Room }

// Compare orders cells: corridor stops first by position, then room slots by
// room and depth. It returns -1, 0 or +1.
func (c Cell) Compare(o Cell) int {
	switch {
	case c.Place != o.Place:
		return cmpUint8(uint8(c.Place), uint8(o.Place))
	case c.Room != o.Room:
		return cmpUint8(c.Room, o.Room)
	default:
		return cmpUint8(c.Slot, o.Slot)
	}
}

// Less reports whether c sorts before o under Compare.
func (c Cell) Less(o Cell) bool { return c.Compare(o) < 0 }

// String renders corridor stops as "H3" and room slots as "R1.0".
func (c Cell) String() string {
	switch c.Place {
	case Corridor:
		return fmt.Sprintf("H%d", c.Slot)
	case Room:
		return fmt.Sprintf("R%d.%d", c.Room, c.Slot)
	default:
		return "nowhere"
	}
}

func cmpUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Edge is one adjacency entry: the neighbor cell and the walking distance to it.
type Edge struct {
	To       Cell
	Distance int64
}
