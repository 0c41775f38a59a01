package moves

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/burrow/topology"
)

// Fingerprint is the identity of a configuration's token→cell assignment,
// without its cost. It is comparable and serves as the visited-state key.
//
// Tokens of one kind are interchangeable, so cells are kept sorted within
// each kind group: two configurations that differ only by swapping
// same-kind tokens share a fingerprint.
type Fingerprint struct {
	n     uint8
	cells [MaxTokens]topology.Cell
}

// Len returns the number of tokens in the assignment.
func (f Fingerprint) Len() int { return int(f.n) }

// Cell returns the cell of token i.
func (f Fingerprint) Cell(i int) topology.Cell { return f.cells[i] }

// Compare orders fingerprints lexicographically by token cell.
func (f Fingerprint) Compare(o Fingerprint) int {
	n := f.n
	if o.n < n {
		n = o.n
	}
	for i := range int(n) {
		if c := f.cells[i].Compare(o.cells[i]); c != 0 {
			return c
		}
	}
	switch {
	case f.n < o.n:
		return -1
	case f.n > o.n:
		return 1
	default:
		return 0
	}
}

// Less reports whether f sorts before o under Compare.
func (f Fingerprint) Less(o Fingerprint) bool { return f.Compare(o) < 0 }

// String lists token cells in index order.
func (f Fingerprint) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range int(f.n) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.cells[i].String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Configuration is a search node: a full token→cell assignment plus the
// accumulated cost of reaching it. It is a small value type; copy it freely.
type Configuration struct {
	fp Fingerprint

	// Cost is the total movement cost from the initial configuration.
	Cost int64
}

// NewConfiguration places token i of r at cells[i] with zero cost.
//
// Errors:
//   - ErrTokenCount if len(cells) != r.Len().
//   - ErrOverlap if two tokens share a cell.
func NewConfiguration(r *Roster, cells []topology.Cell) (Configuration, error) {
	if len(cells) != r.Len() {
		return Configuration{}, fmt.Errorf("%w: got %d cells for %d tokens", ErrTokenCount, len(cells), r.Len())
	}
	var c Configuration
	c.fp.n = uint8(len(cells))
	seen := make(map[topology.Cell]int, len(cells))
	for i, cell := range cells {
		if j, dup := seen[cell]; dup {
			return Configuration{}, fmt.Errorf("%w: tokens %d and %d at %s", ErrOverlap, j, i, cell)
		}
		seen[cell] = i
		c.fp.cells[i] = cell
	}
	for k := range r.Kinds() {
		lo, hi := r.group(Kind(k))
		sortCells(c.fp.cells[lo:hi])
	}

	return c, nil
}

// Len returns the number of tokens.
func (c Configuration) Len() int { return int(c.fp.n) }

// Cell returns the cell of token i.
func (c Configuration) Cell(i int) topology.Cell { return c.fp.cells[i] }

// Cells returns a copy of the token cells in index order.
func (c Configuration) Cells() []topology.Cell {
	out := make([]topology.Cell, c.fp.n)
	copy(out, c.fp.cells[:c.fp.n])

	return out
}

// Fingerprint returns the cost-free identity of c.
func (c Configuration) Fingerprint() Fingerprint { return c.fp }

// Occupant returns the index of the token at cell, if any.
func (c Configuration) Occupant(cell topology.Cell) (int, bool) {
	for i := range int(c.fp.n) {
		if c.fp.cells[i] == cell {
			return i, true
		}
	}

	return -1, false
}

// Solved reports whether every token rests in a slot of its home room.
func (c Configuration) Solved(r *Roster) bool {
	for i := range int(c.fp.n) {
		cell := c.fp.cells[i]
		if !cell.IsRoom() || Kind(cell.Room) != r.Kind(i) {
			return false
		}
	}

	return true
}

// Apply returns the configuration reached by performing m on c. The result is
// re-canonicalized, so the moving token may end up at a different index within
// its kind group. Apply does not check legality; see Generator.Legal.
func (c Configuration) Apply(r *Roster, m Move) Configuration {
	next := c
	next.fp.cells[m.Token] = m.To
	next.Cost = c.Cost + m.Cost
	lo, hi := r.group(r.Kind(m.Token))
	sortCells(next.fp.cells[lo:hi])

	return next
}

// String renders c as its fingerprint and cost.
func (c Configuration) String() string {
	return fmt.Sprintf("%s cost=%d", c.fp, c.Cost)
}

// sortCells is an insertion sort; kind groups hold a handful of cells.
func sortCells(cells []topology.Cell) {
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j].Less(cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}
