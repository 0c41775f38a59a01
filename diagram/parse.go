package diagram

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/topology"
)

// Parse reads a burrow diagram and returns the Puzzle it describes.
//
// Validation (in order):
//  1. At least a top wall, a corridor and one room row (ErrMalformed).
//  2. The corridor is one contiguous run of open cells (ErrMalformed).
//  3. Every room row opens at the same columns, each under the corridor,
//     and no two rooms are adjacent (ErrMalformed).
//  4. No token waits on a doorway (ErrMalformed).
//  5. Every letter names a room (ErrUnknownKind).
//  6. Every kind appears exactly depth times (ErrTokenCount).
func Parse(r io.Reader, opts ...Option) (Puzzle, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lines, err := readLines(r)
	if err != nil {
		return Puzzle{}, err
	}
	if len(cfg.Insert) > 0 && len(lines) > 2 {
		lines = slices.Insert(lines, 3, cfg.Insert...)
	}

	p := &parser{lines: lines}
	if err := p.scan(); err != nil {
		return Puzzle{}, err
	}

	return p.puzzle(cfg.Weights)
}

// parser holds the intermediate state of one Parse call.
type parser struct {
	lines []string

	stops []int // corridor columns where tokens may stop
	rooms []int // room columns, left to right
	depth int
	open  map[int]bool // corridor columns, doorways included
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("diagram: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}

func isOpen(ch byte) bool { return ch == '.' || isLetter(ch) }

func isLetter(ch byte) bool { return ch >= 'A' && ch <= 'Z' }

// openColumns lists the columns of line holding open cells.
func openColumns(line string) []int {
	var cols []int
	for i := 0; i < len(line); i++ {
		if isOpen(line[i]) {
			cols = append(cols, i)
		}
	}

	return cols
}

// scan locates the corridor, the rooms and their depth.
func (p *parser) scan() error {
	if len(p.lines) < 3 {
		return fmt.Errorf("%w: need walls, a corridor and rooms, got %d lines", ErrMalformed, len(p.lines))
	}
	if len(openColumns(p.lines[0])) > 0 {
		return fmt.Errorf("%w: line 1: top wall has open cells", ErrMalformed)
	}

	// 1) Corridor.
	corridor := openColumns(p.lines[1])
	if len(corridor) == 0 {
		return fmt.Errorf("%w: line 2: corridor has no open cells", ErrMalformed)
	}
	if corridor[len(corridor)-1]-corridor[0] != len(corridor)-1 {
		return fmt.Errorf("%w: line 2: corridor is not contiguous", ErrMalformed)
	}
	p.open = make(map[int]bool, len(corridor))
	for _, c := range corridor {
		p.open[c] = true
	}

	// 2) Room rows.
	p.rooms = openColumns(p.lines[2])
	if len(p.rooms) == 0 {
		return fmt.Errorf("%w: line 3: no rooms", ErrMalformed)
	}
	for i, c := range p.rooms {
		if !p.open[c] {
			return fmt.Errorf("%w: line 3: room at column %d opens onto a wall", ErrMalformed, c+1)
		}
		if i > 0 && c-p.rooms[i-1] < 2 {
			return fmt.Errorf("%w: line 3: rooms at columns %d and %d touch", ErrMalformed, p.rooms[i-1]+1, c+1)
		}
	}
	row := 2
	for ; row < len(p.lines); row++ {
		cols := openColumns(p.lines[row])
		if len(cols) == 0 {
			break
		}
		if !slices.Equal(cols, p.rooms) {
			return fmt.Errorf("%w: line %d: room row does not line up", ErrMalformed, row+1)
		}
	}
	p.depth = row - 2
	for ; row < len(p.lines); row++ {
		if len(openColumns(p.lines[row])) > 0 {
			return fmt.Errorf("%w: line %d: open cell below the rooms", ErrMalformed, row+1)
		}
	}

	// 3) Stops are the corridor cells that are not doorways.
	for _, c := range corridor {
		if !slices.Contains(p.rooms, c) {
			p.stops = append(p.stops, c)
		}
	}
	if len(p.stops) == 0 {
		return fmt.Errorf("%w: line 2: corridor has no stops", ErrMalformed)
	}

	return nil
}

// graph links the stops and rooms found by scan.
func (p *parser) graph() (*topology.Graph, error) {
	b := topology.NewBuilder()
	b.AddCorridor(len(p.stops))
	for i := 1; i < len(p.stops); i++ {
		b.Link(topology.Hall(i-1), topology.Hall(i), int64(p.stops[i]-p.stops[i-1]))
	}
	for r, col := range p.rooms {
		b.AddRoom(p.depth)
		top := topology.RoomSlot(r, 0)
		// Nearest stop on each side of the doorway.
		right, _ := slices.BinarySearch(p.stops, col)
		if left := right - 1; left >= 0 {
			b.Link(topology.Hall(left), top, int64(col-p.stops[left]+1))
		}
		if right < len(p.stops) {
			b.Link(topology.Hall(right), top, int64(p.stops[right]-col+1))
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return g, nil
}

// puzzle builds the topology, roster and start configuration.
func (p *parser) puzzle(weights []int64) (Puzzle, error) {
	g, err := p.graph()
	if err != nil {
		return Puzzle{}, err
	}

	layout := &Layout{at: make(map[topology.Cell]position)}
	for _, line := range p.lines {
		layout.lines = append(layout.lines, []byte(line))
	}
	byKind := make([][]topology.Cell, len(p.rooms))

	// place records cell at (row, col) and collects its token, if any.
	place := func(cell topology.Cell, row, col int) error {
		layout.at[cell] = position{row: row, col: col}
		ch := layout.lines[row][col]
		layout.lines[row][col] = '.'
		if ch == '.' {
			return nil
		}
		k := int(ch - 'A')
		if k >= len(p.rooms) {
			return fmt.Errorf("%w: %q at line %d column %d", ErrUnknownKind, ch, row+1, col+1)
		}
		byKind[k] = append(byKind[k], cell)

		return nil
	}

	for i, col := range p.stops {
		if err := place(topology.Hall(i), 1, col); err != nil {
			return Puzzle{}, err
		}
	}
	for _, col := range p.rooms {
		if ch := layout.lines[1][col]; ch != '.' {
			return Puzzle{}, fmt.Errorf("%w: %q waits on the doorway at column %d", ErrMalformed, ch, col+1)
		}
	}
	for r, col := range p.rooms {
		for s := range p.depth {
			if err := place(topology.RoomSlot(r, s), 2+s, col); err != nil {
				return Puzzle{}, err
			}
		}
	}

	// Kinds are filled in order, which is the roster's token order.
	counts := make([]int, len(p.rooms))
	var cells []topology.Cell
	for k, group := range byKind {
		if len(group) != p.depth {
			return Puzzle{}, fmt.Errorf("%w: %s appears %d times, room holds %d",
				ErrTokenCount, moves.Kind(k), len(group), p.depth)
		}
		counts[k] = len(group)
		cells = append(cells, group...)
	}

	if weights == nil {
		weights = DefaultWeights(len(p.rooms))
	}
	if len(weights) > len(p.rooms) {
		weights = weights[:len(p.rooms)]
	}
	roster, err := moves.NewRoster(counts, weights)
	if err != nil {
		return Puzzle{}, err
	}
	start, err := moves.NewConfiguration(roster, cells)
	if err != nil {
		return Puzzle{}, err
	}

	return Puzzle{Graph: g, Roster: roster, Start: start, Layout: layout}, nil
}
