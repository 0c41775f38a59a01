package moves

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/burrow/pathcache"
	"github.com/katalvlaran/burrow/topology"
)

// Generator enumerates legal moves over one topology and roster.
// It is read-only after NewGenerator and may be shared.
type Generator struct {
	g      *topology.Graph
	paths  *pathcache.Cache
	roster *Roster
}

// NewGenerator binds a path cache and a roster. Every kind must have a home
// room in the cache's topology (ErrKindWithoutRoom).
func NewGenerator(paths *pathcache.Cache, roster *Roster) (*Generator, error) {
	if paths == nil {
		return nil, pathcache.ErrNilGraph
	}
	g := paths.Graph()
	if roster.Kinds() > g.Rooms() {
		return nil, fmt.Errorf("%w: %d kinds, %d rooms", ErrKindWithoutRoom, roster.Kinds(), g.Rooms())
	}

	return &Generator{g: g, paths: paths, roster: roster}, nil
}

// Graph returns the topology moves are generated over.
func (gen *Generator) Graph() *topology.Graph { return gen.g }

// Roster returns the token set moves are generated for.
func (gen *Generator) Roster() *Roster { return gen.roster }

// Validate checks that c belongs to this generator: right token count, every
// token on a cell of the layout, no shared cells.
func (gen *Generator) Validate(c Configuration) error {
	if c.Len() != gen.roster.Len() {
		return fmt.Errorf("%w: got %d tokens for %d", ErrTokenCount, c.Len(), gen.roster.Len())
	}
	seen := make(map[topology.Cell]bool, c.Len())
	for i := range c.Len() {
		cell := c.Cell(i)
		if !gen.g.Has(cell) {
			return fmt.Errorf("%w: token %d at %s", ErrOffLayout, i, cell)
		}
		if seen[cell] {
			return fmt.Errorf("%w: %s", ErrOverlap, cell)
		}
		seen[cell] = true
	}

	return nil
}

// Solved reports whether c is terminal.
func (gen *Generator) Solved(c Configuration) bool { return c.Solved(gen.roster) }

// Apply performs m on c; see Configuration.Apply.
func (gen *Generator) Apply(c Configuration, m Move) Configuration { return c.Apply(gen.roster, m) }

// roomState summarizes the occupancy of one room.
type roomState struct {
	foreign  bool // holds a token of another kind
	complete bool // every slot holds a token of the room's kind
	entry    int  // deepest empty slot, -1 if full
}

// board is the per-call occupancy snapshot of a configuration.
type board struct {
	occupied []bool // dense cell index → occupied
	rooms    []roomState
}

func (gen *Generator) snapshot(c Configuration) board {
	b := board{
		occupied: make([]bool, gen.g.Len()),
		rooms:    make([]roomState, gen.g.Rooms()),
	}
	kindAt := make(map[topology.Cell]Kind, c.Len())
	for i := range c.Len() {
		cell := c.Cell(i)
		idx, _ := gen.g.Index(cell)
		b.occupied[idx] = true
		kindAt[cell] = gen.roster.Kind(i)
	}
	for r := range b.rooms {
		st := roomState{complete: true, entry: -1}
		for s := gen.g.Depth(r) - 1; s >= 0; s-- {
			k, ok := kindAt[topology.RoomSlot(r, s)]
			switch {
			case !ok:
				st.complete = false
				if st.entry < 0 {
					st.entry = s
				}
			case int(k) != r:
				st.foreign = true
				st.complete = false
			}
		}
		b.rooms[r] = st
	}

	return b
}

// clear reports whether every cell of route is empty.
func (gen *Generator) clear(b board, route pathcache.Route) bool {
	for _, cell := range route.Path {
		idx, _ := gen.g.Index(cell)
		if b.occupied[idx] {
			return false
		}
	}

	return true
}

// Moves returns every legal move from c, sorted by ascending cost, then by
// token index, then by destination cell. The ordering only speeds up the
// search; the set of moves is what matters.
//
// Complexity: O(T · (C + D) · L) for T tokens, C corridor stops, room depth D
// and route length L.
func (gen *Generator) Moves(c Configuration) []Move {
	b := gen.snapshot(c)
	out := make([]Move, 0, 2*c.Len())

	emit := func(i int, from, to topology.Cell) {
		route := gen.paths.Route(from, to)
		if !gen.clear(b, route) {
			return
		}
		k := gen.roster.Kind(i)
		out = append(out, Move{
			Token:    i,
			Kind:     k,
			From:     from,
			To:       to,
			Distance: route.Distance,
			Cost:     route.Distance * gen.roster.Weight(k),
		})
	}

	for i := range c.Len() {
		from := c.Cell(i)
		k := gen.roster.Kind(i)
		home := b.rooms[k]
		canEnterHome := !home.foreign && home.entry >= 0

		switch {
		case from.IsCorridor():
			if canEnterHome {
				emit(i, from, topology.RoomSlot(int(k), home.entry))
			}

		case from.IsRoom():
			if b.rooms[from.Room].complete {
				continue
			}
			for j := range gen.g.CorridorLen() {
				emit(i, from, gen.g.Cell(j))
			}
			if int(from.Room) != int(k) && canEnterHome {
				emit(i, from, topology.RoomSlot(int(k), home.entry))
			}
		}
	}

	sort.SliceStable(out, func(a, z int) bool {
		if out[a].Cost != out[z].Cost {
			return out[a].Cost < out[z].Cost
		}
		if out[a].Token != out[z].Token {
			return out[a].Token < out[z].Token
		}
		return out[a].To.Less(out[z].To)
	})

	return out
}

// Legal reports whether m is one of the moves generated from c, with the same
// origin, distance and cost. It returns an error wrapping ErrIllegalMove
// otherwise.
func (gen *Generator) Legal(c Configuration, m Move) error {
	if m.Token < 0 || m.Token >= c.Len() {
		return fmt.Errorf("%w: token %d out of range", ErrIllegalMove, m.Token)
	}
	for _, cand := range gen.Moves(c) {
		if cand.Token == m.Token && cand.To == m.To {
			if cand != m {
				return fmt.Errorf("%w: %s, expected %s", ErrIllegalMove, m, cand)
			}
			return nil
		}
	}

	return fmt.Errorf("%w: %s from %s", ErrIllegalMove, m, c.Fingerprint())
}
