package topology

import "fmt"

// Graph is the immutable adjacency structure of a burrow layout.
//
// Every cell has a dense index in [0, Len()). Corridor stops come first in
// position order, followed by the slots of each room from the corridor side
// down. Neighbor lists keep the order in which links were declared, so any
// traversal over a Graph is deterministic.
//
// A Graph is only produced by Builder.Build and is never mutated afterwards,
// so it is safe to share between readers without locking.
type Graph struct {
	cells    []Cell       // index → cell
	index    map[Cell]int // cell → index
	adj      [][]Edge     // index → neighbors
	corridor int          // number of corridor stops
	depths   []int        // room → depth
}

// Len returns the number of cells in the layout.
func (g *Graph) Len() int { return len(g.cells) }

// Cells returns every cell in index order. The returned slice is a copy.
func (g *Graph) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Cell returns the cell with dense index i. It panics if i is out of range.
func (g *Graph) Cell(i int) Cell { return g.cells[i] }

// Index returns the dense index of c and whether c belongs to the layout.
func (g *Graph) Index(c Cell) (int, bool) {
	i, ok := g.index[c]

	return i, ok
}

// Has reports whether c belongs to the layout.
func (g *Graph) Has(c Cell) bool {
	_, ok := g.index[c]

	return ok
}

// Neighbors returns the static adjacency of c as (neighbor, distance) pairs.
// The slice is shared with the Graph and must be treated as read-only.
// Unknown cells have no neighbors.
func (g *Graph) Neighbors(c Cell) []Edge {
	i, ok := g.index[c]
	if !ok {
		return nil
	}

	return g.adj[i]
}

// NeighborsAt is Neighbors addressed by dense index.
func (g *Graph) NeighborsAt(i int) []Edge { return g.adj[i] }

// CorridorLen returns the number of corridor stops.
func (g *Graph) CorridorLen() int { return g.corridor }

// Corridor returns the corridor stops in position order.
func (g *Graph) Corridor() []Cell {
	out := make([]Cell, g.corridor)
	copy(out, g.cells[:g.corridor])

	return out
}

// Rooms returns the number of rooms.
func (g *Graph) Rooms() int { return len(g.depths) }

// Depth returns the number of slots in room r, or 0 if r is not a room.
func (g *Graph) Depth(r int) int {
	if r < 0 || r >= len(g.depths) {
		return 0
	}

	return g.depths[r]
}

// RoomCells returns the slots of room r from the corridor side down.
func (g *Graph) RoomCells(r int) []Cell {
	d := g.Depth(r)
	out := make([]Cell, d)
	for s := range d {
		out[s] = RoomSlot(r, s)
	}

	return out
}

// link records one declared undirected connection.
type link struct {
	a, b     Cell
	distance int64
}

// Builder accumulates corridor stops, rooms and links, and validates them in
// Build. The first error encountered by a builder method is remembered and
// returned by Build; later calls become no-ops.
type Builder struct {
	corridor int
	depths   []int
	links    []link
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddCorridor appends n stops to the corridor and returns them in order.
// Stops are not linked to each other; use Link or LinkCorridor.
func (b *Builder) AddCorridor(n int) []Cell {
	if b.err != nil {
		return nil
	}
	if n < 1 {
		b.err = fmt.Errorf("%w: got %d", ErrBadCorridor, n)
		return nil
	}
	out := make([]Cell, n)
	for i := range n {
		out[i] = Hall(b.corridor + i)
	}
	b.corridor += n

	return out
}

// AddRoom appends a room with the given depth and returns its index.
// Consecutive slots of the room are linked with distance 1.
func (b *Builder) AddRoom(depth int) int {
	if b.err != nil {
		return -1
	}
	if depth < 1 {
		b.err = fmt.Errorf("%w: got %d", ErrBadDepth, depth)
		return -1
	}
	b.depths = append(b.depths, depth)

	return len(b.depths) - 1
}

// Link connects a and c in both directions with the given distance.
func (b *Builder) Link(a, c Cell, distance int64) *Builder {
	if b.err != nil {
		return b
	}
	b.links = append(b.links, link{a: a, b: c, distance: distance})

	return b
}

// LinkCorridor links consecutive corridor stops, starting from stop 0, with
// the given distances: distances[i] is the walk from stop i to stop i+1.
func (b *Builder) LinkCorridor(distances ...int64) *Builder {
	for i, d := range distances {
		b.Link(Hall(i), Hall(i+1), d)
	}

	return b
}

// Build validates the accumulated layout and returns the immutable Graph.
//
// Validation (in order):
//  1. Any error recorded by AddCorridor or AddRoom.
//  2. At least one cell (ErrEmptyLayout).
//  3. Per link: both endpoints known (ErrUnknownCell), distinct (ErrSelfLink),
//     distance > 0 (ErrBadDistance), not declared twice (ErrDuplicateLink).
//  4. Connectivity over all cells (ErrDisconnected).
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph{
		corridor: b.corridor,
		depths:   append([]int(nil), b.depths...),
		index:    make(map[Cell]int),
	}

	// 1) Enumerate cells in canonical index order.
	for i := range b.corridor {
		g.addCell(Hall(i))
	}
	for r, d := range b.depths {
		for s := range d {
			g.addCell(RoomSlot(r, s))
		}
	}
	if len(g.cells) == 0 {
		return nil, ErrEmptyLayout
	}
	g.adj = make([][]Edge, len(g.cells))

	// 2) Intra-room links come first so that room slots list their
	//    room neighbors before any corridor link.
	seen := make(map[[2]Cell]bool)
	for r, d := range b.depths {
		for s := 0; s+1 < d; s++ {
			g.connect(RoomSlot(r, s), RoomSlot(r, s+1), 1, seen)
		}
	}

	// 3) Declared links.
	for _, l := range b.links {
		if !g.Has(l.a) || !g.Has(l.b) {
			return nil, fmt.Errorf("%w: %s-%s", ErrUnknownCell, l.a, l.b)
		}
		if l.a == l.b {
			return nil, fmt.Errorf("%w: %s", ErrSelfLink, l.a)
		}
		if l.distance <= 0 {
			return nil, fmt.Errorf("%w: %s-%s distance=%d", ErrBadDistance, l.a, l.b, l.distance)
		}
		if !g.connect(l.a, l.b, l.distance, seen) {
			return nil, fmt.Errorf("%w: %s-%s", ErrDuplicateLink, l.a, l.b)
		}
	}

	// 4) The path cache relies on every ordered pair being reachable.
	if n := g.reachable(0); n != len(g.cells) {
		return nil, fmt.Errorf("%w: %d of %d cells reachable", ErrDisconnected, n, len(g.cells))
	}

	return g, nil
}

func (g *Graph) addCell(c Cell) {
	g.index[c] = len(g.cells)
	g.cells = append(g.cells, c)
}

// connect adds the mirrored edge pair a-c unless the pair was seen before.
func (g *Graph) connect(a, c Cell, distance int64, seen map[[2]Cell]bool) bool {
	key := [2]Cell{a, c}
	if c.Less(a) {
		key = [2]Cell{c, a}
	}
	if seen[key] {
		return false
	}
	seen[key] = true
	ia, ib := g.index[a], g.index[c]
	g.adj[ia] = append(g.adj[ia], Edge{To: c, Distance: distance})
	g.adj[ib] = append(g.adj[ib], Edge{To: a, Distance: distance})

	return true
}

// reachable counts cells reachable from index start (iterative DFS).
func (g *Graph) reachable(start int) int {
	visited := make([]bool, len(g.cells))
	stack := []int{start}
	visited[start] = true
	count := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for _, e := range g.adj[u] {
			v := g.index[e.To]
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	return count
}
