package pathcache

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/burrow/topology"
)

// Cache holds the shortest Route for every ordered pair of distinct cells.
type Cache struct {
	g      *topology.Graph
	n      int
	routes []Route // routes[from*n+to]
	known  []bool  // known[from*n+to] is true once a route was recorded
}

// Build runs one single-source shortest-path computation per cell of g and
// stores every resulting route.
//
// Ties between equally short paths are resolved deterministically: a
// neighbor's predecessor is only replaced on a strict improvement, neighbors
// are relaxed in the Graph's declared order, and heap ties break on the lower
// cell index.
func Build(g *topology.Graph) (*Cache, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.Len()
	c := &Cache{
		g:      g,
		n:      n,
		routes: make([]Route, n*n),
		known:  make([]bool, n*n),
	}

	r := &runner{
		g:       g,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for src := range n {
		r.init(src)
		r.process()
		c.record(src, r)
	}

	return c, nil
}

// record reconstructs and stores every route from src out of the runner's
// predecessor table.
func (c *Cache) record(src int, r *runner) {
	for dst := range c.n {
		if dst == src || r.dist[dst] == math.MaxInt64 {
			continue
		}
		// Walk predecessors back to the source, then reverse in place.
		path := make([]topology.Cell, 0, 4)
		for v := dst; v != src; v = r.prev[v] {
			path = append(path, c.g.Cell(v))
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		c.routes[src*c.n+dst] = Route{Distance: r.dist[dst], Path: path}
		c.known[src*c.n+dst] = true
	}
}

// Graph returns the topology the cache was built over.
func (c *Cache) Graph() *topology.Graph { return c.g }

// Route returns the shortest route from one cell to another.
// It panics with an error wrapping ErrNoRoute if either cell is not part of
// the graph, if from == to, or if no route exists.
func (c *Cache) Route(from, to topology.Cell) Route {
	i, okFrom := c.g.Index(from)
	j, okTo := c.g.Index(to)
	if !okFrom || !okTo || !c.known[i*c.n+j] {
		panic(fmt.Errorf("%w: %s→%s", ErrNoRoute, from, to))
	}

	return c.routes[i*c.n+j]
}

// RouteAt is Route addressed by dense cell index.
func (c *Cache) RouteAt(i, j int) Route {
	if !c.known[i*c.n+j] {
		panic(fmt.Errorf("%w: %s→%s", ErrNoRoute, c.g.Cell(i), c.g.Cell(j)))
	}

	return c.routes[i*c.n+j]
}

// Distance returns the shortest distance from one cell to another, with the
// same panics as Route.
func (c *Cache) Distance(from, to topology.Cell) int64 {
	return c.Route(from, to).Distance
}

// runner holds the reusable scratch state of one Dijkstra execution.
type runner struct {
	g       *topology.Graph
	dist    []int64 // best known distance from the source, MaxInt64 if unseen
	prev    []int   // predecessor on the shortest path, -1 for none
	visited []bool  // distance finalized
	pq      nodePQ  // lazy-decrease-key min-heap
}

// init resets scratch state for a new source.
func (r *runner) init(src int) {
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
		r.prev[v] = -1
		r.visited[v] = false
	}
	r.pq = r.pq[:0]
	r.dist[src] = 0
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process extracts vertices in order of increasing distance and relaxes their
// edges until the heap is drained.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Stale entry of an already finalized vertex.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distances of u's neighbors through u.
func (r *runner) relax(u int) {
	var (
		e       topology.Edge
		v       int
		newDist int64
	)
	for _, e = range r.g.NeighborsAt(u) {
		v, _ = r.g.Index(e.To)
		newDist = r.dist[u] + e.Distance
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a cell index and its tentative distance.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then by index.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
