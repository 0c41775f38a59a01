// Package pathcache precomputes shortest routes between every ordered pair of
// cells of a topology.Graph.
//
// The cache is filled once, eagerly, by running Dijkstra's algorithm from each
// cell with a min-heap priority queue and a predecessor table, then walking
// the predecessor table back from every destination. After Build returns the
// cache is immutable; lookups are O(1) slice indexing with no allocation.
//
// Complexity:
//
//   - Build time:  O(V · (V + E) log V) for V runs of Dijkstra,
//     plus O(V² · L) to materialize paths of length at most L.
//   - Build space: O(V² · L).
//   - Route / Distance: O(1).
//
// Contract violations (asking for a pair with no route, or for a cell that is
// not part of the graph) are bugs in the caller or in topology construction
// and panic with an error wrapping ErrNoRoute.
package pathcache

import (
	"errors"

	"github.com/katalvlaran/burrow/topology"
)

// Sentinel errors returned (or raised) by the path cache.
var (
	// ErrNilGraph indicates that Build was given a nil *topology.Graph.
	ErrNilGraph = errors.New("pathcache: graph is nil")

	// ErrNoRoute is wrapped by the panic raised when a route is requested
	// for a pair that has none.
	ErrNoRoute = errors.New("pathcache: no route between cells")
)

// Route is the shortest walk from an origin cell to a destination cell.
//
// Path lists the cells entered along the way, in order, excluding the origin
// and including the destination. Path is shared with the cache and must be
// treated as read-only.
type Route struct {
	Distance int64
	Path     []topology.Cell
}
