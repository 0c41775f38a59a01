package pathcache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/burrow/pathcache"
	"github.com/katalvlaran/burrow/topology"
)

// CacheSuite exercises the path cache over the reference layout.
type CacheSuite struct {
	suite.Suite
	g     *topology.Graph
	cache *pathcache.Cache
}

func (s *CacheSuite) SetupSuite() {
	g, err := topology.NewStandard(2)
	s.Require().NoError(err)
	s.g = g
	s.cache, err = pathcache.Build(g)
	s.Require().NoError(err)
}

// TestKnownDistances checks a few distances of the reference puzzle.
func (s *CacheSuite) TestKnownDistances() {
	h, r := topology.Hall, topology.RoomSlot
	s.Equal(int64(3), s.cache.Distance(h(0), r(0, 0)))
	s.Equal(int64(4), s.cache.Distance(h(0), r(0, 1)))
	s.Equal(int64(2), s.cache.Distance(h(3), r(1, 0)))
	s.Equal(int64(10), s.cache.Distance(r(0, 1), r(3, 1)))
	s.Equal(int64(10), s.cache.Distance(h(0), h(6)))
	s.Equal(int64(4), s.cache.Distance(r(1, 0), r(2, 0)))
}

// TestPathShape checks that paths exclude the origin, include the destination,
// and walk through adjacent cells whose distances add up.
func (s *CacheSuite) TestPathShape() {
	h, r := topology.Hall, topology.RoomSlot
	route := s.cache.Route(r(0, 1), r(3, 1))
	s.Equal([]topology.Cell{r(0, 0), h(2), h(3), h(4), r(3, 0), r(3, 1)}, route.Path)

	for _, from := range s.g.Cells() {
		for _, to := range s.g.Cells() {
			if from == to {
				continue
			}
			route := s.cache.Route(from, to)
			s.Require().NotEmpty(route.Path)
			s.Equal(to, route.Path[len(route.Path)-1])
			s.NotContains(route.Path, from)

			var sum int64
			prev := from
			for _, c := range route.Path {
				sum += edgeDistance(s.T(), s.g, prev, c)
				prev = c
			}
			s.Equal(route.Distance, sum, "%s→%s", from, to)
		}
	}
}

// TestTriangleInequality checks d(a,c) ≤ d(a,b) + d(b,c) for all triples.
func (s *CacheSuite) TestTriangleInequality() {
	cells := s.g.Cells()
	dist := func(a, b topology.Cell) int64 {
		if a == b {
			return 0
		}
		return s.cache.Distance(a, b)
	}
	for _, a := range cells {
		for _, b := range cells {
			for _, c := range cells {
				s.LessOrEqual(dist(a, c), dist(a, b)+dist(b, c), "%s %s %s", a, b, c)
			}
		}
	}
}

// TestSymmetry checks that the undirected layout yields symmetric distances.
func (s *CacheSuite) TestSymmetry() {
	for _, a := range s.g.Cells() {
		for _, b := range s.g.Cells() {
			if a != b {
				s.Equal(s.cache.Distance(a, b), s.cache.Distance(b, a))
			}
		}
	}
}

// TestDeterministic checks that rebuilding yields identical routes.
func (s *CacheSuite) TestDeterministic() {
	again, err := pathcache.Build(s.g)
	s.Require().NoError(err)
	for _, a := range s.g.Cells() {
		for _, b := range s.g.Cells() {
			if a != b {
				s.Equal(s.cache.Route(a, b), again.Route(a, b))
			}
		}
	}
}

// TestMissingPairPanics checks the fail-fast contract.
func (s *CacheSuite) TestMissingPairPanics() {
	h := topology.Hall
	requireNoRoute(s.T(), func() { s.cache.Route(h(0), h(0)) })
	requireNoRoute(s.T(), func() { s.cache.Route(h(0), h(42)) })
	requireNoRoute(s.T(), func() { s.cache.RouteAt(3, 3) })
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func TestBuild_NilGraph(t *testing.T) {
	_, err := pathcache.Build(nil)
	require.ErrorIs(t, err, pathcache.ErrNilGraph)
}

func TestBuild_WeightedShortcut(t *testing.T) {
	// H0 -5- H1, H0 -1- R0.0 -1- H1: the room detour is shorter.
	b := topology.NewBuilder()
	b.AddCorridor(2)
	b.AddRoom(1)
	b.LinkCorridor(5)
	b.Link(topology.Hall(0), topology.RoomSlot(0, 0), 1)
	b.Link(topology.Hall(1), topology.RoomSlot(0, 0), 1)
	g, err := b.Build()
	require.NoError(t, err)

	c, err := pathcache.Build(g)
	require.NoError(t, err)
	route := c.Route(topology.Hall(0), topology.Hall(1))
	require.Equal(t, int64(2), route.Distance)
	require.Equal(t, []topology.Cell{topology.RoomSlot(0, 0), topology.Hall(1)}, route.Path)
	require.Same(t, g, c.Graph())
}

func edgeDistance(t *testing.T, g *topology.Graph, a, b topology.Cell) int64 {
	t.Helper()
	for _, e := range g.Neighbors(a) {
		if e.To == b {
			return e.Distance
		}
	}
	t.Fatalf("%s and %s are not adjacent", a, b)

	return 0
}

func requireNoRoute(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, pathcache.ErrNoRoute), "got %v", err)
	}()
	fn()
}
