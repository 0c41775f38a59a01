package topology_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/topology"
)

// ------------------------------------------------------------------------
// 1. Validation: Build rejects malformed layouts with sentinel errors.
// ------------------------------------------------------------------------

func TestBuild_Empty(t *testing.T) {
	_, err := topology.NewBuilder().Build()
	require.ErrorIs(t, err, topology.ErrEmptyLayout)
}

func TestBuild_BadDepth(t *testing.T) {
	b := topology.NewBuilder()
	b.AddCorridor(1)
	require.Equal(t, -1, b.AddRoom(0))
	_, err := b.Build()
	require.ErrorIs(t, err, topology.ErrBadDepth)
}

func TestBuild_BadCorridor(t *testing.T) {
	b := topology.NewBuilder()
	require.Nil(t, b.AddCorridor(0))
	_, err := b.Build()
	require.ErrorIs(t, err, topology.ErrBadCorridor)
}

func TestBuild_LinkErrors(t *testing.T) {
	cases := []struct {
		name string
		link func(b *topology.Builder)
		want error
	}{
		{"unknown", func(b *topology.Builder) { b.Link(topology.Hall(0), topology.RoomSlot(3, 0), 1) }, topology.ErrUnknownCell},
		{"self", func(b *topology.Builder) { b.Link(topology.Hall(0), topology.Hall(0), 1) }, topology.ErrSelfLink},
		{"zero", func(b *topology.Builder) { b.Link(topology.Hall(0), topology.Hall(1), 0) }, topology.ErrBadDistance},
		{"duplicate", func(b *topology.Builder) {
			b.Link(topology.Hall(0), topology.Hall(1), 1)
			b.Link(topology.Hall(1), topology.Hall(0), 3)
		}, topology.ErrDuplicateLink},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := topology.NewBuilder()
			b.AddCorridor(2)
			tc.link(b)
			_, err := b.Build()
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestBuild_Disconnected(t *testing.T) {
	b := topology.NewBuilder()
	b.AddCorridor(2)
	b.AddRoom(1)
	b.Link(topology.Hall(0), topology.RoomSlot(0, 0), 1)
	_, err := b.Build()
	require.ErrorIs(t, err, topology.ErrDisconnected)
}

// ------------------------------------------------------------------------
// 2. Structure: indices, neighbors and room slots.
// ------------------------------------------------------------------------

func TestBuild_IndexOrder(t *testing.T) {
	b := topology.NewBuilder()
	b.AddCorridor(2)
	b.AddRoom(2)
	b.LinkCorridor(1)
	b.Link(topology.Hall(1), topology.RoomSlot(0, 0), 2)
	g, err := b.Build()
	require.NoError(t, err)

	want := []topology.Cell{
		topology.Hall(0), topology.Hall(1),
		topology.RoomSlot(0, 0), topology.RoomSlot(0, 1),
	}
	require.Equal(t, want, g.Cells())
	for i, c := range want {
		idx, ok := g.Index(c)
		require.True(t, ok)
		require.Equal(t, i, idx)
		require.Equal(t, c, g.Cell(i))
	}
	require.Equal(t, 2, g.CorridorLen())
	require.Equal(t, 1, g.Rooms())
	require.Equal(t, 2, g.Depth(0))
	require.Zero(t, g.Depth(5))
	require.False(t, g.Has(topology.RoomSlot(0, 2)))
	require.Nil(t, g.Neighbors(topology.Hall(9)))
}

func TestStandard_Adjacency(t *testing.T) {
	g, err := topology.NewStandard(2)
	require.NoError(t, err)
	require.Equal(t, topology.StandardStops+topology.StandardRooms*2, g.Len())

	// Stop 2 sits between rooms 0 and 1.
	require.ElementsMatch(t, []topology.Edge{
		{To: topology.Hall(1), Distance: 2},
		{To: topology.Hall(3), Distance: 2},
		{To: topology.RoomSlot(0, 0), Distance: 2},
		{To: topology.RoomSlot(1, 0), Distance: 2},
	}, g.Neighbors(topology.Hall(2)))

	// The end stops have a single neighbor one step away.
	require.Equal(t, []topology.Edge{{To: topology.Hall(1), Distance: 1}}, g.Neighbors(topology.Hall(0)))

	// The top slot of a room reaches its own lower slot first.
	top := g.Neighbors(topology.RoomSlot(3, 0))
	require.Equal(t, topology.Edge{To: topology.RoomSlot(3, 1), Distance: 1}, top[0])
	require.Len(t, top, 3)

	require.Equal(t, []topology.Cell{topology.RoomSlot(2, 0), topology.RoomSlot(2, 1)}, g.RoomCells(2))
}

func TestStandard_DepthIsParameter(t *testing.T) {
	g, err := topology.NewStandard(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Depth(0))
	require.Equal(t, 23, g.Len())
	require.Len(t, g.Neighbors(topology.RoomSlot(1, 3)), 1)
}

// ------------------------------------------------------------------------
// 3. Cell ordering and formatting.
// ------------------------------------------------------------------------

func TestCell_Order(t *testing.T) {
	require.True(t, topology.Hall(6).Less(topology.RoomSlot(0, 0)))
	require.True(t, topology.RoomSlot(0, 3).Less(topology.RoomSlot(1, 0)))
	require.True(t, topology.RoomSlot(1, 0).Less(topology.RoomSlot(1, 1)))
	require.Zero(t, topology.Hall(2).Compare(topology.Hall(2)))
	require.Equal(t, "H3", topology.Hall(3).String())
	require.Equal(t, "R1.0", topology.RoomSlot(1, 0).String())
	require.Equal(t, "nowhere", topology.Cell{}.String())
	require.True(t, topology.Hall(0).IsCorridor())
	require.True(t, topology.RoomSlot(0, 0).IsRoom())
}
