package topology_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/topology"
)

// ExampleNewStandard inspects the reference layout.
func ExampleNewStandard() {
	g, err := topology.NewStandard(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Len(), "cells:", g.CorridorLen(), "stops,", g.Rooms(), "rooms of depth", g.Depth(0))
	for _, e := range g.Neighbors(topology.RoomSlot(0, 0)) {
		fmt.Printf("R0.0 -> %s (%d)\n", e.To, e.Distance)
	}
	// Output:
	// 15 cells: 7 stops, 4 rooms of depth 2
	// R0.0 -> R0.1 (1)
	// R0.0 -> H1 (2)
	// R0.0 -> H2 (2)
}
