package topology

// Reference layout constants.
//
//	#############
//	#01.2.3.4.56#
//	###A#B#C#D###
//	  #A#B#C#D#
//	  #########
//
// The corridor cells in front of each room are doorways where no token may
// stop, so they are not modeled: the stops on either side of a doorway are
// two steps apart, and a room's top slot is two steps from each of them.
const (
	StandardStops = 7
	StandardRooms = 4
)

// standardCorridor holds the walking distance between consecutive stops.
var standardCorridor = []int64{1, 2, 2, 2, 2, 1}

// NewStandard builds the reference burrow with rooms of the given depth.
// The reference puzzle uses depth 2 and an unfolded variant with depth 4.
func NewStandard(depth int) (*Graph, error) {
	b := NewBuilder()
	b.AddCorridor(StandardStops)
	b.LinkCorridor(standardCorridor...)
	for r := range StandardRooms {
		b.AddRoom(depth)
		// Room r opens between stops r+1 and r+2.
		b.Link(Hall(r+1), RoomSlot(r, 0), 2)
		b.Link(Hall(r+2), RoomSlot(r, 0), 2)
	}

	return b.Build()
}
