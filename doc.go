// Package burrow finds the cheapest way to sort typed tokens into their home
// rooms: a weighted state-space search over an implicit graph of whole-board
// configurations.
//
// 🚀 What is burrow?
//
//	A small, deterministic, dependency-light solver built from four layers:
//		• topology:  the fixed layout (corridor stops, rooms, walking distances)
//		• pathcache: every shortest route between two cells, computed once
//		• moves:     configurations, fingerprints and the legality rules
//		• search:    uniform-cost search with back-pointer reconstruction
//
// Around the core live the supporting packages:
//
//	diagram/    - parse the text diagram into a puzzle, draw boards back
//	settings/   - YAML weights, expansion cap and log level
//	cmd/burrow/ - the command-line solver
//	examples/   - a hand-declared layout solved from code
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
//	is solved at a minimum cost of 12521 with weights 1, 10, 100 and 1000.
//
//	go install github.com/katalvlaran/burrow/cmd/burrow@latest
package burrow
