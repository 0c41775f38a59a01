// Package search finds the minimum-cost sequence of moves that brings every
// token home, using uniform-cost (Dijkstra) search over an implicit graph
// whose nodes are whole configurations and whose edges are legal moves.
//
// The graph is never materialized: successors are produced on demand by a
// moves.Generator. A best-cost table keyed by configuration fingerprint and a
// settled set bound the explored space. The frontier is a min-heap ordered by
// accumulated cost, ties broken by fingerprint order, which makes the search
// fully deterministic.
//
// Complexity:
//
//   - Time:  O(S · M · log F) for S settled configurations, M moves per
//     configuration and a frontier of at most F entries.
//   - Space: O(S + F).
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved configurations are pushed again and
//     stale heap entries are skipped when popped.
//   - Terminal configurations are recorded separately and never expanded.
//   - With bounding enabled (the default), successors that cost at least as
//     much as the best terminal found so far are dropped.
package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/burrow/moves"
)

// Solve searches for the cheapest way to bring start to a terminal
// configuration.
//
// Returns:
//
//   - Result with Found=true, the minimal Cost and the ordered Steps when a
//     terminal configuration is reachable.
//   - Result with Found=false and a nil error when none is reachable.
//   - ErrExpansionLimit with the best Result so far when the cap is hit.
//
// Preconditions and validation (in order):
//  1. gen must be non-nil (ErrNilGenerator).
//  2. start must belong to gen (ErrInvalidStart wrapping the moves error).
//
// start.Cost is ignored; the search starts from cost 0.
func Solve(gen *moves.Generator, start moves.Configuration, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if gen == nil {
		return Result{}, ErrNilGenerator
	}
	if err := gen.Validate(start); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}
	start.Cost = 0

	r := &runner{
		gen:     gen,
		options: cfg,
		start:   start,
		best:    make(map[moves.Fingerprint]int64),
		back:    make(map[moves.Fingerprint]link),
		settled: make(map[moves.Fingerprint]struct{}),
	}

	// 3) An already solved start needs no expansion at all.
	if gen.Solved(start) {
		r.found, r.terminal = true, start
		return r.result(), nil
	}

	// 4) Run the main loop and rebuild the winning path.
	r.init()
	err := r.process()
	res := r.result()
	cfg.Logger.Debug("search finished",
		"found", res.Found,
		"cost", res.Cost,
		"expansions", res.Expansions,
		"recorded", len(r.best),
	)

	return res, err
}

// link is a back-pointer: the configuration a state was best reached from,
// and the move that led to it.
type link struct {
	parent moves.Fingerprint
	move   moves.Move
}

// runner holds the mutable state of one Solve call.
type runner struct {
	gen     *moves.Generator
	options Options
	start   moves.Configuration

	best    map[moves.Fingerprint]int64    // cheapest cost recorded per state
	back    map[moves.Fingerprint]link     // back-pointers, terminals included
	settled map[moves.Fingerprint]struct{} // expanded states
	pq      frontier

	found      bool
	terminal   moves.Configuration
	expansions int
}

// init seeds the frontier with the start configuration.
func (r *runner) init() {
	fp := r.start.Fingerprint()
	r.best[fp] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{cfg: r.start})
}

// beaten reports whether cost cannot improve on the best terminal.
func (r *runner) beaten(cost int64) bool {
	return r.options.Bound && r.found && cost >= r.terminal.Cost
}

// process pops configurations in cost order until the frontier drains or the
// expansion cap is hit.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*frontierItem).cfg
		fp := cur.Fingerprint()

		// 1) Skip stale entries and already expanded states.
		if _, done := r.settled[fp]; done {
			continue
		}
		if cur.Cost > r.best[fp] || r.beaten(cur.Cost) {
			continue
		}

		// 2) Respect the expansion cap.
		if r.options.MaxExpansions > 0 && r.expansions >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expansions)
		}
		r.settled[fp] = struct{}{}
		r.expansions++

		// 3) Relax every legal move.
		r.expand(cur, fp)
	}

	return nil
}

// expand records every improving successor of cur.
func (r *runner) expand(cur moves.Configuration, fp moves.Fingerprint) {
	for _, m := range r.gen.Moves(cur) {
		next := r.gen.Apply(cur, m)
		if r.beaten(next.Cost) {
			continue
		}
		nfp := next.Fingerprint()

		if r.gen.Solved(next) {
			if !r.found || next.Cost < r.terminal.Cost {
				r.found, r.terminal = true, next
				r.back[nfp] = link{parent: fp, move: m}
				r.options.Logger.Debug("terminal found",
					"cost", next.Cost,
					"expansions", r.expansions,
				)
			}
			continue
		}

		if _, done := r.settled[nfp]; done {
			continue
		}
		if b, ok := r.best[nfp]; ok && next.Cost >= b {
			continue
		}
		r.best[nfp] = next.Cost
		r.back[nfp] = link{parent: fp, move: m}
		heap.Push(&r.pq, &frontierItem{cfg: next})
	}
}

// result packages the search outcome, replaying the back-pointer chain when a
// terminal was found.
func (r *runner) result() Result {
	res := Result{
		Found:      r.found,
		Start:      r.start,
		Expansions: r.expansions,
		BestCosts:  r.best,
	}
	if !r.found {
		return res
	}
	res.Cost = r.terminal.Cost
	res.Final = r.terminal
	res.Steps = r.reconstruct()

	return res
}

// reconstruct follows back-pointers from the terminal to the start, then
// replays the moves forward. Every replayed move is checked against the
// generator; a mismatch is a bug in the search and panics.
func (r *runner) reconstruct() []Step {
	var chain []moves.Move
	startFP := r.start.Fingerprint()
	for fp := r.terminal.Fingerprint(); fp != startFP; {
		l, ok := r.back[fp]
		if !ok {
			panic(fmt.Sprintf("search: broken back-pointer chain at %s", fp))
		}
		chain = append(chain, l.move)
		fp = l.parent
	}

	steps := make([]Step, 0, len(chain))
	cur := r.start
	for i := len(chain) - 1; i >= 0; i-- {
		m := chain[i]
		if err := r.gen.Legal(cur, m); err != nil {
			panic(fmt.Sprintf("search: reconstructed step %d: %v", len(steps), err))
		}
		cur = r.gen.Apply(cur, m)
		steps = append(steps, Step{Move: m, Configuration: cur})
	}
	if cur != r.terminal {
		panic(fmt.Sprintf("search: replay ended at %s, want %s", cur, r.terminal))
	}

	return steps
}

// frontierItem is a heap entry holding a configuration by value.
type frontierItem struct {
	cfg moves.Configuration
}

// frontier is a min-heap ordered by cost, then fingerprint.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cfg.Cost != f[j].cfg.Cost {
		return f[i].cfg.Cost < f[j].cfg.Cost
	}

	return f[i].cfg.Fingerprint().Less(f[j].cfg.Fingerprint())
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
