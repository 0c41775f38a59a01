package moves

import "fmt"

// Roster describes the fixed token set: how many tokens of each kind exist
// and what a unit of distance costs for each kind.
//
// Tokens are numbered grouped by kind: all kind-0 tokens first, then kind 1,
// and so on. A Roster is immutable after NewRoster.
type Roster struct {
	kinds   []Kind  // token index → kind
	weights []int64 // kind → cost per distance unit
	starts  []int   // kind → index of its first token; len(weights)+1 entries
}

// NewRoster builds a roster with counts[k] tokens of kind k, each paying
// weights[k] per unit of distance. The weight table is plain data: any
// non-negative values are accepted.
func NewRoster(counts []int, weights []int64) (*Roster, error) {
	if len(counts) != len(weights) {
		return nil, fmt.Errorf("%w: %d kind counts, %d weights", ErrBadRoster, len(counts), len(weights))
	}
	total := 0
	for k, n := range counts {
		if n < 0 || weights[k] < 0 {
			return nil, fmt.Errorf("%w: kind %s count=%d weight=%d", ErrBadRoster, Kind(k), n, weights[k])
		}
		total += n
	}
	if total > MaxTokens {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyTokens, total, MaxTokens)
	}

	r := &Roster{
		kinds:   make([]Kind, 0, total),
		weights: append([]int64(nil), weights...),
		starts:  make([]int, len(counts)+1),
	}
	for k, n := range counts {
		r.starts[k] = len(r.kinds)
		for range n {
			r.kinds = append(r.kinds, Kind(k))
		}
	}
	r.starts[len(counts)] = total

	return r, nil
}

// Len returns the number of tokens.
func (r *Roster) Len() int { return len(r.kinds) }

// Kinds returns the number of kinds.
func (r *Roster) Kinds() int { return len(r.weights) }

// Kind returns the kind of token i.
func (r *Roster) Kind(i int) Kind { return r.kinds[i] }

// Weight returns the cost per distance unit of kind k.
func (r *Roster) Weight(k Kind) int64 { return r.weights[k] }

// Count returns the number of tokens of kind k.
func (r *Roster) Count(k Kind) int { return r.starts[k+1] - r.starts[k] }

// Tokens returns every token in index order.
func (r *Roster) Tokens() []Token {
	out := make([]Token, len(r.kinds))
	for i, k := range r.kinds {
		out[i] = Token{Index: i, Kind: k}
	}

	return out
}

// group returns the half-open token index range [lo, hi) of kind k.
func (r *Roster) group(k Kind) (int, int) { return r.starts[k], r.starts[k+1] }
