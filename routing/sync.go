package routing

import "fmt"

// Synchronise propagates this table's knowledge through the whole network
// until no table changes any more.
//
// Each pass:
//  1. collects every stop reachable from the owner (TraverseNetwork);
//  2. for every reachable stop X and every neighbour Y of X, runs
//     TransferEntries between X's and Y's tables.
//
// If any transfer in a pass changed any table, the entire pass repeats; the
// fixed point is reached when a full pass produces no change. Termination is
// guaranteed by the strict-improvement rule and non-negative costs, but the
// number of passes is not known up front, so callers must not assume
// single-pass convergence.
//
// A pass budget (WithMaxPasses) guards against invariant violations; running
// out of budget returns ErrNoConvergence and indicates a defect, never a
// property of valid input.
func (t *Table) Synchronise() error {
	if t.topo == nil {
		return nil
	}

	for pass := 0; pass < t.maxPasses; pass++ {
		changed := false
		for _, id := range t.TraverseNetwork() {
			xt := t.topo.TableOf(id)
			if xt == nil {
				continue
			}
			for _, neighbour := range t.topo.Neighbours(id) {
				if xt.TransferEntries(neighbour) {
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	}

	return fmt.Errorf("%w: owner %q, budget %d passes", ErrNoConvergence, t.owner, t.maxPasses)
}

// TraverseNetwork returns every stop reachable from this table's owner
// through the neighbour relation, each exactly once.
//
// The traversal is an explicit-stack DFS seeded from all destinations the
// table currently knows about, not just the owner: a stop already present as
// a destination key is a valid starting point even while the live neighbour
// graph and the table's known-destination set transiently diverge.
// Order is deterministic (seed insertion order, then DFS discovery order).
func (t *Table) TraverseNetwork() []StopID {
	seeds := t.Destinations()
	if t.topo == nil {
		return seeds
	}

	out := make([]StopID, 0, len(seeds))
	seen := make(map[StopID]struct{}, len(seeds))
	stack := make([]StopID, 0, len(seeds))
	for _, id := range seeds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		stack = append(stack, id)
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for _, neighbour := range t.topo.Neighbours(cur) {
			if _, ok := seen[neighbour]; ok {
				continue
			}
			seen[neighbour] = struct{}{}
			stack = append(stack, neighbour)
		}
	}

	return out
}
