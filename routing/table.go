package routing

// Table is the routing table owned by a single stop: a mapping from every
// destination the owner currently knows about to the Entry describing the
// cheapest known path there.
//
// Destination insertion order is preserved and drives all iteration, so table
// contents are deterministic for a given sequence of operations.
//
// A Table is owned by exactly one stop. Other tables read it during
// propagation, but every cross-table update goes through AddOrUpdateEntry on
// the owning table; no operation mutates another table's rows directly.
type Table struct {
	owner     StopID
	topo      Topology
	order     []StopID         // destinations, insertion order
	entries   map[StopID]Entry // destination → entry
	maxPasses int
}

// NewTable creates the routing table for owner, initialised with the single
// self entry (owner → owner at cost 0). The topo argument resolves adjacency
// and edge costs during propagation; a nil topo yields a table that still
// answers queries but treats every propagation call as a no-op.
func NewTable(owner StopID, topo Topology, opts ...Option) *Table {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table{
		owner:     owner,
		topo:      topo,
		entries:   make(map[StopID]Entry),
		maxPasses: o.MaxPasses,
	}
	if owner != NoStop {
		t.insert(owner, NewEntry(owner, 0))
	}

	return t
}

// Owner returns the stop this table handles routing for.
func (t *Table) Owner() StopID {
	return t.owner
}

// insert records a brand-new destination, preserving insertion order.
func (t *Table) insert(dest StopID, e Entry) {
	t.order = append(t.order, dest)
	t.entries[dest] = e
}

// AddOrUpdateEntry proposes a route to dest costing newCost via the
// intermediate stop. The proposal is accepted when dest is unknown, or when
// newCost strictly improves on the current cost; an equal-cost proposal is
// rejected so the first-discovered hop is retained (the strict inequality is
// what guarantees Synchronise terminates).
//
// Invalid proposals (dest or via NoStop, a negative cost, or the Inf
// sentinel as a cost) are no-ops.
// Returns true iff the table changed.
func (t *Table) AddOrUpdateEntry(dest StopID, newCost int64, via StopID) bool {
	if dest == NoStop {
		return false
	}
	e := NewEntry(via, newCost)
	if !e.Reachable() {
		// Constructor sanitised an invalid hop/cost pair; nothing to record.
		return false
	}

	cur, known := t.entries[dest]
	if !known {
		t.insert(dest, e)
		return true
	}
	if newCost < cur.Cost() {
		t.entries[dest] = e
		return true
	}

	return false
}

// CostTo returns the cumulative cost of the best known path to dest, or Inf
// when dest is NoStop or not present in the table.
func (t *Table) CostTo(dest StopID) int64 {
	if dest == NoStop {
		return Inf
	}
	e, known := t.entries[dest]
	if !known {
		return Inf
	}

	return e.Cost()
}

// NextHop returns the neighbouring stop to move toward in order to reach
// dest, or NoStop when dest is NoStop or unknown.
func (t *Table) NextHop(dest StopID) StopID {
	if dest == NoStop {
		return NoStop
	}

	return t.entries[dest].NextHop()
}

// Costs returns a snapshot mapping every known destination to its cost.
// The map is a copy; mutating it does not affect the table.
func (t *Table) Costs() map[StopID]int64 {
	costs := make(map[StopID]int64, len(t.order))
	for dest, e := range t.entries {
		costs[dest] = e.Cost()
	}

	return costs
}

// Destinations returns the known destinations in insertion order.
// The slice is a copy.
func (t *Table) Destinations() []StopID {
	out := make([]StopID, len(t.order))
	copy(out, t.order)

	return out
}

// AddNeighbour registers a directly linked stop as a destination, at the edge
// cost reported by the Topology and with the neighbour itself as the next
// hop. If this actually improves the table, the change is propagated to the
// whole network via Synchronise.
//
// Unknown or NoStop neighbours are no-ops. The only possible error is the
// ErrNoConvergence defect signal from Synchronise.
func (t *Table) AddNeighbour(neighbour StopID) error {
	if neighbour == NoStop || t.topo == nil {
		return nil
	}
	d := t.topo.Distance(t.owner, neighbour)
	if d < 0 {
		return nil
	}
	if t.AddOrUpdateEntry(neighbour, int64(d), neighbour) {
		return t.Synchronise()
	}

	return nil
}

// TransferEntries relaxes the single edge between this table's owner and
// other, in both directions: every destination known on one side is proposed
// to the other side at (known cost + edge cost), with the bridging stop as
// the next hop. Proposals go through AddOrUpdateEntry, so only strict
// improvements are accepted.
//
// Precondition: other must be a direct neighbour of the owner, checked
// against the Topology's adjacency (not by distance). When it is not, or when
// either side cannot be resolved, the call is a no-op returning false.
//
// Returns true iff any entry on either side changed.
func (t *Table) TransferEntries(other StopID) bool {
	if other == NoStop || t.topo == nil {
		return false
	}
	if !containsStop(t.topo.Neighbours(t.owner), other) {
		return false
	}
	ot := t.topo.TableOf(other)
	if ot == nil || ot == t {
		return false
	}
	edge := t.topo.Distance(t.owner, other)
	if edge < 0 {
		return false
	}

	changed := false
	for _, dest := range unionDestinations(t, ot) {
		if c := t.CostTo(dest); c != Inf {
			if ot.AddOrUpdateEntry(dest, c+int64(edge), t.owner) {
				changed = true
			}
		}
		if c := ot.CostTo(dest); c != Inf {
			if t.AddOrUpdateEntry(dest, c+int64(edge), other) {
				changed = true
			}
		}
	}

	return changed
}

// unionDestinations merges the destination lists of both tables,
// deterministically: a's insertion order first, then b's unseen entries.
func unionDestinations(a, b *Table) []StopID {
	out := make([]StopID, 0, len(a.order)+len(b.order))
	seen := make(map[StopID]struct{}, len(a.order)+len(b.order))
	for _, dest := range a.order {
		out = append(out, dest)
		seen[dest] = struct{}{}
	}
	for _, dest := range b.order {
		if _, ok := seen[dest]; !ok {
			out = append(out, dest)
			seen[dest] = struct{}{}
		}
	}

	return out
}

// containsStop reports whether ids contains id.
func containsStop(ids []StopID, id StopID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
