package core

import (
	"fmt"
	"sync"

	"github.com/qldtransit/stopnet/routing"
)

// Graph is the arena of stops: it owns every Stop, the adjacency between
// them, and the routing.Topology view the routing tables resolve against.
//
// Two locks implement the concurrency discipline the routing algorithm
// needs: muSync serialises every mutation together with its propagation pass
// (one global lock held for the whole Link + Synchronise sequence), while mu
// guards the maps so topology reads issued mid-propagation stay consistent.
type Graph struct {
	muSync sync.Mutex   // serialises link + propagation sequences
	mu     sync.RWMutex // guards stops, order, adjacency

	stops map[routing.StopID]*Stop
	order []routing.StopID // insertion order

	linkObserver LinkObserver
	tableOpts    []routing.Option
}

// NewGraph creates an empty stop arena.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		stops: make(map[routing.StopID]*Stop),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddStop creates a stop with the given name and coordinates and registers
// it in the arena. Newlines and carriage returns are stripped from the name;
// an empty result is rejected with ErrNoName, and a stop with identical
// name and coordinates is rejected with ErrDuplicateStop.
//
// The new stop starts with no neighbours and a routing table knowing only
// itself.
func (g *Graph) AddStop(name string, x, y int) (*Stop, error) {
	name = sanitizeName(name)
	if name == "" {
		return nil, ErrNoName
	}
	id := stopID(name, x, y)

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.stops[id]; exists {
		return nil, ErrDuplicateStop
	}

	s := &Stop{
		graph: g,
		id:    id,
		name:  name,
		x:     x,
		y:     y,
	}
	s.table = routing.NewTable(id, g, g.tableOpts...)
	g.stops[id] = s
	g.order = append(g.order, id)

	return s, nil
}

// AddStops registers a batch of stops all-or-nothing: every spec is
// validated up front (same name sanitisation and rejections as AddStop,
// plus duplicates within the batch itself), and a single invalid spec means
// no stop is added at all. A nil or empty batch is a no-op.
//
// Returned stops are in batch order.
func (g *Graph) AddStops(specs []StopSpec) ([]*Stop, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]routing.StopID, len(specs))
	names := make([]string, len(specs))
	batch := make(map[routing.StopID]struct{}, len(specs))
	for i, spec := range specs {
		name := sanitizeName(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: batch element %d", ErrNoName, i)
		}
		id := stopID(name, spec.X, spec.Y)
		if _, exists := g.stops[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStop, id)
		}
		if _, dup := batch[id]; dup {
			return nil, fmt.Errorf("%w: %q repeated in batch", ErrDuplicateStop, id)
		}
		batch[id] = struct{}{}
		ids[i] = id
		names[i] = name
	}

	out := make([]*Stop, len(specs))
	for i, spec := range specs {
		s := &Stop{
			graph: g,
			id:    ids[i],
			name:  names[i],
			x:     spec.X,
			y:     spec.Y,
		}
		s.table = routing.NewTable(ids[i], g, g.tableOpts...)
		g.stops[ids[i]] = s
		g.order = append(g.order, ids[i])
		out[i] = s
	}

	return out, nil
}

// Stop returns the stop with the given ID, or nil if it does not exist.
func (g *Graph) Stop(id routing.StopID) *Stop {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.stops[id]
}

// HasStop reports whether a stop with the given ID exists.
func (g *Graph) HasStop(id routing.StopID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.stops[id]

	return ok
}

// Stops returns all stops in insertion order. The slice is a copy.
func (g *Graph) Stops() []*Stop {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Stop, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.stops[id])
	}

	return out
}

// StopCount returns the number of stops in the arena.
func (g *Graph) StopCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// FindStop returns the first stop (in insertion order) with the given name,
// or nil if none matches.
func (g *Graph) FindStop(name string) *Stop {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, id := range g.order {
		if s := g.stops[id]; s.name == name {
			return s
		}
	}

	return nil
}

// Link registers a and b as neighbours of each other and propagates the new
// edge through both routing tables. Unknown IDs, self-links, and existing
// links are no-ops. This is the only way edges enter the graph; there is no
// removal.
//
// The whole link + propagation sequence runs under the graph's sync lock, so
// concurrent Link calls are serialised and the monotonic-improvement
// invariant holds across overlapping topology changes. The only possible
// error is the routing layer's ErrNoConvergence defect signal.
func (g *Graph) Link(a, b routing.StopID) error {
	g.muSync.Lock()
	defer g.muSync.Unlock()

	g.mu.Lock()
	sa, sb := g.stops[a], g.stops[b]
	if sa == nil || sb == nil || sa == sb || containsStop(sa.neighbours, b) {
		g.mu.Unlock()
		return nil
	}
	sa.neighbours = append(sa.neighbours, b)
	sb.neighbours = append(sb.neighbours, a)
	g.mu.Unlock()

	if err := sa.table.AddNeighbour(b); err != nil {
		return err
	}
	if err := sb.table.AddNeighbour(a); err != nil {
		return err
	}

	if g.linkObserver != nil {
		g.linkObserver(a, b)
	}

	return nil
}

// NextHopToward returns the neighbouring stop a rider at stop should move to
// in order to reach dest, or routing.NoStop when either stop is unknown or
// no route exists. Callers are expected to query again after every hop: the
// answer may change whenever the topology does.
func (g *Graph) NextHopToward(stop, dest routing.StopID) routing.StopID {
	s := g.Stop(stop)
	if s == nil {
		return routing.NoStop
	}

	return s.table.NextHop(dest)
}

// CostTo returns the cheapest known cumulative cost from stop to dest, or
// routing.Inf when either stop is unknown or dest is unreachable.
func (g *Graph) CostTo(stop, dest routing.StopID) int64 {
	s := g.Stop(stop)
	if s == nil {
		return routing.Inf
	}

	return s.table.CostTo(dest)
}

// Neighbours implements routing.Topology.
func (g *Graph) Neighbours(id routing.StopID) []routing.StopID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := g.stops[id]
	if s == nil {
		return nil
	}
	out := make([]routing.StopID, len(s.neighbours))
	copy(out, s.neighbours)

	return out
}

// Distance implements routing.Topology: the Manhattan distance between two
// stops, or -1 if either is unknown.
func (g *Graph) Distance(a, b routing.StopID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sa, sb := g.stops[a], g.stops[b]
	if sa == nil || sb == nil {
		return -1
	}

	return Manhattan(sa.x, sa.y, sb.x, sb.y)
}

// TableOf implements routing.Topology.
func (g *Graph) TableOf(id routing.StopID) *routing.Table {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := g.stops[id]
	if s == nil {
		return nil
	}

	return s.table
}

// containsStop reports whether ids contains id.
func containsStop(ids []routing.StopID, id routing.StopID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
