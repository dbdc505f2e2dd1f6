package core

import (
	"fmt"
	"strings"

	"github.com/qldtransit/stopnet/routing"
)

// Stop represents a location in the transit network: a place where vehicles
// collect and drop off passengers, located along one or more routes.
//
// A Stop is created through Graph.AddStop, is never destroyed, and is mutable
// only through neighbour linking, routing-table updates, and the passenger /
// vehicle bookkeeping below.
type Stop struct {
	graph *Graph
	id    routing.StopID
	name  string
	x, y  int

	neighbours []routing.StopID // direct links, in registration order
	table      *routing.Table

	waiting []Rider     // passengers at the stop, arrival order
	atStop  []Vehicle   // vehicles currently at the stop
	routes  []RouteInfo // routes this stop is on
}

// stopID builds the canonical identity of a stop, "name:x:y".
func stopID(name string, x, y int) routing.StopID {
	return routing.StopID(fmt.Sprintf("%s:%d:%d", name, x, y))
}

// sanitizeName strips newline and carriage-return characters from a name.
func sanitizeName(name string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(name)
}

// ID returns the stop's unique identity within its graph.
func (s *Stop) ID() routing.StopID { return s.id }

// Name returns the stop's name.
func (s *Stop) Name() string { return s.name }

// X returns the stop's x-coordinate.
func (s *Stop) X() int { return s.x }

// Y returns the stop's y-coordinate.
func (s *Stop) Y() int { return s.y }

// String renders the stop as "name:x:y", the same form used by the network
// text format.
func (s *Stop) String() string {
	return fmt.Sprintf("%s:%d:%d", s.name, s.x, s.y)
}

// Table returns the routing table owned by this stop.
func (s *Stop) Table() *routing.Table { return s.table }

// DistanceTo returns the Manhattan distance to another stop,
// or -1 if other is nil.
func (s *Stop) DistanceTo(other *Stop) int {
	if other == nil {
		return -1
	}

	return Manhattan(s.x, s.y, other.x, other.y)
}

// Neighbours returns the IDs of the stops directly linked to this one, in
// the order the links were made. The slice is a copy.
func (s *Stop) Neighbours() []routing.StopID {
	s.graph.mu.RLock()
	defer s.graph.mu.RUnlock()

	out := make([]routing.StopID, len(s.neighbours))
	copy(out, s.neighbours)

	return out
}

// AddNeighbouringStop links this stop with other in both directions and
// propagates the new edge through the routing network. A nil other or an
// existing link is a no-op. The only possible error is the routing layer's
// non-convergence defect signal.
func (s *Stop) AddNeighbouringStop(other *Stop) error {
	if other == nil {
		return nil
	}

	return s.graph.Link(s.id, other.id)
}

// AddRoute records that this stop lies on the given route.
// A nil route is ignored.
func (s *Stop) AddRoute(r RouteInfo) {
	if r == nil {
		return
	}
	s.routes = append(s.routes, r)
}

// Routes returns the routes this stop is on, in registration order.
// The slice is a copy.
func (s *Stop) Routes() []RouteInfo {
	out := make([]RouteInfo, len(s.routes))
	copy(out, s.routes)

	return out
}

// AddPassenger places a rider at this stop. A nil rider is ignored; a rider
// without a destination still waits here, it just cannot be routed anywhere.
func (s *Stop) AddPassenger(p Rider) {
	if p == nil {
		return
	}
	s.waiting = append(s.waiting, p)
}

// WaitingPassengers returns the riders at this stop in arrival order.
// The slice is a copy.
func (s *Stop) WaitingPassengers() []Rider {
	out := make([]Rider, len(s.waiting))
	copy(out, s.waiting)

	return out
}

// IsAtStop reports whether the given vehicle is currently at this stop.
func (s *Stop) IsAtStop(v Vehicle) bool {
	for _, here := range s.atStop {
		if here == v {
			return true
		}
	}

	return false
}

// Vehicles returns the vehicles currently at this stop, in arrival order.
// The slice is a copy.
func (s *Stop) Vehicles() []Vehicle {
	out := make([]Vehicle, len(s.atStop))
	copy(out, s.atStop)

	return out
}

// TransportArrive records a vehicle arriving at this stop and unloads all of
// its riders onto the stop. A nil vehicle, or one already here, is ignored.
func (s *Stop) TransportArrive(v Vehicle) {
	if v == nil || s.IsAtStop(v) {
		return
	}
	for _, p := range v.Unload() {
		s.AddPassenger(p)
	}
	s.atStop = append(s.atStop, v)
}

// TransportDepart records a vehicle leaving this stop toward next.
//
// Waiting riders whose next hop toward their destination is next are boarded
// in arrival order; once the vehicle reports capacity, the rest stay behind
// to wait for the next service. The vehicle's location is then updated and it
// is removed from this stop.
//
// A nil vehicle or next stop, or a vehicle that is not here, is a no-op.
func (s *Stop) TransportDepart(v Vehicle, next *Stop) {
	if v == nil || next == nil || !s.IsAtStop(v) {
		return
	}

	remaining := s.waiting[:0]
	full := false
	for _, p := range s.waiting {
		if !full && s.table.NextHop(p.Destination()) == next.id {
			if err := v.Board(p); err != nil {
				// Over capacity: this rider and everyone behind stays.
				full = true
				remaining = append(remaining, p)
			}
			continue
		}
		remaining = append(remaining, p)
	}
	s.waiting = remaining

	v.TravelTo(next)
	for i, here := range s.atStop {
		if here == v {
			s.atStop = append(s.atStop[:i], s.atStop[i+1:]...)
			break
		}
	}
}
