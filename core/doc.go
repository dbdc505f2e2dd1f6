// Package core provides the central Stop and Graph types of the transit
// network: an arena of uniquely identified stops, the neighbour (adjacency)
// relation between them, the Manhattan cost model, and the read-only routing
// query surface used by collaborators moving passengers hop by hop.
//
// Stops live inside a Graph and are addressed by routing.StopID ("name:x:y").
// Each stop exclusively owns one routing.Table; the Graph implements
// routing.Topology, so tables resolve adjacency, edge costs, and one
// another through the arena rather than through direct object references.
//
// Topology only ever grows: Link is the single way edges enter the graph,
// there is no edge or stop removal, and linking two stops immediately runs
// the network-wide routing synchronisation on both endpoints.
//
// Why a Graph arena?
//
//   - Stops, tables, and neighbours form mutual references; identifiers
//     resolved against the arena avoid ownership cycles.
//   - One place to serialise mutations: Link holds the graph's sync lock for
//     the full link + propagation sequence, the global mutual-exclusion
//     discipline the routing algorithm requires.
//   - Deterministic iteration: Stops() returns insertion order, which the
//     network text format and the tests both rely on.
//
// Core methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddStop(name string, x, y int) (*Stop, error)  // ErrNoName, ErrDuplicateStop
//
//	// Topology
//	Link(a, b routing.StopID) error                // nil-safe, idempotent
//	Neighbours(id routing.StopID) []routing.StopID
//	Distance(a, b routing.StopID) int              // Manhattan, -1 if unknown
//
//	// Routing queries (outbound interface)
//	NextHopToward(stop, dest routing.StopID) routing.StopID
//	CostTo(stop, dest routing.StopID) int64        // routing.Inf if unreachable
//
// Errors:
//
//	ErrNoName        - stop name empty after sanitisation.
//	ErrDuplicateStop - a stop with the same identity already exists.
package core
