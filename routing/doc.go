// Package routing implements the distance-vector routing core of a stop
// network: per-stop routing tables that map every known destination to the
// cheapest next hop, and the fixed-point propagation algorithm that keeps all
// tables in the network consistent as stops are linked together.
//
// The algorithm is a synchronous Bellman-Ford-style relaxation:
//
//   - Each Table starts knowing only its owning stop, at cost 0 via itself.
//   - AddNeighbour registers a directly linked stop at its edge cost
//     (Manhattan distance, supplied by the Topology), then triggers
//     Synchronise.
//   - Synchronise repeatedly sweeps every stop reachable from the owner and
//     runs TransferEntries across each neighbour edge, until one entire sweep
//     produces no change (the fixed point).
//   - TransferEntries relaxes both endpoint tables of a single edge: a known
//     cost on one side, plus the edge cost, is proposed to the other side and
//     accepted only when strictly cheaper.
//
// Strict improvement is the termination argument: costs are non-negative and
// can only decrease, so the number of accepted relaxations is finite. Equal
// cost never replaces an entry, which also makes the first-discovered next
// hop sticky under ties. As a defensive measure against invariant violations
// introduced by bugs (never by valid input), Synchronise gives up after a
// generous pass budget and reports ErrNoConvergence.
//
// The core is total: nil/none destinations, unknown stops, and negative costs
// degrade to neutral results (false, NoStop, Inf) rather than errors.
//
// Complexity:
//
//   - TransferEntries: O(D) for D destinations known across the two tables.
//   - Synchronise: O(P·V·E·D) worst case for P passes; P is bounded by the
//     number of distinct cost improvements, itself O(V²) on real inputs.
//
// Tables address stops by StopID and resolve adjacency, edge costs, and other
// stops' tables through the Topology interface, so the package has no
// dependency on any concrete graph representation.
package routing
