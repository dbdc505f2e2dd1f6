// Package stopnet models a public transport network whose stops find their
// own way around: every stop owns a distance-vector routing table, edges
// carry Manhattan-distance costs, and each topology change is propagated
// until the whole network agrees on the cheapest paths again.
//
// What you get:
//   - Stops on an integer grid, linked into a graph by the routes that
//     serve them
//   - Per-stop routing tables with strict-improvement relaxation and a
//     synchronous fixed-point propagation
//   - Bus, train, and ferry routes with their vehicles, boarding waiting
//     passengers toward the right next hop
//   - A line-oriented text format for whole networks, and an event bus
//     reporting structural changes
//
// Everything is organized under six subpackages:
//
//	routing/    — routing entries, tables, and the synchronisation algorithm
//	core/       — the stop arena: stops, links, Manhattan costs, queries
//	routes/     — bus/train/ferry routes, the inbound feed of the graph
//	vehicles/   — the vehicles riding those routes
//	passengers/ — riders, including concession-card passengers
//	network/    — the assembled model, its codec, and its event bus
//
// Start with network.New or network.Load, then ask NextHopToward and CostTo.
package stopnet
