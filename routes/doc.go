// Package routes models the routes of the transit network: ordered
// collections of stops that vehicles of a matching kind (bus, train, ferry)
// follow.
//
// Adding a stop to a route is what creates edges in the routing graph: each
// newly added stop is linked with the previous stop on the route, which
// registers the adjacency on both sides and triggers the network-wide
// routing synchronisation. Routes are therefore the inbound feed of the
// routing core; they never read routing tables themselves.
//
// A route also tracks the vehicles currently assigned to it. Only vehicles
// of the route's kind may be added (ErrIncompatibleType), and never to a
// route with no stops (ErrEmptyRoute).
//
// The text form of a route, used by the network file format, is
//
//	{kind},{name},{number}:{stop0}|{stop1}|...|{stopN}
//
// for example "train,red,1:UQ Lakes|City|Valley". Decode resolves stop names
// against the stops that already exist in the network.
package routes
