// Package network assembles the full transit model: the stop graph with its
// routing tables, the routes that create its edges, and the vehicles that
// serve them. It is the intended entry point for applications; the lower
// packages (core, routing, routes, vehicles, passengers) can also be used
// directly.
//
// A Network carries an event bus. Structural changes (a stop registered, two
// stops linked, a route or vehicle added) are published on the Topic*
// topics, so observers such as loggers or simulators can follow the build-up
// of the model without the model knowing about them.
//
// Networks round-trip through a line-oriented text format:
//
//	{stopCount}
//	{name}:{x}:{y}          (one line per stop)
//	{routeCount}
//	{kind},{name},{number}:{stop}|...   (one line per route)
//	{vehicleCount}
//	{kind},{id},{capacity},{route},{extra}   (one line per vehicle)
//
// Decode rebuilds the routing state as a side effect of loading: every route
// line links its consecutive stops, which synchronises the routing tables.
// A decoded network therefore answers NextHopToward and CostTo queries
// immediately.
package network
