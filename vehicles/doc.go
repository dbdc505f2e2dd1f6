// Package vehicles models the public transport vehicles of the network:
// buses, trains, and ferries that follow a route, carry a bounded number of
// riders, and move between the stops of their route.
//
// Every vehicle embeds PublicTransport, which holds the shared id / capacity
// / route / location / rider bookkeeping; the concrete types add their
// kind-specific attribute (bus registration, train carriage count, ferry
// type) and their kind tag. Vehicles implement core.Vehicle, so stops can
// unload arriving riders and board departing ones, and routes.Transport, so
// routes can enforce kind compatibility.
//
// The text form, used by the network file format, is
//
//	{kind},{id},{capacity},{routeNumber},{extra}
//
// where extra is the registration number for a bus, the carriage count for a
// train, and the ferry type for a ferry (blank defaults to "CityCat").
package vehicles
