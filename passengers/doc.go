// Package passengers models the riders of the transit network: a base
// Passenger with a display name and a destination stop, and a
// ConcessionPassenger carrying a concession card that can expire and be
// renewed.
//
// Every passenger gets an opaque unique ID at construction so outer layers
// can track individuals regardless of display name (names may be blank, in
// which case the passenger is anonymous).
//
// Passengers implement core.Rider and interact with the routing core only
// through their destination: a stop consults its routing table with
// Destination() to decide which neighbouring stop the passenger should be
// moved to next.
package passengers
