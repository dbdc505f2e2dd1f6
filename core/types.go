// This file declares the Stop/Graph collaborator interfaces, sentinel
// errors, and Graph construction options.

package core

import (
	"errors"

	"github.com/qldtransit/stopnet/routing"
)

// Sentinel errors for graph construction.
var (
	// ErrNoName indicates a stop was created with an empty name.
	ErrNoName = errors.New("core: stop name must not be empty")

	// ErrDuplicateStop indicates a stop with the same name and coordinates
	// already exists in the graph.
	ErrDuplicateStop = errors.New("core: duplicate stop")
)

// Rider is the view of a passenger the stop layer needs: where it is trying
// to go. The passengers package provides the concrete implementations.
type Rider interface {
	// Destination returns the rider's final destination, or routing.NoStop
	// when the rider has none.
	Destination() routing.StopID
}

// Vehicle is the view of a public transport vehicle the stop layer needs for
// arrival and departure bookkeeping. The vehicles package provides the
// concrete implementations.
type Vehicle interface {
	// Board places a rider on the vehicle; it fails when the vehicle is at
	// capacity.
	Board(r Rider) error

	// Unload removes and returns all riders currently on board.
	Unload() []Rider

	// TravelTo updates the vehicle's recorded location.
	TravelTo(s *Stop)
}

// RouteInfo is the view of a route a stop records membership of.
type RouteInfo interface {
	Name() string
	Number() int
}

// StopSpec describes one stop of a batch passed to Graph.AddStops.
type StopSpec struct {
	Name string
	X, Y int
}

// LinkObserver is notified after two stops have been linked and the routing
// tables have re-converged. Outer layers use it to publish topology events
// without the core depending on any event machinery.
type LinkObserver func(a, b routing.StopID)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLinkObserver registers fn to run after every successful Link.
func WithLinkObserver(fn LinkObserver) GraphOption {
	return func(g *Graph) { g.linkObserver = fn }
}

// WithTableOptions forwards routing options (such as routing.WithMaxPasses)
// to every routing table the graph creates.
func WithTableOptions(opts ...routing.Option) GraphOption {
	return func(g *Graph) { g.tableOpts = opts }
}
