package network

import (
	"github.com/asaskevich/EventBus"

	"github.com/qldtransit/stopnet/core"
	"github.com/qldtransit/stopnet/routes"
	"github.com/qldtransit/stopnet/routing"
	"github.com/qldtransit/stopnet/vehicles"
)

// Event topics published on a Network's bus.
const (
	// TopicStopAdded fires after a stop is registered. Argument: *core.Stop.
	TopicStopAdded = "stopnet:stop-added"

	// TopicStopsLinked fires after two stops become neighbours.
	// Arguments: the two routing.StopID values, in link order.
	TopicStopsLinked = "stopnet:stops-linked"

	// TopicRouteAdded fires after a route is registered.
	// Argument: *routes.Route.
	TopicRouteAdded = "stopnet:route-added"

	// TopicVehicleAdded fires after a vehicle is registered.
	// Argument: vehicles.Vehicle.
	TopicVehicleAdded = "stopnet:vehicle-added"
)

// Network is the complete transit model: the stop graph, the registered
// routes and vehicles, and an event bus reporting structural changes.
type Network struct {
	graph    *core.Graph
	routes   []*routes.Route
	vehicles []vehicles.Vehicle
	bus      EventBus.Bus
}

// New creates an empty network. The stop graph is wired to publish
// TopicStopsLinked whenever a new edge is made, however it is made (directly
// or through route building).
func New(tableOpts ...routing.Option) *Network {
	n := &Network{bus: EventBus.New()}
	n.graph = core.NewGraph(
		core.WithTableOptions(tableOpts...),
		core.WithLinkObserver(func(a, b routing.StopID) {
			n.bus.Publish(TopicStopsLinked, a, b)
		}),
	)

	return n
}

// Bus returns the network's event bus, for subscribing to the Topic* topics.
func (n *Network) Bus() EventBus.Bus { return n.bus }

// Graph returns the underlying stop graph.
func (n *Network) Graph() *core.Graph { return n.graph }

// NewStop creates a stop with the given name and coordinates and registers
// it in the network. Name sanitisation and the ErrNoName / ErrDuplicateStop
// rejections are those of core.Graph.AddStop.
func (n *Network) NewStop(name string, x, y int) (*core.Stop, error) {
	s, err := n.graph.AddStop(name, x, y)
	if err != nil {
		return nil, err
	}
	n.bus.Publish(TopicStopAdded, s)

	return s, nil
}

// AddStops registers a batch of stops all-or-nothing: if any spec has an
// empty name or duplicates an existing stop (or another element of the
// batch), no stop is added. TopicStopAdded fires per stop only when the
// whole batch succeeds.
func (n *Network) AddStops(specs []core.StopSpec) ([]*core.Stop, error) {
	stops, err := n.graph.AddStops(specs)
	if err != nil {
		return nil, err
	}
	for _, s := range stops {
		n.bus.Publish(TopicStopAdded, s)
	}

	return stops, nil
}

// Stops returns all stops in registration order.
func (n *Network) Stops() []*core.Stop { return n.graph.Stops() }

// StopCount returns the number of registered stops.
func (n *Network) StopCount() int { return n.graph.StopCount() }

// FindStop returns the first registered stop with the given name, or nil.
func (n *Network) FindStop(name string) *core.Stop { return n.graph.FindStop(name) }

// AddRoute registers a route with the network. A nil route is ignored.
func (n *Network) AddRoute(r *routes.Route) {
	if r == nil {
		return
	}
	n.routes = append(n.routes, r)
	n.bus.Publish(TopicRouteAdded, r)
}

// Routes returns the registered routes, in registration order.
// The slice is a copy.
func (n *Network) Routes() []*routes.Route {
	out := make([]*routes.Route, len(n.routes))
	copy(out, n.routes)

	return out
}

// AddVehicle registers a vehicle with the network. A nil vehicle is ignored.
// The vehicle is assumed to already be assigned to its route.
func (n *Network) AddVehicle(v vehicles.Vehicle) {
	if v == nil {
		return
	}
	n.vehicles = append(n.vehicles, v)
	n.bus.Publish(TopicVehicleAdded, v)
}

// Vehicles returns the registered vehicles, in registration order.
// The slice is a copy.
func (n *Network) Vehicles() []vehicles.Vehicle {
	out := make([]vehicles.Vehicle, len(n.vehicles))
	copy(out, n.vehicles)

	return out
}

// NextHopToward answers the routing query: from stop, toward dest, which
// neighbouring stop should a rider move to next. Returns routing.NoStop for
// unknown stops or unreachable destinations.
func (n *Network) NextHopToward(stop, dest routing.StopID) routing.StopID {
	return n.graph.NextHopToward(stop, dest)
}

// CostTo returns the cheapest known cumulative cost from stop to dest, or
// routing.Inf for unknown stops or unreachable destinations.
func (n *Network) CostTo(stop, dest routing.StopID) int64 {
	return n.graph.CostTo(stop, dest)
}
