package vehicles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qldtransit/stopnet/core"
	"github.com/qldtransit/stopnet/routes"
)

// Sentinel errors for vehicle operations.
var (
	// ErrOverCapacity indicates a rider could not board a full vehicle.
	ErrOverCapacity = errors.New("vehicles: vehicle is at capacity")

	// ErrNilRoute indicates a vehicle was constructed without a route.
	ErrNilRoute = errors.New("vehicles: route must not be nil")

	// ErrFormat indicates a malformed vehicle description string.
	ErrFormat = errors.New("vehicles: malformed vehicle description")
)

// Vehicle is the full surface shared by buses, trains, and ferries.
// It subsumes core.Vehicle (stop bookkeeping) and routes.Transport
// (kind compatibility).
type Vehicle interface {
	ID() int
	Capacity() int
	Route() *routes.Route
	Kind() routes.Kind
	CurrentStop() *core.Stop
	PassengerCount() int
	Passengers() []core.Rider
	Board(r core.Rider) error
	Disembark(r core.Rider) bool
	Unload() []core.Rider
	TravelTo(s *core.Stop)
	Encode() string
}

// PublicTransport is the shared state and behaviour of every vehicle.
// It is embedded by Bus, Train, and Ferry and not used on its own.
type PublicTransport struct {
	id       int
	capacity int
	route    *routes.Route
	current  *core.Stop
	riders   []core.Rider
}

// newPublicTransport initialises the shared vehicle state. A negative
// capacity is stored as 0 (no riders allowed). The vehicle starts empty at
// the first stop of its route, or nowhere when the route has no stops yet.
func newPublicTransport(id, capacity int, route *routes.Route) (PublicTransport, error) {
	if route == nil {
		return PublicTransport{}, ErrNilRoute
	}
	if capacity < 0 {
		capacity = 0
	}
	start, err := route.StartStop()
	if err != nil {
		start = nil // empty route: vehicle has no location yet
	}

	return PublicTransport{
		id:       id,
		capacity: capacity,
		route:    route,
		current:  start,
	}, nil
}

// ID returns the vehicle's identifying number.
func (t *PublicTransport) ID() int { return t.id }

// Capacity returns the maximum number of riders allowed on board.
func (t *PublicTransport) Capacity() int { return t.capacity }

// Route returns the route this vehicle follows.
func (t *PublicTransport) Route() *routes.Route { return t.route }

// CurrentStop returns the vehicle's location, or nil when it has none.
func (t *PublicTransport) CurrentStop() *core.Stop { return t.current }

// PassengerCount returns the number of riders on board.
func (t *PublicTransport) PassengerCount() int { return len(t.riders) }

// Passengers returns the riders on board, in boarding order.
// The slice is a copy.
func (t *PublicTransport) Passengers() []core.Rider {
	out := make([]core.Rider, len(t.riders))
	copy(out, t.riders)

	return out
}

// Board places a rider on the vehicle. A nil rider is ignored; a full
// vehicle rejects the rider with ErrOverCapacity. Implements core.Vehicle.
func (t *PublicTransport) Board(r core.Rider) error {
	if r == nil {
		return nil
	}
	if len(t.riders) >= t.capacity {
		return ErrOverCapacity
	}
	t.riders = append(t.riders, r)

	return nil
}

// Disembark removes a single rider from the vehicle, reporting whether the
// rider was on board.
func (t *PublicTransport) Disembark(r core.Rider) bool {
	for i, on := range t.riders {
		if on == r {
			t.riders = append(t.riders[:i], t.riders[i+1:]...)
			return true
		}
	}

	return false
}

// Unload removes and returns all riders on board. Implements core.Vehicle.
func (t *PublicTransport) Unload() []core.Rider {
	out := t.riders
	t.riders = nil

	return out
}

// TravelTo moves the vehicle to the given stop. A nil stop, or one not on
// this vehicle's route, leaves the location unchanged.
// Implements core.Vehicle.
func (t *PublicTransport) TravelTo(s *core.Stop) {
	if s == nil {
		return
	}
	for _, onRoute := range t.route.Stops() {
		if onRoute == s {
			t.current = s
			return
		}
	}
}

// encodeBase renders the shared "{kind},{id},{capacity},{routeNumber}"
// prefix of the vehicle text format.
func (t *PublicTransport) encodeBase(kind routes.Kind) string {
	return fmt.Sprintf("%s,%d,%d,%d", kind, t.id, t.capacity, t.route.Number())
}

// Bus is a public transport vehicle with a registration number.
type Bus struct {
	PublicTransport
	registration string
}

// NewBus creates a bus with the given id, capacity, route, and registration
// number. Newlines and carriage returns are stripped from the registration.
func NewBus(id, capacity int, route *routes.Route, registration string) (*Bus, error) {
	base, err := newPublicTransport(id, capacity, route)
	if err != nil {
		return nil, err
	}

	return &Bus{
		PublicTransport: base,
		registration:    sanitize(registration),
	}, nil
}

// Kind returns routes.Bus. Implements routes.Transport.
func (b *Bus) Kind() routes.Kind { return routes.Bus }

// RegistrationNumber returns the bus's registration number.
func (b *Bus) RegistrationNumber() string { return b.registration }

// Encode renders the bus as "bus,{id},{capacity},{route},{registration}".
func (b *Bus) Encode() string {
	return b.encodeBase(routes.Bus) + "," + b.registration
}

// String is Encode.
func (b *Bus) String() string { return b.Encode() }

// Train is a public transport vehicle with a carriage count.
type Train struct {
	PublicTransport
	carriages int
}

// NewTrain creates a train with the given id, capacity, route, and carriage
// count. A non-positive carriage count is stored as 1.
func NewTrain(id, capacity int, route *routes.Route, carriages int) (*Train, error) {
	base, err := newPublicTransport(id, capacity, route)
	if err != nil {
		return nil, err
	}
	if carriages <= 0 {
		carriages = 1
	}

	return &Train{
		PublicTransport: base,
		carriages:       carriages,
	}, nil
}

// Kind returns routes.Train. Implements routes.Transport.
func (t *Train) Kind() routes.Kind { return routes.Train }

// CarriageCount returns the number of carriages.
func (t *Train) CarriageCount() int { return t.carriages }

// Encode renders the train as "train,{id},{capacity},{route},{carriages}".
func (t *Train) Encode() string {
	return fmt.Sprintf("%s,%d", t.encodeBase(routes.Train), t.carriages)
}

// String is Encode.
func (t *Train) String() string { return t.Encode() }

// DefaultFerryType is stored when a ferry is created with a blank type.
const DefaultFerryType = "CityCat"

// Ferry is a public transport vehicle with a ferry type.
type Ferry struct {
	PublicTransport
	ferryType string
}

// NewFerry creates a ferry with the given id, capacity, route, and type.
// A blank type defaults to DefaultFerryType; newlines and carriage returns
// are stripped.
func NewFerry(id, capacity int, route *routes.Route, ferryType string) (*Ferry, error) {
	base, err := newPublicTransport(id, capacity, route)
	if err != nil {
		return nil, err
	}
	ferryType = sanitize(ferryType)
	if ferryType == "" {
		ferryType = DefaultFerryType
	}

	return &Ferry{
		PublicTransport: base,
		ferryType:       ferryType,
	}, nil
}

// Kind returns routes.Ferry. Implements routes.Transport.
func (f *Ferry) Kind() routes.Kind { return routes.Ferry }

// FerryType returns the ferry's type.
func (f *Ferry) FerryType() string { return f.ferryType }

// Encode renders the ferry as "ferry,{id},{capacity},{route},{ferryType}".
func (f *Ferry) Encode() string {
	return f.encodeBase(routes.Ferry) + "," + f.ferryType
}

// String is Encode.
func (f *Ferry) String() string { return f.Encode() }

// sanitize strips newline and carriage-return characters.
func sanitize(s string) string {
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}
