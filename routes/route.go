package routes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qldtransit/stopnet/core"
)

// Route is an ordered collection of stops followed by vehicles of a matching
// kind. Construct with New or one of the typed helpers; the zero value is
// not useful.
type Route struct {
	kind       Kind
	name       string
	number     int
	stops      []*core.Stop
	transports []Transport
}

// New creates an empty route of the given kind. Newlines and carriage
// returns are stripped from the name (an empty name is allowed); an
// unsupported kind is rejected with ErrUnknownKind.
func New(kind Kind, name string, number int) (*Route, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return &Route{
		kind:   kind,
		name:   strings.NewReplacer("\n", "", "\r", "").Replace(name),
		number: number,
	}, nil
}

// NewBusRoute creates an empty bus route.
func NewBusRoute(name string, number int) *Route {
	r, _ := New(Bus, name, number)
	return r
}

// NewTrainRoute creates an empty train route.
func NewTrainRoute(name string, number int) *Route {
	r, _ := New(Train, name, number)
	return r
}

// NewFerryRoute creates an empty ferry route.
func NewFerryRoute(name string, number int) *Route {
	r, _ := New(Ferry, name, number)
	return r
}

// Kind returns the route's transport mode.
func (r *Route) Kind() Kind { return r.kind }

// Name returns the route's name. Implements core.RouteInfo.
func (r *Route) Name() string { return r.name }

// Number returns the route's number. Implements core.RouteInfo.
func (r *Route) Number() int { return r.number }

// Stops returns the stops on the route, in the order they were added.
// The slice is a copy.
func (r *Route) Stops() []*core.Stop {
	out := make([]*core.Stop, len(r.stops))
	copy(out, r.stops)

	return out
}

// StartStop returns the first stop of the route,
// or ErrEmptyRoute if there is none.
func (r *Route) StartStop() (*core.Stop, error) {
	if len(r.stops) == 0 {
		return nil, ErrEmptyRoute
	}

	return r.stops[0], nil
}

// AddStop appends a stop to the route. A nil stop is ignored. The route is
// recorded on the stop, and any non-first stop is linked with its
// predecessor, feeding the edge into the routing core (which synchronises
// the whole network). The only possible error is the routing layer's
// non-convergence defect signal.
func (r *Route) AddStop(s *core.Stop) error {
	if s == nil {
		return nil
	}
	s.AddRoute(r)
	r.stops = append(r.stops, s)
	if len(r.stops) > 1 {
		prev := r.stops[len(r.stops)-2]
		return prev.AddNeighbouringStop(s)
	}

	return nil
}

// Transports returns the vehicles on this route. The slice is a copy.
func (r *Route) Transports() []Transport {
	out := make([]Transport, len(r.transports))
	copy(out, r.transports)

	return out
}

// AddTransport assigns a vehicle to this route. A nil vehicle is ignored;
// a route with no stops rejects vehicles with ErrEmptyRoute, and a vehicle
// of a different kind is rejected with ErrIncompatibleType.
func (r *Route) AddTransport(t Transport) error {
	if t == nil {
		return nil
	}
	if len(r.stops) == 0 {
		return ErrEmptyRoute
	}
	if t.Kind() != r.kind {
		return fmt.Errorf("%w: %s on %s route", ErrIncompatibleType, t.Kind(), r.kind)
	}
	r.transports = append(r.transports, t)

	return nil
}

// String renders the route in its text-format form:
// "{kind},{name},{number}:{stop0}|{stop1}|...".
func (r *Route) String() string {
	names := make([]string, len(r.stops))
	for i, s := range r.stops {
		names[i] = s.Name()
	}

	return fmt.Sprintf("%s,%s,%d:%s", r.kind, r.name, r.number, strings.Join(names, "|"))
}

// Encode returns the route in the network file format, identical to String.
func (r *Route) Encode() string {
	return r.String()
}

// Decode parses a route description of the form
// "{kind},{name},{number}:{stop0}|{stop1}|..." and adds the referenced stops
// to the new route with AddStop (linking consecutive stops in the routing
// graph). Stop names are resolved against existingStops; when several stops
// share a name the first match wins.
//
// Spaces around the route number are trimmed; spaces in names are
// significant. A trailing ":" (a route with no stops) is valid; empty stop
// names, unresolved stop names, extra delimiters, or a malformed number
// yield ErrFormat.
func Decode(line string, existingStops []*core.Stop) (*Route, error) {
	head, stopsPart, hasStops := strings.Cut(line, ":")
	if hasStops && strings.Contains(stopsPart, ":") {
		return nil, fmt.Errorf("%w: extra ':' delimiter in %q", ErrFormat, line)
	}

	fields := strings.Split(head, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: want kind,name,number in %q", ErrFormat, line)
	}
	number, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: route number in %q", ErrFormat, line)
	}
	route, err := New(Kind(fields[0]), fields[1], number)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if !hasStops || stopsPart == "" {
		return route, nil
	}
	for _, name := range strings.Split(stopsPart, "|") {
		if name == "" {
			return nil, fmt.Errorf("%w: empty stop name in %q", ErrFormat, line)
		}
		stop := findStop(name, existingStops)
		if stop == nil {
			return nil, fmt.Errorf("%w: unknown stop %q", ErrFormat, name)
		}
		if err = route.AddStop(stop); err != nil {
			return nil, err
		}
	}

	return route, nil
}

// findStop returns the first stop with the given name, or nil.
func findStop(name string, stops []*core.Stop) *core.Stop {
	for _, s := range stops {
		if s != nil && s.Name() == name {
			return s
		}
	}

	return nil
}
